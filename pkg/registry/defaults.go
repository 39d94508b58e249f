// pkg/registry/defaults.go
package registry

// Default returns the compiled-in place registry. Deployments that need wider
// coverage should load a JSON registry instead; the shipped lists are small
// and intentionally conservative.
func Default() *PlaceRegistry {
	return &PlaceRegistry{
		Version:     "1.0.0",
		LastUpdated: "2026-08-12",

		KnownPlaces: []string{
			"paris", "tokyo", "london", "dubai", "barcelona",
			"rome", "sydney", "bangkok", "singapore", "mumbai", "delhi",
			"moscow", "berlin", "madrid", "amsterdam", "vienna", "prague",
			"istanbul", "cairo", "athens", "lisbon", "stockholm", "oslo",
			"dublin", "edinburgh", "glasgow", "manchester", "birmingham",
			"milan", "naples", "venice", "florence", "seville", "valencia",
			"copenhagen", "helsinki", "warsaw", "budapest", "bucharest",
			"zurich", "geneva", "brussels", "antwerp", "rotterdam",
			"osaka", "kyoto", "yokohama", "seoul", "beijing", "shanghai",
			"taipei", "jakarta", "manila",
			"bangalore", "chennai", "kolkata", "hyderabad",
			"casablanca", "nairobi", "johannesburg",
			"lima", "bogota", "montreal", "toronto", "vancouver", "chicago",
			"miami", "boston", "seattle",
		},

		DenylistWords: []string{
			"hello", "hi", "test", "testing", "abc", "xyz", "sample", "example",
			"demo", "demo1", "demo2", "test123", "asdf", "qwerty", "password",
			"admin", "user", "name", "word", "text", "string", "input", "output",
			"data", "info", "information", "value", "value1", "value2", "temp",
			"temp1", "temp2", "new", "old", "first", "last", "next", "previous",
			"yes", "no", "ok", "okay", "sure", "maybe", "perhaps", "probably",
			"paper", "book", "table", "chair", "computer", "phone", "car", "house",
			"dog", "cat", "bird", "tree", "flower", "water", "fire", "earth",
			"air", "food", "drink", "coffee", "tea", "bread", "apple", "orange",
			"red", "blue", "green", "yellow", "black", "white", "big", "small",
			"good", "bad", "happy", "sad", "love", "hate", "friend", "enemy",
		},

		CommonWords: []string{
			"the", "and", "or", "but", "for", "with", "from", "to", "of", "in", "on", "at",
			"paper", "book", "table", "chair", "computer", "phone", "car", "house",
			"dog", "cat", "bird", "tree", "water", "food", "coffee", "bread",
		},

		Attractions: map[string][]Attraction{
			"paris": {
				{Name: "Eiffel Tower", Description: "Iconic iron lattice tower, symbol of Paris", Type: "landmark"},
				{Name: "Louvre Museum", Description: "World's largest art museum with Mona Lisa", Type: "museum"},
				{Name: "Notre-Dame Cathedral", Description: "Gothic cathedral on Île de la Cité", Type: "landmark"},
				{Name: "Seine River Cruise", Description: "Scenic boat tour along the Seine", Type: "activity"},
				{Name: "Montmartre", Description: "Artistic hilltop district with Sacré-Cœur", Type: "neighborhood"},
			},
			"tokyo": {
				{Name: "Senso-ji Temple", Description: "Ancient Buddhist temple in Asakusa", Type: "temple"},
				{Name: "Tokyo Skytree", Description: "Tallest tower in Japan with observation decks", Type: "landmark"},
				{Name: "Shibuya Crossing", Description: "World's busiest pedestrian intersection", Type: "landmark"},
				{Name: "Tsukiji Fish Market", Description: "Famous seafood market (outer market)", Type: "market"},
				{Name: "Meiji Shrine", Description: "Shinto shrine surrounded by forest", Type: "temple"},
			},
		},

		GenericAttractions: []Attraction{
			{Name: "City Center", Description: "Explore the main city center area", Type: "general"},
			{Name: "Local Museum", Description: "Visit the main local museum", Type: "museum"},
			{Name: "Historic District", Description: "Walk through historic neighborhoods", Type: "general"},
		},

		Weather: map[string]WeatherNorm{
			"paris":     {TempC: 18, Condition: "Partly Cloudy", HumidityPct: 65, WindKmh: 10},
			"tokyo":     {TempC: 22, Condition: "Sunny", HumidityPct: 70, WindKmh: 8},
			"new york":  {TempC: 15, Condition: "Cloudy", HumidityPct: 60, WindKmh: 12},
			"london":    {TempC: 12, Condition: "Rainy", HumidityPct: 80, WindKmh: 15},
			"dubai":     {TempC: 35, Condition: "Sunny", HumidityPct: 45, WindKmh: 5},
			"barcelona": {TempC: 20, Condition: "Sunny", HumidityPct: 55, WindKmh: 10},
			"rome":      {TempC: 19, Condition: "Partly Cloudy", HumidityPct: 65, WindKmh: 8},
			"sydney":    {TempC: 24, Condition: "Sunny", HumidityPct: 68, WindKmh: 12},
			"bangkok":   {TempC: 32, Condition: "Partly Cloudy", HumidityPct: 75, WindKmh: 6},
			"singapore": {TempC: 30, Condition: "Partly Cloudy", HumidityPct: 80, WindKmh: 8},
		},
	}
}
