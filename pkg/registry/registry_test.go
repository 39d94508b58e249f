// pkg/registry/registry_test.go
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_KnownPlaces(t *testing.T) {
	r := Default()

	assert.True(t, r.IsKnownPlace("paris"))
	assert.True(t, r.IsKnownPlace("Paris"))
	assert.True(t, r.IsKnownPlace("TOKYO"))
	assert.False(t, r.IsKnownPlace("xyzzyq"))
}

func TestDefault_Denylist(t *testing.T) {
	r := Default()

	assert.True(t, r.IsDenied("test"))
	assert.True(t, r.IsDenied("hello"))
	assert.True(t, r.IsDenied("  TEST  "))
	assert.False(t, r.IsDenied("Paris"))
}

func TestDefault_CommonWords(t *testing.T) {
	r := Default()

	assert.True(t, r.IsCommonWord("table"))
	assert.False(t, r.IsCommonWord("Paris"))
}

func TestFallbackAttractions_CuratedMatch(t *testing.T) {
	r := Default()

	attractions := r.FallbackAttractions("Paris")
	require.Len(t, attractions, 5)
	assert.Equal(t, "Eiffel Tower", attractions[0].Name)

	// Substring match works for qualified destinations.
	attractions = r.FallbackAttractions("paris france")
	require.Len(t, attractions, 5)
	assert.Equal(t, "Eiffel Tower", attractions[0].Name)
}

func TestFallbackAttractions_GenericFallback(t *testing.T) {
	r := Default()

	attractions := r.FallbackAttractions("Ulan Bator")
	require.Len(t, attractions, 3)
	assert.Equal(t, "City Center", attractions[0].Name)
	assert.Equal(t, "Local Museum", attractions[1].Name)
	assert.Equal(t, "Historic District", attractions[2].Name)
}

func TestFallbackAttractions_ReturnsCopies(t *testing.T) {
	r := Default()

	first := r.FallbackAttractions("Paris")
	first[0].Name = "mutated"

	second := r.FallbackAttractions("Paris")
	assert.Equal(t, "Eiffel Tower", second[0].Name)
}

func TestWeatherFor(t *testing.T) {
	r := Default()

	norm, ok := r.WeatherFor("Paris")
	require.True(t, ok)
	assert.Equal(t, 18, norm.TempC)
	assert.Equal(t, "Partly Cloudy", norm.Condition)
	assert.Equal(t, 65, norm.HumidityPct)
	assert.Equal(t, 10, norm.WindKmh)

	_, ok = r.WeatherFor("Atlantis")
	assert.False(t, ok)
}

func TestLoadRegistry_FromFile(t *testing.T) {
	data := PlaceRegistry{
		Version:       "test",
		KnownPlaces:   []string{"oz"},
		DenylistWords: []string{"nope"},
	}
	raw, err := json.Marshal(&data)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.True(t, loaded.IsKnownPlace("Oz"))
	assert.True(t, loaded.IsDenied("nope"))
	assert.False(t, loaded.IsDenied("oz"))
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
