// internal/common/validation/request.go
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"trip-planner/internal/common/errors"
	"trip-planner/pkg/registry"
)

// Request is a sanitized trip request. Downstream stages only ever see
// values that passed every rule below.
type Request struct {
	Destination string
	Duration    int
}

var illegalChars = regexp.MustCompile(`[<>{}\[\]\\]`)

const (
	minDestinationLen = 2
	minDurationDays   = 1
	maxDurationDays   = 30
	maxDigits         = 2
	specialCharLimit  = 0.30
)

// ValidateRaw parses the duration from text before applying the standard
// rules. Used at boundaries that receive untyped input.
func ValidateRaw(destination, durationRaw string, places *registry.PlaceRegistry) (Request, *errors.StandardError) {
	trimmed := strings.TrimSpace(destination)
	if len(trimmed) < minDestinationLen {
		return Request{}, errors.NewValidationError(errors.ErrCodeDestinationTooShort,
			"Destination must be at least 2 characters long.")
	}

	duration, err := strconv.Atoi(strings.TrimSpace(durationRaw))
	if err != nil {
		return Request{}, errors.NewValidationError(errors.ErrCodeDurationNotANumber,
			"Duration must be a valid number.")
	}

	return Validate(destination, duration, places)
}

// Validate applies every request rule in order and returns the first
// failure. The rule order is load-bearing: callers rely on which error
// surfaces when an input trips several rules at once.
func Validate(destination string, duration int, places *registry.PlaceRegistry) (Request, *errors.StandardError) {
	trimmed := strings.TrimSpace(destination)

	if len(trimmed) < minDestinationLen {
		return Request{}, errors.NewValidationError(errors.ErrCodeDestinationTooShort,
			"Destination must be at least 2 characters long.")
	}

	if duration < minDurationDays || duration > maxDurationDays {
		return Request{}, errors.NewValidationError(errors.ErrCodeDurationOutOfRange,
			"Duration must be an integer between 1 and 30 days.")
	}

	if illegalChars.MatchString(trimmed) {
		return Request{}, errors.NewValidationError(errors.ErrCodeIllegalCharacters,
			"Destination contains illegal characters.")
	}

	if places.IsDenied(trimmed) {
		return Request{}, notAPlace(trimmed)
	}

	noSpaces := strings.ReplaceAll(trimmed, " ", "")
	if noSpaces != "" && allDigits(noSpaces) {
		return Request{}, errors.NewValidationError(errors.ErrCodeNumericOnly,
			"Destination cannot be purely numeric.")
	}

	if countDigits(trimmed) > maxDigits {
		return Request{}, errors.NewValidationError(errors.ErrCodeTooManyDigits,
			"Destination contains too many digits.")
	}

	if specialCharRatio(trimmed) >= specialCharLimit {
		return Request{}, errors.NewValidationError(errors.ErrCodeTooManySpecialChars,
			"Destination contains too many special characters.")
	}

	if !containsLetter(trimmed) {
		return Request{}, errors.NewValidationError(errors.ErrCodeNoLetters,
			"Destination must contain at least one letter.")
	}

	if !strings.Contains(trimmed, " ") && !places.IsKnownPlace(trimmed) {
		first := []rune(trimmed)[0]
		if !unicode.IsUpper(first) || places.IsCommonWord(trimmed) {
			return Request{}, notAPlace(trimmed)
		}
	}

	return Request{Destination: trimmed, Duration: duration}, nil
}

func notAPlace(destination string) *errors.StandardError {
	return errors.NewValidationError(errors.ErrCodeNotAPlace,
		fmt.Sprintf("'%s' is not a valid place name. Please enter a city or destination (e.g., Paris, Tokyo, New York).", destination))
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func specialCharRatio(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	special := 0
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			special++
		}
	}
	return float64(special) / float64(len(runes))
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
