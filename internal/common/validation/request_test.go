// internal/common/validation/request_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/internal/common/errors"
	"trip-planner/pkg/registry"
)

func TestValidate_AcceptsRealDestinations(t *testing.T) {
	places := registry.Default()

	tests := []struct {
		destination string
		duration    int
	}{
		{"Paris", 3},
		{"Tokyo", 7},
		{"New York", 14},
		{"paris", 5},
		{"  London  ", 1},
		{"San Francisco", 30},
	}

	for _, tt := range tests {
		t.Run(tt.destination, func(t *testing.T) {
			req, verr := Validate(tt.destination, tt.duration, places)
			require.Nil(t, verr)
			assert.Equal(t, tt.duration, req.Duration)
			assert.NotEmpty(t, req.Destination)
		})
	}
}

func TestValidate_TrimsDestination(t *testing.T) {
	req, verr := Validate("  Paris  ", 3, registry.Default())
	require.Nil(t, verr)
	assert.Equal(t, "Paris", req.Destination)
}

func TestValidate_RejectsBadInput(t *testing.T) {
	places := registry.Default()

	tests := []struct {
		name        string
		destination string
		duration    int
		wantCode    errors.ErrorCode
	}{
		{"too short", "P", 3, errors.ErrCodeDestinationTooShort},
		{"empty", "", 3, errors.ErrCodeDestinationTooShort},
		{"whitespace only", "   ", 3, errors.ErrCodeDestinationTooShort},
		{"duration zero", "Paris", 0, errors.ErrCodeDurationOutOfRange},
		{"duration negative", "Paris", -1, errors.ErrCodeDurationOutOfRange},
		{"duration too long", "Tokyo", 45, errors.ErrCodeDurationOutOfRange},
		{"angle brackets", "<script>", 3, errors.ErrCodeIllegalCharacters},
		{"braces", "Par{is}", 3, errors.ErrCodeIllegalCharacters},
		{"backslash", `Par\is`, 3, errors.ErrCodeIllegalCharacters},
		{"denied word", "test", 3, errors.ErrCodeNotAPlace},
		{"denied word hello", "hello", 3, errors.ErrCodeNotAPlace},
		{"denied case folded", "TEST", 3, errors.ErrCodeNotAPlace},
		{"numeric only", "12345", 3, errors.ErrCodeNumericOnly},
		{"numeric with spaces", "12 34", 3, errors.ErrCodeNumericOnly},
		{"too many digits", "Area 5123", 3, errors.ErrCodeTooManyDigits},
		{"special char heavy", "P@r!s***", 3, errors.ErrCodeTooManySpecialChars},
		{"no letters", "!!!", 3, errors.ErrCodeTooManySpecialChars},
		{"digits and punctuation", "12 .", 3, errors.ErrCodeNoLetters},
		{"lowercase unknown word", "xyzzyq", 3, errors.ErrCodeNotAPlace},
		{"common word capitalized", "Table", 3, errors.ErrCodeNotAPlace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verr := Validate(tt.destination, tt.duration, places)
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantCode, verr.Code)
			assert.NotEmpty(t, verr.Message)
		})
	}
}

func TestValidate_UnknownCapitalizedSingleWordPasses(t *testing.T) {
	// A plausible but unlisted place name is let through on capitalization.
	req, verr := Validate("Springfield", 3, registry.Default())
	require.Nil(t, verr)
	assert.Equal(t, "Springfield", req.Destination)
}

func TestValidate_DigitsUnderLimitPass(t *testing.T) {
	req, verr := Validate("Area 51", 3, registry.Default())
	require.Nil(t, verr)
	assert.Equal(t, "Area 51", req.Destination)
}

func TestValidate_NotAPlaceMessageNamesInput(t *testing.T) {
	_, verr := Validate("test", 3, registry.Default())
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "'test' is not a valid place name")
}

func TestValidateRaw(t *testing.T) {
	places := registry.Default()

	t.Run("parses duration text", func(t *testing.T) {
		req, verr := ValidateRaw("Paris", "3", places)
		require.Nil(t, verr)
		assert.Equal(t, 3, req.Duration)
	})

	t.Run("non numeric duration", func(t *testing.T) {
		_, verr := ValidateRaw("Paris", "three", places)
		require.NotNil(t, verr)
		assert.Equal(t, errors.ErrCodeDurationNotANumber, verr.Code)
	})

	t.Run("short destination wins over bad duration", func(t *testing.T) {
		_, verr := ValidateRaw("P", "three", places)
		require.NotNil(t, verr)
		assert.Equal(t, errors.ErrCodeDestinationTooShort, verr.Code)
	})
}
