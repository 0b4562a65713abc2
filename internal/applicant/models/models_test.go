package models

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "naturalize/pkg/domain-errors"
)

func TestNormalizeANumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"A012345678", "A012345678", true},
		{"a-012-345-678", "A012345678", true},
		{" 12345678 ", "A012345678", true},
		{"1234567", "A001234567", true},
		{"A12", "", false},
		{"B012345678", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeANumber(tt.in)
			if !tt.ok {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateOfBirth(t *testing.T) {
	today := civil.Date{Year: 2025, Month: 1, Day: 1}

	d, err := ParseDateOfBirth("07/04/1980", today)
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 1980, Month: 7, Day: 4}, d)

	_, err = ParseDateOfBirth("2030-01-01", today)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = ParseDateOfBirth("yesterday", today)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
