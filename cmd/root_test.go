package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Name
		wantErr bool
	}{
		{
			name:  "two parts",
			input: "Ada Lovelace",
			want:  Name{Given: "Ada", Family: "Lovelace"},
		},
		{
			name:  "multi-word family name",
			input: "Vincent van Gogh",
			want:  Name{Given: "Vincent", Family: "van Gogh"},
		},
		{
			name:  "surrounding whitespace",
			input: "  Ada   Lovelace  ",
			want:  Name{Given: "Ada", Family: "Lovelace"},
		},
		{
			name:    "single word",
			input:   "Ada",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "trailing space only",
			input:   "Ada ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenderString(t *testing.T) {
	assert.Equal(t, "male", GenderMale.String())
	assert.Equal(t, "female", GenderFemale.String())
	assert.Equal(t, "other", GenderOther.String())
	assert.Equal(t, "unknown", Gender(42).String())
}
