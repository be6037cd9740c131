package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtractedProfile(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			name:    "Full payload",
			payload: `{"name":"Jane","title":"Engineer","skills":["js"],"openToWork":true,"sourceText":"raw"}`,
			valid:   true,
		},
		{
			name:    "Null fields allowed",
			payload: `{"name":null,"title":null,"skills":[],"openToWork":null}`,
			valid:   true,
		},
		{
			name:    "Empty object allowed",
			payload: `{}`,
			valid:   true,
		},
		{
			name:    "Mixed skill element types allowed",
			payload: `{"skills":["js",42,null]}`,
			valid:   true,
		},
		{
			name:    "Skills must be an array",
			payload: `{"skills":"js"}`,
			valid:   false,
		},
		{
			name:    "openToWork must be boolean",
			payload: `{"openToWork":"yes"}`,
			valid:   false,
		},
		{
			name:    "Name must not be a number",
			payload: `{"name":7}`,
			valid:   false,
		},
		{
			name:    "Root must be an object",
			payload: `["js"]`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtractedProfile([]byte(tt.payload))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.NotEmpty(t, ve.Errors)
			}
		})
	}
}
