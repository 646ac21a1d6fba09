package calcs_test

import (
	"testing"

	"github.com/calclink/ch8var/calcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPredefinedModel(t *testing.T) {
	tests := []struct {
		Slug              string
		ExpectedSignature string
		ExpectedExtension string
	}{
		{"ti89", "**TI89**", "89y"},
		{"ti92p", "**TI92P*", "9xy"},
		{"v200", "**TI92P*", "v2y"},
	}

	for _, test := range tests {
		t.Run(test.Slug, func(t *testing.T) {
			model, err := calcs.GetPredefinedModel(test.Slug)
			require.NoError(t, err)
			assert.Equal(t, test.ExpectedSignature, model.Signature)
			assert.Equal(t, test.ExpectedExtension, model.Extension)
			assert.Len(t, model.Signature, 8, "device signatures are always 8 bytes")
		})
	}
}

func TestGetPredefinedModel__UnknownSlug(t *testing.T) {
	_, err := calcs.GetPredefinedModel("ti84p")
	assert.ErrorIs(t, err, calcs.ErrUnknownModel)
}

// The TI-89 has its own signature; the other two models share one.
func TestSignatureSharing(t *testing.T) {
	ti89, err := calcs.GetPredefinedModel("ti89")
	require.NoError(t, err)
	ti92p, err := calcs.GetPredefinedModel("ti92p")
	require.NoError(t, err)
	v200, err := calcs.GetPredefinedModel("v200")
	require.NoError(t, err)

	assert.Equal(t, ti92p.Signature, v200.Signature)
	assert.NotEqual(t, ti89.Signature, ti92p.Signature)
}

func TestModels(t *testing.T) {
	models := calcs.Models()
	require.Len(t, models, 3)

	slugs := make([]string, len(models))
	for i, model := range models {
		slugs[i] = model.Slug
	}
	assert.Equal(t, []string{"ti89", "ti92p", "v200"}, slugs, "models must be sorted by slug")
}
