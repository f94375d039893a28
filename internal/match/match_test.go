package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"account", "acount", 1},
		{"level", "levels", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "dimensionvalue", Normalize("dimension_value"))
	assert.Equal(t, "dimensionvalue", Normalize("DimensionValue"))
	assert.Equal(t, "dimensionvalue", Normalize("dimension-value"))
	assert.Equal(t, "", Normalize(""))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("Account", "account"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0-1.0/7.0, Similarity("acount", "account"), 1e-9)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"account", "level", "dimension_value"}

	assert.Equal(t, []string{"account"}, Suggest("acount", candidates, 3))
	assert.Equal(t, []string{"level"}, Suggest("levels", candidates, 3))
	assert.Equal(t, []string{"dimension_value"}, Suggest("dimensionvalues", candidates, 3))
	assert.Empty(t, Suggest("zzz", candidates, 3))
	assert.Empty(t, Suggest("account", candidates, 0))
}
