package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "", b: "", want: 0},
		{a: "abc", b: "", want: 3},
		{a: "", b: "abc", want: 3},
		{a: "kitten", b: "sitting", want: 3},
		{a: "flaw", b: "lawn", want: 2},
		{a: "same", b: "same", want: 0},
		{a: "héllo", b: "hello", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "somefloat", Normalize("some_float"))
	assert.Equal(t, "somefloat", Normalize("SomeFloat"))
	assert.Equal(t, "somefloat", Normalize("some-Float"))
	assert.Equal(t, "", Normalize(""))
}

func TestScore(t *testing.T) {
	assert.InDelta(t, 1.0, Score("some_float", "SomeFloat"), 1e-9)
	assert.InDelta(t, 1.0, Score("", ""), 1e-9)
	assert.InDelta(t, 0.0, Score("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Score("abcd", "abce"), 1e-9)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"CommonMappingModel", "ComplexMappingModel", "BasicMappingModel", "Settings"}

	assert.Equal(t, []string{"CommonMappingModel", "ComplexMappingModel"}, Suggest("CommonMapingModel", candidates, 2))
	assert.Equal(t, []string{"BasicMappingModel"}, Suggest("basic_mapping_model", candidates, 1))
	assert.Empty(t, Suggest("Unrelated", candidates, 3))
	assert.Empty(t, Suggest("Settings", []string{"Settings"}, 3))
}

func TestDidYouMean(t *testing.T) {
	assert.Equal(t, ` (did you mean "Heartbeat"?)`, DidYouMean("HeartBeats", []string{"Heartbeat", "Silent"}))
	assert.Equal(t, "", DidYouMean("Nope", []string{"Heartbeat"}))
}
