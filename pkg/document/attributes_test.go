package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotfence/plotfence/pkg/errors"
)

func TestParseInfo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  BlockInfo
	}{
		{"empty", "", BlockInfo{}},
		{"whitespace only", "   ", BlockInfo{}},
		{
			"bare language",
			"python",
			BlockInfo{Classes: []string{"python"}},
		},
		{
			"bare language with trailing info",
			"python startline=5",
			BlockInfo{Classes: []string{"python"}},
		},
		{
			"single class",
			"{.matplotlib}",
			BlockInfo{Classes: []string{"matplotlib"}},
		},
		{
			"id class and attribute",
			"{#fig .matplotlib caption=Hello}",
			BlockInfo{
				ID:      "fig",
				Classes: []string{"matplotlib"},
				Attrs:   Attributes{{"caption", "Hello"}},
			},
		},
		{
			"double-quoted value with spaces",
			`{.matplotlib caption="First plot"}`,
			BlockInfo{
				Classes: []string{"matplotlib"},
				Attrs:   Attributes{{"caption", "First plot"}},
			},
		},
		{
			"single-quoted value with spaces",
			"{.gnuplot caption='Sine wave'}",
			BlockInfo{
				Classes: []string{"gnuplot"},
				Attrs:   Attributes{{"caption", "Sine wave"}},
			},
		},
		{
			"empty quoted value",
			`{.octave caption=""}`,
			BlockInfo{
				Classes: []string{"octave"},
				Attrs:   Attributes{{"caption", ""}},
			},
		},
		{
			"bare word inside braces becomes class",
			"{.octave raw}",
			BlockInfo{Classes: []string{"octave", "raw"}},
		},
		{
			"duplicate id keeps last",
			"{#a #b .x}",
			BlockInfo{ID: "b", Classes: []string{"x"}},
		},
		{
			"duplicate keys both kept in order",
			"{dpi=100 dpi=200}",
			BlockInfo{Attrs: Attributes{{"dpi", "100"}, {"dpi", "200"}}},
		},
		{
			"value with dot",
			"{format=.png}",
			BlockInfo{Attrs: Attributes{{"format", ".png"}}},
		},
		{
			"non-ascii value",
			"{caption=héllo}",
			BlockInfo{Attrs: Attributes{{"caption", "héllo"}}},
		},
		{
			"surrounding whitespace",
			"  { .d2  dpi=96 }  ",
			BlockInfo{
				Classes: []string{"d2"},
				Attrs:   Attributes{{"dpi", "96"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInfo(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInfoErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed brace", "{.matplotlib"},
		{"empty identifier", "{#}"},
		{"empty class", "{.}"},
		{"empty key", "{=value}"},
		{"unterminated double quote", `{caption="oops}`},
		{"unterminated single quote", "{caption='oops}"},
		{"quote left open at end", `{caption="a b}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInfo(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidAttribute),
				"error code = %v, want INVALID_ATTRIBUTE", errors.GetCode(err))
		})
	}
}

func TestAttributesGet(t *testing.T) {
	attrs := Attributes{{"dpi", "100"}, {"caption", "x"}, {"dpi", "200"}}

	v, ok := attrs.Get("dpi")
	assert.True(t, ok)
	assert.Equal(t, "200", v, "last occurrence should win")

	v, ok = attrs.Get("caption")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = attrs.Get("missing")
	assert.False(t, ok)
}

func TestAttributesWithout(t *testing.T) {
	attrs := Attributes{{"dpi", "100"}, {"width", "50%"}, {"dpi", "200"}, {"style", "border"}}

	got := attrs.Without("dpi", "style")
	assert.Equal(t, Attributes{{"width", "50%"}}, got)
	assert.Len(t, attrs, 4, "original must not be mutated")
}
