package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Entry{},
		},
		{
			name:  "single entry",
			input: "ض:q",
			want:  []Entry{{From: "ض", To: "q"}},
		},
		{
			name:  "last occurrence wins",
			input: "a:b|a:c",
			want:  []Entry{{From: "a", To: "c"}},
		},
		{
			name:  "malformed segment dropped",
			input: "a:b|malformed|c:d",
			want:  []Entry{{From: "a", To: "b"}, {From: "c", To: "d"}},
		},
		{
			name:  "overwrite keeps first position",
			input: "a:1|b:2|a:3",
			want:  []Entry{{From: "a", To: "3"}, {From: "b", To: "2"}},
		},
		{
			name:  "split on first colon",
			input: "a:b:c",
			want:  []Entry{{From: "a", To: "b:c"}},
		},
		{
			name:  "empty labels are kept",
			input: ":x|y:",
			want:  []Entry{{From: "", To: "x"}, {From: "y", To: ""}},
		},
		{
			name:  "empty segments dropped",
			input: "a:b||c:d|",
			want:  []Entry{{From: "a", To: "b"}, {From: "c", To: "d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, len(tt.want), got.Len())
			assert.Equal(t, tt.want, append([]Entry{}, got.Entries()...))
		})
	}
}

func TestSerialize(t *testing.T) {
	assert.Equal(t, "", Serialize(New()))
	assert.Equal(t, "", Serialize(nil))

	m := New()
	m.Set("ض", "q")
	m.Set("ص", "w")
	assert.Equal(t, "ض:q|ص:w", Serialize(m))
}

func TestParseSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		Default,
		"ض:q|ص:w|ث:e",
		"a:b",
		"x:",
		"a:b:c|d:e",
	}

	for _, input := range inputs {
		first := Parse(input)
		second := Parse(Serialize(first))
		assert.True(t, first.Equal(second), "round trip changed entries for %q", input)
		assert.Equal(t, first.Entries(), second.Entries())
	}
}

func TestDefaultMapping(t *testing.T) {
	m := Parse(Default)
	require.Equal(t, 32, m.Len())

	to, ok := m.Get("پ")
	require.True(t, ok)
	assert.Equal(t, `\`, to)

	to, ok = m.Get("و")
	require.True(t, ok)
	assert.Equal(t, ",", to)

	assert.Equal(t, "ض", m.Keys()[0])
}

func TestMapping_Equal(t *testing.T) {
	a := Parse("a:1|b:2")
	b := Parse("b:2|a:1")
	c := Parse("a:1|b:3")
	d := Parse("a:1")

	assert.True(t, a.Equal(b), "order should not matter")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, New().Equal(Parse("")))
}

func TestMapping_CloneIsIndependent(t *testing.T) {
	a := Parse("a:1")
	b := a.Clone()
	b.Set("a", "2")
	b.Set("c", "3")

	to, _ := a.Get("a")
	assert.Equal(t, "1", to)
	assert.Equal(t, 1, a.Len())
}

func TestDiff(t *testing.T) {
	base := Parse("a:1|b:2|c:3")
	target := Parse("a:1|b:9|d:4")

	changes := Diff(base, target)
	require.Len(t, changes, 3)
	assert.Equal(t, Change{From: "b", Old: "2", New: "9", Kind: "changed"}, changes[0])
	assert.Equal(t, Change{From: "d", New: "4", Kind: "added"}, changes[1])
	assert.Equal(t, Change{From: "c", Old: "3", Kind: "removed"}, changes[2])

	assert.Empty(t, Diff(base, base.Clone()))
}
