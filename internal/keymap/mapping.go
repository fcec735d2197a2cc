package keymap

import (
	"strings"
)

const (
	// EntrySeparator separates entries in the serialized form
	EntrySeparator = "|"
	// PairSeparator separates the source label from the target label
	PairSeparator = ":"
)

// Default is the built-in Persian-to-QWERTY layout
const Default = "ض:q|ص:w|ث:e|ق:r|ف:t|غ:y|ع:u|ه:i|خ:o|ح:p|ج:[|چ:]|پ:\\|ش:a|س:s|ی:d|" +
	"ب:f|ل:g|ا:h|ت:j|ن:k|م:l|ک:;|گ:'|ظ:z|ط:x|ز:c|ر:v|ذ:b|د:n|ئ:m|و:,"

// Entry is a single source -> target pair
type Entry struct {
	From string
	To   string
}

// Mapping is an ordered map of source label to target label.
// Re-setting an existing source keeps its original position.
type Mapping struct {
	keys   []string
	values map[string]string
}

// New creates an empty mapping
func New() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// FromEntries builds a mapping from entries in order, last write wins
func FromEntries(entries []Entry) *Mapping {
	m := New()
	for _, e := range entries {
		m.Set(e.From, e.To)
	}
	return m
}

// Set adds or overwrites an entry
func (m *Mapping) Set(from, to string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[from]; !ok {
		m.keys = append(m.keys, from)
	}
	m.values[from] = to
}

// Get returns the target label for a source label
func (m *Mapping) Get(from string) (string, bool) {
	if m == nil {
		return "", false
	}
	to, ok := m.values[from]
	return to, ok
}

// Len returns the number of entries
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the source labels in iteration order
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Entries returns all entries in iteration order
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}
	entries := make([]Entry, 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, Entry{From: k, To: m.values[k]})
	}
	return entries
}

// Clone returns a deep copy
func (m *Mapping) Clone() *Mapping {
	return FromEntries(m.Entries())
}

// Equal reports whether both mappings hold the same entry set. Order is ignored.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		ov, ok := other.Get(k)
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Parse splits text on '|' into entries and each entry on its first ':'.
// Segments without ':' are dropped. Duplicate sources: last one wins.
func Parse(text string) *Mapping {
	m := New()
	if text == "" {
		return m
	}
	for _, segment := range strings.Split(text, EntrySeparator) {
		from, to, ok := strings.Cut(segment, PairSeparator)
		if !ok {
			continue
		}
		m.Set(from, to)
	}
	return m
}

// Serialize joins entries as "from:to" separated by '|', in iteration order
func Serialize(m *Mapping) string {
	var sb strings.Builder
	for i, e := range m.Entries() {
		if i > 0 {
			sb.WriteString(EntrySeparator)
		}
		sb.WriteString(e.From)
		sb.WriteString(PairSeparator)
		sb.WriteString(e.To)
	}
	return sb.String()
}

// String implements fmt.Stringer using the serialized form
func (m *Mapping) String() string {
	return Serialize(m)
}

// Change describes one difference between two mappings
type Change struct {
	From string
	Old  string // empty when Kind is "added"
	New  string // empty when Kind is "removed"
	Kind string // "added", "removed", "changed"
}

// Diff lists the entries that differ from base to target.
// Changes follow target order, then removed entries in base order.
func Diff(base, target *Mapping) []Change {
	var changes []Change
	for _, e := range target.Entries() {
		old, ok := base.Get(e.From)
		switch {
		case !ok:
			changes = append(changes, Change{From: e.From, New: e.To, Kind: "added"})
		case old != e.To:
			changes = append(changes, Change{From: e.From, Old: old, New: e.To, Kind: "changed"})
		}
	}
	for _, e := range base.Entries() {
		if _, ok := target.Get(e.From); !ok {
			changes = append(changes, Change{From: e.From, Old: e.To, Kind: "removed"})
		}
	}
	return changes
}
