package language

import (
	"bytes"
	"encoding/json"
)

// Shape tells which form a Preferences value was supplied in.
type Shape int

const (
	// ShapeNone means no preference was given.
	ShapeNone Shape = iota
	// ShapeFlat is the legacy ordered list of language names.
	ShapeFlat
	// ShapeGrouped is an ordered list of groups sharing one priority each.
	ShapeGrouped
)

// Preferences is a user's prioritised-languages setting.
//
// Two shapes are accepted. The grouped form is canonical: earlier groups
// outrank later ones and languages inside a group tie. The flat form is the
// older config format; when normalized, every language in it becomes its own
// singleton group, so a flat list keeps its full order. The zero value means
// "no preference".
type Preferences struct {
	shape  Shape
	flat   []string
	groups [][]string
}

// Flat builds preferences from the legacy flat form.
func Flat(langs ...string) Preferences {
	if len(langs) == 0 {
		return Preferences{}
	}
	return Preferences{shape: ShapeFlat, flat: append([]string(nil), langs...)}
}

// Grouped builds preferences from the canonical grouped form.
func Grouped(groups [][]string) Preferences {
	if len(groups) == 0 {
		return Preferences{}
	}
	return Preferences{shape: ShapeGrouped, groups: cloneGroups(groups)}
}

// Shape reports which form the preferences were supplied in.
func (p Preferences) Shape() Shape {
	return p.shape
}

// IsEmpty reports whether the preferences carry no entries at all.
func (p Preferences) IsEmpty() bool {
	switch p.shape {
	case ShapeFlat:
		return len(p.flat) == 0
	case ShapeGrouped:
		return len(p.groups) == 0
	default:
		return true
	}
}

// HasLanguages reports whether at least one language is named. Grouped
// preferences made only of empty groups rank nothing.
func (p Preferences) HasLanguages() bool {
	if p.shape == ShapeFlat {
		return len(p.flat) > 0
	}
	for _, g := range p.groups {
		if len(g) > 0 {
			return true
		}
	}
	return false
}

// Normalize returns the canonical grouped form, or nil when there is no
// preference. The result never shares memory with p.
func Normalize(p Preferences) [][]string {
	if p.IsEmpty() {
		return nil
	}
	if p.shape == ShapeGrouped {
		return cloneGroups(p.groups)
	}
	groups := make([][]string, len(p.flat))
	for i, lang := range p.flat {
		groups[i] = []string{lang}
	}
	return groups
}

func cloneGroups(groups [][]string) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = append(make([]string, 0, len(g)), g...)
	}
	return out
}

// MarshalJSON writes the preferences back in the shape they arrived in.
func (p Preferences) MarshalJSON() ([]byte, error) {
	switch {
	case p.IsEmpty():
		return []byte("null"), nil
	case p.shape == ShapeFlat:
		return json.Marshal(p.flat)
	default:
		return json.Marshal(p.groups)
	}
}

// UnmarshalJSON accepts null, a flat string array or an array of string
// arrays. The first element decides the shape. Decoding is permissive:
// elements of the other shape are folded in element-wise and non-string
// values are dropped rather than rejected.
func (p *Preferences) UnmarshalJSON(data []byte) error {
	*p = Preferences{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	if isArray(items[0]) {
		groups := make([][]string, 0, len(items))
		for _, item := range items {
			if isArray(item) {
				groups = append(groups, decodeStrings(item))
			} else if s, ok := decodeString(item); ok {
				groups = append(groups, []string{s})
			}
		}
		*p = Grouped(groups)
		return nil
	}

	flat := make([]string, 0, len(items))
	for _, item := range items {
		if isArray(item) {
			flat = append(flat, decodeStrings(item)...)
		} else if s, ok := decodeString(item); ok {
			flat = append(flat, s)
		}
	}
	*p = Flat(flat...)
	return nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func decodeString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func decodeStrings(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := decodeString(item); ok {
			out = append(out, s)
		}
	}
	return out
}
