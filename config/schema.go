package config

import "sort"

// Kind names the primitive type a schema leaf requires.
type Kind int

const (
	String Kind = iota
	Bool
	Int
	List
	Map
)

// Field is one schema entry: a primitive leaf, or a nested mapping when
// Kind is Map (Sub then holds the required sub-schema).
type Field struct {
	Kind Kind
	Sub  Schema
}

// Schema is the required shape of a document section.
type Schema map[string]Field

// Required is the shape every config document must satisfy.  Any missing
// key or type mismatch is fatal to the existing file: the store backs it
// up and regenerates defaults rather than healing individual keys.
var Required = Schema{
	"root_dir":             {Kind: String},
	"default_bg_highlight": {Kind: Int},
	"color_upper_bound":    {Kind: Int},
	"offset_settings": {Kind: Map, Sub: Schema{
		"default_fg_offset":   {Kind: Int},
		"default_bg_offset":   {Kind: Int},
		"highlight_intensity": {Kind: Int},
	}},
	"script_settings": {Kind: Map, Sub: Schema{
		"line_numbering":     {Kind: Bool},
		"theme_name":         {Kind: String},
		"themes_dir":         {Kind: String},
		"autogen_themes_dir": {Kind: String},
		"autogen_themes":     {Kind: Bool},
	}},
}

// Check recursively compares doc's shape against schema and returns the
// dotted key paths of absent keys and of keys whose value has the wrong
// primitive type.  Keys are visited in sorted order so output is stable.
// Both lists empty means every schema leaf is present with the expected
// type.
func Check(doc map[string]any, schema Schema) (missing, mismatched []string) {
	return check(doc, schema, "")
}

func check(doc map[string]any, schema Schema, prefix string) (missing, mismatched []string) {
	keys := make([]string, 0, len(schema))
	for key := range schema {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := schema[key]
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		v, present := doc[key]

		if field.Kind == Map {
			sub, isMap := v.(map[string]any)
			if !present || !isMap {
				missing = append(missing, full)
				continue
			}
			m, t := check(sub, field.Sub, full)
			missing = append(missing, m...)
			mismatched = append(mismatched, t...)
			continue
		}

		if !present {
			missing = append(missing, full)
			continue
		}
		if !field.matches(v) {
			mismatched = append(mismatched, full)
		}
	}
	return missing, mismatched
}

// matches reports whether v (as decoded by yaml.v3 into any) satisfies the
// field's primitive kind.
func (f Field) matches(v any) bool {
	switch f.Kind {
	case String:
		_, ok := v.(string)
		return ok
	case Bool:
		_, ok := v.(bool)
		return ok
	case Int:
		_, ok := v.(int)
		return ok
	case List:
		_, ok := v.([]any)
		return ok
	case Map:
		_, ok := v.(map[string]any)
		return ok
	}
	return false
}
