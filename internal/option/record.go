package option

import (
	"bytes"
	"encoding/json"
	"iter"

	"gopkg.in/yaml.v3"
)

// Entry is one option setting.
type Entry struct {
	Name  Name
	Value Value
}

// Record is an ordered set of option settings. Iteration follows insertion
// order; setting an existing name replaces its value in place.
//
// The zero Record is empty and ready to use. Copies of a Record share
// storage; Clone before mutating a copy.
type Record struct {
	entries []Entry
}

// NewRecord builds a Record from entries, later duplicates replacing
// earlier ones.
func NewRecord(entries ...Entry) Record {
	var r Record
	for _, e := range entries {
		r.Set(e.Name, e.Value)
	}
	return r
}

// Len returns the number of entries.
func (r Record) Len() int { return len(r.entries) }

// Get returns the value stored for n.
func (r Record) Get(n Name) (Value, bool) {
	for _, e := range r.entries {
		if e.Name == n {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Set stores v for n, keeping the position of an existing entry.
func (r *Record) Set(n Name, v Value) {
	for i := range r.entries {
		if r.entries[i].Name == n {
			r.entries[i].Value = v
			return
		}
	}
	r.entries = append(r.entries, Entry{Name: n, Value: v})
}

// Delete removes n if present.
func (r *Record) Delete(n Name) {
	for i := range r.entries {
		if r.entries[i].Name == n {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return
		}
	}
}

// All iterates entries in order.
func (r Record) All() iter.Seq2[Name, Value] {
	return func(yield func(Name, Value) bool) {
		for _, e := range r.entries {
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in order.
func (r Record) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Clone returns a Record that shares no storage with r.
func (r Record) Clone() Record {
	return Record{entries: r.Entries()}
}

// Equal reports whether both records hold the same entries in the same order.
func (r Record) Equal(o Record) bool {
	if len(r.entries) != len(o.entries) {
		return false
	}
	for i, e := range r.entries {
		if e.Name != o.entries[i].Name || !e.Value.Equal(o.entries[i].Value) {
			return false
		}
	}
	return true
}

// Map returns the record as a plain map of native values.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.entries))
	for _, e := range r.entries {
		m[string(e.Name)] = e.Value.Any()
	}
	return m
}

// ForCommand drops options that only exist in the playground and have no
// command-line flag.
func (r Record) ForCommand() Record {
	var out Record
	for _, e := range r.entries {
		if e.Name == UseMainResponseDescriptionAsEndpointDefinitionFallback {
			continue
		}
		out.entries = append(out.entries, e)
	}
	return out
}

// MarshalJSON encodes r as a JSON object in entry order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(e.Name))
		if err != nil {
			return nil, err
		}
		val, err := e.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes r as a YAML mapping in entry order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range r.entries {
		var val yaml.Node
		if err := val.Encode(e.Value.Any()); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(e.Name)},
			&val,
		)
	}
	return node, nil
}
