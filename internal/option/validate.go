package option

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/validator"
)

// ErrInvalidOptions indicates an options document failed validation.
var ErrInvalidOptions = errors.New("invalid options")

// rawEntry is one key/value pair of a decoded document before validation.
type rawEntry struct {
	key string
	val any
}

// Document is a validated options file: the option record plus the list of
// boolean flags stored under BooleansKey.
type Document struct {
	Options  Record
	Booleans []string
}

// Relevant projects the document.
func (d Document) Relevant() Record {
	return Project(d.Options, d.Booleans)
}

// Merged folds the boolean flags into the options, as saved by the form.
func (d Document) Merged() Record {
	return Merge(d.Options, d.Booleans)
}

// build validates raw entries in order and keeps the ones that pass.
func build(raws []rawEntry) (Document, *validator.Result) {
	result := &validator.Result{}
	var doc Document

	for _, raw := range raws {
		if raw.val == nil {
			continue
		}
		if raw.key == BooleansKey {
			doc.Booleans = append(doc.Booleans, checkBooleans(raw.val, result)...)
			continue
		}

		name := Name(raw.key)
		if !name.Known() {
			result.AddError(raw.key, "unknown option", nil)
			continue
		}

		v, ok := FromAny(raw.val)
		if !ok {
			result.AddError(raw.key, fmt.Sprintf("expected %s", name.Kind()), raw.val)
			continue
		}
		if !checkValue(name, v, result) {
			continue
		}
		doc.Options.Set(name, v)
	}

	return doc, result
}

func checkValue(name Name, v Value, result *validator.Result) bool {
	if v.Kind() != name.Kind() {
		result.AddError(string(name), fmt.Sprintf("expected %s, got %s", name.Kind(), v.Kind()), v.Any())
		return false
	}
	if c := name.Choices(); c != nil && v.Truthy() && !slices.Contains(c, v.String()) {
		result.AddError(string(name), "must be one of "+strings.Join(c, ", "), v.Any())
		return false
	}
	return true
}

func checkBooleans(val any, result *validator.Result) []string {
	items, ok := val.([]any)
	if !ok {
		result.AddError(BooleansKey, "expected a list of option names", val)
		return nil
	}

	var out []string
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			result.AddError(BooleansKey, "expected an option name", item)
			continue
		}
		if n := Name(s); !n.Known() || n.Kind() != KindBool {
			result.AddError(BooleansKey, "not a boolean option", s)
			continue
		}
		out = append(out, s)
	}
	return out
}

// Validate checks an in-memory record and boolean flag list against the
// option set.
func Validate(rec Record, booleans []string) *validator.Result {
	raws := make([]rawEntry, 0, rec.Len()+1)
	for n, v := range rec.All() {
		raws = append(raws, rawEntry{key: string(n), val: v.Any()})
	}
	if len(booleans) > 0 {
		items := make([]any, len(booleans))
		for i, b := range booleans {
			items[i] = b
		}
		raws = append(raws, rawEntry{key: BooleansKey, val: items})
	}
	_, result := build(raws)
	return result
}
