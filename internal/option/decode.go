package option

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/validator"
	"github.com/thoreinstein/zodplay/pkg/fileutil"
)

// Format is an options file syntax.
type Format string

// Supported options file formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "options file %q", path)
	}
}

// Load reads and decodes the options file at path.
func Load(path string) (Document, *validator.Result, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Document{}, nil, err
	}
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return Document{}, nil, errors.Wrapf(err, "reading options file %q", path)
	}
	return Decode(format, filepath.Base(path), data)
}

// Decode parses data in the given format. Syntax errors are returned as
// errors; semantic problems (unknown options, wrong types) are reported in
// the result and the offending entries are left out of the document.
//
// YAML, JSON and HCL keep the document's key order. TOML tables carry no
// order once decoded, so TOML options come back in canonical order.
func Decode(format Format, filename string, data []byte) (Document, *validator.Result, error) {
	var (
		raws []rawEntry
		err  error
	)
	switch format {
	case FormatYAML:
		raws, err = decodeYAML(data)
	case FormatJSON:
		raws, err = decodeJSON(data)
	case FormatTOML:
		raws, err = decodeTOML(data)
	case FormatHCL:
		raws, err = decodeHCL(filename, data)
	default:
		err = errors.Wrapf(errors.ErrUnsupportedFormat, "format %q", format)
	}
	if err != nil {
		return Document{}, nil, errors.Wrapf(err, "decoding %s", filename)
	}

	doc, result := build(raws)
	return doc, result, nil
}

func decodeYAML(data []byte) ([]rawEntry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "parsing YAML")
	}
	if root.Kind == 0 {
		return nil, nil
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, errors.Newf("line %d: expected a mapping of options", doc.Line)
	}

	raws := make([]rawEntry, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		var val any
		if err := doc.Content[i+1].Decode(&val); err != nil {
			return nil, errors.Wrapf(err, "line %d", doc.Content[i+1].Line)
		}
		raws = append(raws, rawEntry{key: doc.Content[i].Value, val: val})
	}
	return raws, nil
}

func decodeJSON(data []byte) ([]rawEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("malformed JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("expected a JSON object of options")
	}

	var raws []rawEntry
	root.ForEach(func(key, value gjson.Result) bool {
		raws = append(raws, rawEntry{key: key.String(), val: jsonNative(value)})
		return true
	})
	return raws, nil
}

func jsonNative(r gjson.Result) any {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return r.Num
	case gjson.String:
		return r.Str
	case gjson.Null:
		return nil
	}
	if r.IsArray() {
		var items []any
		for _, item := range r.Array() {
			items = append(items, jsonNative(item))
		}
		return items
	}
	return r.Value()
}

func decodeTOML(data []byte) ([]rawEntry, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing TOML")
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if d := Name(a).rank() - Name(b).rank(); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	raws := make([]rawEntry, 0, len(keys))
	for _, k := range keys {
		raws = append(raws, rawEntry{key: k, val: m[k]})
	}
	return raws, nil
}

func decodeHCL(filename string, data []byte) ([]rawEntry, error) {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errors.New("unexpected HCL body")
	}
	if len(body.Blocks) > 0 {
		b := body.Blocks[0]
		return nil, errors.Newf("%s: blocks are not allowed in options files", b.TypeRange)
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, a := range body.Attributes {
		attrs = append(attrs, a)
	}
	slices.SortFunc(attrs, func(a, b *hclsyntax.Attribute) int {
		return a.SrcRange.Start.Byte - b.SrcRange.Start.Byte
	})

	raws := make([]rawEntry, 0, len(attrs))
	for _, a := range attrs {
		v, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := ctyNative(v)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", a.SrcRange)
		}
		raws = append(raws, rawEntry{key: a.Name, val: native})
	}
	return raws, nil
}

// ctyNative converts the cty values an options file can hold.
func ctyNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType():
		var items []any
		for it := v.ElementIterator(); it.Next(); {
			_, el := it.Element()
			native, err := ctyNative(el)
			if err != nil {
				return nil, err
			}
			items = append(items, native)
		}
		return items, nil
	default:
		return nil, errors.Newf("unsupported value of type %s", ty.FriendlyName())
	}
}
