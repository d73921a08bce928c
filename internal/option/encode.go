package option

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/pelletier/go-toml/v2"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/zodplay/internal/errors"
)

// Encode renders doc in format. YAML, JSON and HCL keep entry order; TOML
// output is sorted by key. The boolean flag list, when present, is written
// last under BooleansKey.
func Encode(format Format, doc Document) ([]byte, error) {
	switch format {
	case FormatYAML:
		return encodeYAML(doc)
	case FormatJSON:
		return encodeJSON(doc)
	case FormatTOML:
		return encodeTOML(doc)
	case FormatHCL:
		return encodeHCL(doc), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", format)
	}
}

func encodeYAML(doc Document) ([]byte, error) {
	m, err := doc.Options.MarshalYAML()
	if err != nil {
		return nil, err
	}
	node := m.(*yaml.Node)
	if len(doc.Booleans) > 0 {
		var list yaml.Node
		if err := list.Encode(doc.Booleans); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: BooleansKey},
			&list,
		)
	}
	if len(node.Content) == 0 {
		return []byte("{}\n"), nil
	}
	return yaml.Marshal(node)
}

func encodeJSON(doc Document) ([]byte, error) {
	data, err := doc.Options.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if len(doc.Booleans) > 0 {
		list, err := json.Marshal(doc.Booleans)
		if err != nil {
			return nil, err
		}
		data = data[:len(data)-1]
		if doc.Options.Len() > 0 {
			data = append(data, ',')
		}
		data = append(data, `"`+BooleansKey+`":`...)
		data = append(data, list...)
		data = append(data, '}')
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, errors.Wrap(err, "indenting JSON")
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func encodeTOML(doc Document) ([]byte, error) {
	m := doc.Options.Map()
	if len(doc.Booleans) > 0 {
		m[BooleansKey] = doc.Booleans
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "encoding TOML")
	}
	return data, nil
}

func encodeHCL(doc Document) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for n, v := range doc.Options.All() {
		body.SetAttributeValue(string(n), ctyValue(v))
	}
	if len(doc.Booleans) > 0 {
		items := make([]cty.Value, len(doc.Booleans))
		for i, b := range doc.Booleans {
			items[i] = cty.StringVal(b)
		}
		body.SetAttributeValue(BooleansKey, cty.TupleVal(items))
	}
	return f.Bytes()
}

func ctyValue(v Value) cty.Value {
	switch v.Kind() {
	case KindBool:
		return cty.BoolVal(v.b)
	case KindString:
		return cty.StringVal(v.s)
	case KindNumber:
		if math.IsNaN(v.n) {
			return cty.NullVal(cty.Number)
		}
		return cty.NumberVal(big.NewFloat(v.n))
	default:
		return cty.NullVal(cty.DynamicPseudoType)
	}
}
