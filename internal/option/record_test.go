package option

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecord_SetKeepsPosition(t *testing.T) {
	var r Record
	r.Set(BaseURL, String("a"))
	r.Set(GroupStrategy, String("tag"))
	r.Set(BaseURL, String("b"))

	assert.Equal(t, []Entry{
		{BaseURL, String("b")},
		{GroupStrategy, String("tag")},
	}, r.Entries())
}

func TestRecord_Delete(t *testing.T) {
	r := NewRecord(
		Entry{BaseURL, String("a")},
		Entry{GroupStrategy, String("tag")},
		Entry{NoWithAlias, Bool(true)},
	)
	clone := r.Clone()

	r.Delete(GroupStrategy)
	r.Delete(APIClientName)

	assert.Equal(t, 2, r.Len())
	_, ok := r.Get(GroupStrategy)
	assert.False(t, ok)
	assert.Equal(t, 3, clone.Len(), "clone must not see deletions")
}

func TestRecord_AllStopsEarly(t *testing.T) {
	r := NewRecord(Entry{BaseURL, String("a")}, Entry{GroupStrategy, String("tag")})

	var seen []Name
	for n := range r.All() {
		seen = append(seen, n)
		break
	}
	assert.Equal(t, []Name{BaseURL}, seen)
}

func TestRecord_ForCommand(t *testing.T) {
	r := NewRecord(
		Entry{UseMainResponseDescriptionAsEndpointDefinitionFallback, Bool(true)},
		Entry{BaseURL, String("/api")},
	)

	got := r.ForCommand()

	assert.Equal(t, []Entry{{BaseURL, String("/api")}}, got.Entries())
	assert.Equal(t, 2, r.Len())
}

func TestRecord_MarshalJSONKeepsOrder(t *testing.T) {
	r := NewRecord(
		Entry{GroupStrategy, String("tag")},
		Entry{BaseURL, String("http://x")},
		Entry{ComplexityThreshold, Number(2)},
	)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"groupStrategy":"tag","baseUrl":"http://x","complexityThreshold":2}`, string(data))

	empty, err := json.Marshal(Record{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}

func TestRecord_MarshalYAMLKeepsOrder(t *testing.T) {
	r := NewRecord(
		Entry{ShouldExportAllTypes, Bool(true)},
		Entry{APIClientName, String("pets")},
	)

	data, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "shouldExportAllTypes: true\napiClientName: pets\n", string(data))
}
