package json_test

import (
	encjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	represent "github.com/represent-go/represent"
	jsonfmt "github.com/represent-go/represent/format/json"
)

func TestSerialize_PreservesEntryOrder(t *testing.T) {
	tree := represent.Mapping(
		represent.Entry{Key: "forename", Node: represent.Scalar("Peter")},
		represent.Entry{Key: "surename", Node: represent.Scalar("Pan")},
		represent.Entry{Key: "origin", Node: represent.Mapping(
			represent.Entry{Key: "title", Node: represent.Scalar("Neverland")},
		)},
	)
	data, err := jsonfmt.New().Serialize(tree)
	require.NoError(t, err)
	assert.Equal(t,
		`{"forename":"Peter","surename":"Pan","origin":{"title":"Neverland"}}`,
		string(data))
}

func TestSerialize_ScalarShapes(t *testing.T) {
	data, err := jsonfmt.New().Serialize(represent.Sequence(
		represent.Scalar("a"),
		represent.Scalar(encjson.Number("1.5")),
		represent.Scalar(true),
		represent.Scalar(nil),
	))
	require.NoError(t, err)
	assert.Equal(t, `["a",1.5,true,null]`, string(data))
}

func TestDeserialize_BuildsOrderedTree(t *testing.T) {
	tree, err := jsonfmt.New().Deserialize([]byte(`{"b":1,"a":[true,null],"c":{"x":"y"}}`))
	require.NoError(t, err)
	require.Equal(t, represent.KindMapping, tree.Kind)
	require.Len(t, tree.Entries, 3)
	assert.Equal(t, "b", tree.Entries[0].Key)
	assert.Equal(t, encjson.Number("1"), tree.Entries[0].Node.Value)
	assert.Equal(t, represent.KindSequence, tree.Entries[1].Node.Kind)
	assert.True(t, tree.Entries[1].Node.Items[1].IsNull())
	x, ok := tree.Entries[2].Node.Get("x", false)
	require.True(t, ok)
	assert.Equal(t, "y", x.Value)
}

func TestDeserialize_MalformedInput(t *testing.T) {
	for _, in := range []string{`{"a":`, `{} trailing`, ``} {
		_, err := jsonfmt.New().Deserialize([]byte(in))
		var me *represent.MalformedDocumentError
		require.ErrorAs(t, err, &me, "input %q", in)
		assert.Equal(t, "json", me.Format)
	}
}

func TestRoundTrip_ThroughBytes(t *testing.T) {
	in := represent.Mapping(
		represent.Entry{Key: "title", Node: represent.Scalar("Scrooge")},
		represent.Entry{Key: "plays", Node: represent.Scalar(encjson.Number("101"))},
		represent.Entry{Key: "tags", Node: represent.Sequence(
			represent.Scalar("punk"), represent.Scalar("ska"),
		)},
	)
	data, err := jsonfmt.New().Serialize(in)
	require.NoError(t, err)
	out, err := jsonfmt.New().Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSerialize_Indented(t *testing.T) {
	data, err := jsonfmt.Adapter{Indent: "  "}.Serialize(represent.Mapping(
		represent.Entry{Key: "a", Node: represent.Scalar(encjson.Number("1"))},
	))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}
