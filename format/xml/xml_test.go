package xml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	represent "github.com/represent-go/represent"
	xmlfmt "github.com/represent-go/represent/format/xml"
)

func TestSerialize_SingleRootEntryBecomesDocumentElement(t *testing.T) {
	tree := represent.Mapping(
		represent.Entry{Key: "boy", Node: represent.Mapping(
			represent.Entry{Key: "forename", Node: represent.Scalar("Peter")},
		)},
	)
	data, err := xmlfmt.New().Serialize(tree)
	require.NoError(t, err)
	assert.Equal(t, `<boy><forename>Peter</forename></boy>`, string(data))
}

func TestSerialize_AttributesAndChildren(t *testing.T) {
	tree := represent.Mapping(
		represent.Entry{Key: "song", Node: represent.Mapping(
			represent.Entry{Key: "id", Node: represent.Scalar("s1"), Attribute: true},
			represent.Entry{Key: "title", Node: represent.Scalar("Scrooge")},
		)},
	)
	data, err := xmlfmt.New().Serialize(tree)
	require.NoError(t, err)
	assert.Equal(t, `<song id="s1"><title>Scrooge</title></song>`, string(data))
}

func TestSerialize_SequenceFlattensUnderContainer(t *testing.T) {
	// The container/repeat shape a collection with a wrap tag renders to.
	tree := represent.Mapping(
		represent.Entry{Key: "songs", Node: represent.Mapping(
			represent.Entry{Key: "song", Node: represent.Sequence(
				represent.Scalar("Scrooge"),
				represent.Scalar("Them and Us"),
			)},
		)},
	)
	data, err := xmlfmt.New().Serialize(tree)
	require.NoError(t, err)
	assert.Equal(t,
		`<songs><song>Scrooge</song><song>Them and Us</song></songs>`,
		string(data))
}

func TestDeserialize_AttributesRepeatsAndText(t *testing.T) {
	tree, err := xmlfmt.New().Deserialize([]byte(
		`<album name="Live"><song>Scrooge</song><song>Them and Us</song><label>x</label></album>`))
	require.NoError(t, err)

	require.Len(t, tree.Entries, 1)
	album := tree.Entries[0].Node
	assert.Equal(t, "album", tree.Entries[0].Key)

	name, ok := album.Get("name", true)
	require.True(t, ok, "attribute placement")
	assert.Equal(t, "Live", name.Value)

	songs, ok := album.Get("song", false)
	require.True(t, ok)
	require.Equal(t, represent.KindSequence, songs.Kind)
	assert.Equal(t, "Scrooge", songs.Items[0].Value)
	assert.Equal(t, "Them and Us", songs.Items[1].Value)

	label, ok := album.Get("label", false)
	require.True(t, ok)
	assert.Equal(t, "x", label.Value)
}

func TestDeserialize_Malformed(t *testing.T) {
	for _, in := range []string{`<a><b></a>`, ``} {
		_, err := xmlfmt.New().Deserialize([]byte(in))
		var me *represent.MalformedDocumentError
		require.ErrorAs(t, err, &me, "input %q", in)
		assert.Equal(t, "xml", me.Format)
	}
}

func TestRoundTrip_WrappedSchemaShape(t *testing.T) {
	in := represent.Mapping(
		represent.Entry{Key: "boy", Node: represent.Mapping(
			represent.Entry{Key: "id", Node: represent.Scalar("b1"), Attribute: true},
			represent.Entry{Key: "forename", Node: represent.Scalar("Peter")},
		)},
	)
	data, err := xmlfmt.New().Serialize(in)
	require.NoError(t, err)
	out, err := xmlfmt.New().Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
