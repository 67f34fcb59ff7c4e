package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrGetChild(t *testing.T) {
	s := New("test")

	config := s.AddOrGetChild(s.Root(), "config")
	again := s.AddOrGetChild(s.Root(), "config")
	assert.Equal(t, config, again)

	item := s.AddOrGetChild(config, "item")
	group := s.AddOrGetChild(config, "group")
	assert.NotEqual(t, item, group)
	assert.Equal(t, []NodeID{item, group}, s.Children(config))
	assert.Equal(t, 4, s.Len())

	parent, ok := s.Parent(item)
	require.True(t, ok)
	assert.Equal(t, config, parent)

	_, ok = s.Parent(s.Root())
	assert.False(t, ok)

	got, ok := s.Child(config, "item")
	require.True(t, ok)
	assert.Equal(t, item, got)

	_, ok = s.Child(config, "missing")
	assert.False(t, ok)
}

func TestPathAndLookup(t *testing.T) {
	s := New("test")
	config := s.AddOrGetChild(s.Root(), "config")
	item := s.AddOrGetChild(s.AddOrGetChild(config, "group"), "item")

	assert.Equal(t, "", s.Path(s.Root()))
	assert.Equal(t, "/config", s.Path(config))
	assert.Equal(t, "/config/group/item", s.Path(item))

	id, ok := s.Lookup("/config/group/item")
	require.True(t, ok)
	assert.Equal(t, item, id)

	id, ok = s.Lookup("")
	require.True(t, ok)
	assert.Equal(t, s.Root(), id)

	_, ok = s.Lookup("/config/item")
	assert.False(t, ok)

	_, ok = s.Lookup("config")
	assert.False(t, ok)
}

func TestKinds(t *testing.T) {
	s := New("test")
	item := s.AddOrGetChild(s.AddOrGetChild(s.Root(), "config"), "item")

	s.SetKind(item, "text", Untyped)
	s.SetKind(item, "id", Untyped)
	s.SetKind(item, "text", TranslatableString)

	assert.Equal(t, []string{"text", "id"}, s.Attributes(item))
	assert.True(t, s.IsTranslatable(item, "text"))
	assert.False(t, s.IsTranslatable(item, "id"))
	assert.False(t, s.IsTranslatable(item, "absent"))

	kind, ok := s.Kind(item, "id")
	require.True(t, ok)
	assert.Equal(t, Untyped, kind)
}

func TestParseAttributeKind(t *testing.T) {
	tests := []struct {
		in      string
		want    AttributeKind
		wantErr bool
	}{
		{"none", Untyped, false},
		{"None", Untyped, false},
		{"string", TranslatableString, false},
		{"STRING", TranslatableString, false},
		{"text", Untyped, true},
		{"", Untyped, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAttributeKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "none", Untyped.String())
	assert.Equal(t, "string", TranslatableString.String())
	assert.Equal(t, "unknown", AttributeKind(9).String())
}

func TestWalkAndFields(t *testing.T) {
	s := New("test")
	config := s.AddOrGetChild(s.Root(), "config")
	s.SetKind(config, "version", Untyped)
	group := s.AddOrGetChild(config, "group")
	s.SetKind(group, "title", TranslatableString)
	item := s.AddOrGetChild(group, "item")
	s.SetKind(item, "text", TranslatableString)
	s.SetKind(item, "id", Untyped)
	footer := s.AddOrGetChild(config, "footer")
	s.SetKind(footer, "note", Untyped)

	var visited []string
	s.Walk(func(id NodeID) bool {
		visited = append(visited, s.Path(id))
		return true
	})
	assert.Equal(t, []string{"/config", "/config/group", "/config/group/item", "/config/footer"}, visited)

	visited = nil
	s.Walk(func(id NodeID) bool {
		visited = append(visited, s.Path(id))
		return id != group
	})
	assert.Equal(t, []string{"/config", "/config/group", "/config/footer"}, visited)

	keys := make([]string, 0)
	for _, f := range s.Fields() {
		keys = append(keys, f.Key())
	}
	assert.Equal(t, []string{
		"/config/@version",
		"/config/group/@title",
		"/config/group/item/@text",
		"/config/group/item/@id",
		"/config/footer/@note",
	}, keys)

	translatable := s.Translatable()
	require.Len(t, translatable, 2)
	assert.Equal(t, "/config/group/@title", translatable[0].Key())
	assert.Equal(t, "/config/group/item/@text", translatable[1].Key())
}

func TestSplitFieldKey(t *testing.T) {
	path, attr, ok := SplitFieldKey("/config/item/@text")
	require.True(t, ok)
	assert.Equal(t, "/config/item", path)
	assert.Equal(t, "text", attr)

	_, _, ok = SplitFieldKey("/config/item")
	assert.False(t, ok)

	_, _, ok = SplitFieldKey("/config/item/@")
	assert.False(t, ok)
}
