package document

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lion/internal/address"
	"lion/internal/diagnostic"
)

const menuXML = `<?xml version="1.0" encoding="utf-8"?>
<menu xmlns:ui="urn:ui" lang="en">
  <item id="1" text="Open"/>
  <group name="edit">
    <item id="2" text="Cut"/>
    <item id="3" text="Copy"/>
  </group>
  <item id="4" text="Quit"/>
</menu>
`

func TestParse(t *testing.T) {
	doc, err := ParseString("in/menu.xml", menuXML)
	require.NoError(t, err)

	assert.Equal(t, "menu.xml", doc.Name())
	assert.Equal(t, "menu", doc.Root().Tag)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"empty", ""},
		{"text only", "just words"},
		{"unterminated attribute", `<config><item text="oops></config>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString("bad.xml", tt.xml)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "bad.xml", perr.Path)
		})
	}
}

func TestLookup(t *testing.T) {
	doc, err := ParseString("menu.xml", menuXML)
	require.NoError(t, err)

	tests := []struct {
		path   address.Path
		wantID string
	}{
		{address.Path{{Name: "menu"}, {Name: "item", Index: 1}}, "1"},
		{address.Path{{Name: "menu"}, {Name: "item", Index: 2}}, "4"},
		{address.Path{{Name: "menu", Index: 1}, {Name: "group", Index: 1}, {Name: "item", Index: 2}}, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			el := doc.Lookup(tt.path)
			require.NotNil(t, el)
			assert.Equal(t, tt.wantID, el.SelectAttrValue("id", ""))
		})
	}

	missing := []address.Path{
		nil,
		{{Name: "other"}},
		{{Name: "menu", Index: 2}},
		{{Name: "menu"}, {Name: "item", Index: 3}},
		{{Name: "menu"}, {Name: "group", Index: 1}, {Name: "nope", Index: 1}},
	}
	for _, p := range missing {
		assert.Nil(t, doc.Lookup(p), p.String())
	}

	assert.Equal(t, "menu", doc.Lookup(address.Path{{Name: "menu"}}).Tag)
}

func TestAttrSkipsNamespaceDeclarations(t *testing.T) {
	doc, err := ParseString("menu.xml", menuXML)
	require.NoError(t, err)

	root := doc.Root()
	assert.Nil(t, Attr(root, "ui"))
	require.NotNil(t, Attr(root, "lang"))
	assert.Equal(t, "en", Attr(root, "lang").Value)
}

func TestSaveAndLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/in/menu.xml", []byte(menuXML), 0o644))

	doc, err := Load(fsys, "/in/menu.xml")
	require.NoError(t, err)

	Attr(doc.Lookup(address.Path{{Name: "menu"}, {Name: "item", Index: 1}}), "text").Value = "Ouvrir"

	require.NoError(t, fsys.MkdirAll("/out", 0o755))
	require.NoError(t, doc.Save(fsys, "/out/menu.xml"))

	again, err := Load(fsys, "/out/menu.xml")
	require.NoError(t, err)
	assert.Equal(t, "Ouvrir", again.Lookup(address.Path{{Name: "menu"}, {Name: "item", Index: 1}}).SelectAttrValue("text", ""))
	assert.Equal(t, "Cut", again.Lookup(address.Path{{Name: "menu"}, {Name: "group", Index: 1}, {Name: "item", Index: 1}}).SelectAttrValue("text", ""))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope.xml")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestSaveError(t *testing.T) {
	doc, err := ParseString("menu.xml", menuXML)
	require.NoError(t, err)

	err = doc.Save(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/out/menu.xml")

	var serr *SaveError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "/out/menu.xml", serr.Path)
}

func TestResolve(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, p := range []string{
		"/data/a.xml",
		"/data/sub/b.xml",
		"/data/sub/deeper/C.XML",
		"/data/sub/notes.txt",
		"/single.xml",
	} {
		require.NoError(t, afero.WriteFile(fsys, p, []byte("<x/>"), 0o644))
	}

	diags := &diagnostic.Diagnostics{}
	files := Resolve(fsys, []string{"/single.xml", "/data", "/missing"}, "", diags)

	assert.Equal(t, []string{
		"/single.xml",
		"/data/a.xml",
		"/data/sub/b.xml",
		"/data/sub/deeper/C.XML",
	}, files)

	assert.Equal(t, 3, diags.Count(diagnostic.EventInputPath))
	notFound := diags.OfEvent(diagnostic.EventFileNotFound)
	require.Len(t, notFound, 1)
	assert.Equal(t, "/missing", notFound[0].Subject)
}

func TestResolveCustomPattern(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/d/strings.resx", []byte("<x/>"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/d/strings.xml", []byte("<x/>"), 0o644))

	files := Resolve(fsys, []string{"/d"}, "*.resx", &diagnostic.Diagnostics{})
	assert.Equal(t, []string{"/d/strings.resx"}, files)
}

func TestSiblings(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, p := range []string{"/t/strings.xlsx", "/t/a.xml", "/t/b.xml", "/t/sub/c.xml"} {
		require.NoError(t, afero.WriteFile(fsys, p, []byte("<x/>"), 0o644))
	}

	files, err := Siblings(fsys, "/t", "*.xml")
	require.NoError(t, err)
	assert.Equal(t, []string{"/t/a.xml", "/t/b.xml"}, files)
}
