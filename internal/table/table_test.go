package table

import (
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lion/internal/entry"
)

func sampleEntries() []entry.Entry {
	return []entry.Entry{
		{SourceFile: "menu.xml", Address: "/menu/item[1]/@text", Original: "Open", Translated: "Ouvrir"},
		{SourceFile: "dialog.xml", Address: "/dialog/@title", Original: "About"},
		{SourceFile: "menu.xml", Address: "/menu/item[2]/@text", Original: "Close"},
		{SourceFile: "Menu.XML", Address: "/menu/item[3]/@text", Original: "Quit"},
		{SourceFile: "menu.txt", Address: "/menu/@title", Original: "Menu"},
	}
}

func TestRowCells(t *testing.T) {
	e := sampleEntries()[0]
	r := RowOf(e)

	assert.Equal(t, []string{"menu.xml", "/menu/item[1]/@text", "Open", "Ouvrir"}, r.Cells())
	assert.Equal(t, r, RowFromCells(r.Cells()))
	assert.Equal(t, e, r.Entry())
}

func TestRowFromCellsPositional(t *testing.T) {
	assert.Equal(t, Row{SourceFile: "a.xml", Address: "/a/@b"}, RowFromCells([]string{"a.xml", "/a/@b"}))
	assert.Equal(t, Row{SourceFile: "1", Address: "2", Original: "3", Translated: "4"},
		RowFromCells([]string{"1", "2", "3", "4", "ignored"}))
	assert.True(t, RowFromCells(nil).IsBlank())
	assert.True(t, RowFromCells([]string{"", "", "", ""}).IsBlank())
	assert.False(t, RowFromCells([]string{"", "", "", "x"}).IsBlank())
}

func TestToTablesSingle(t *testing.T) {
	tables := ToTables(sampleEntries(), false, "")

	require.Len(t, tables, 1)
	assert.Equal(t, DefaultName, tables[0].Name)
	assert.Len(t, tables[0].Rows, 5)
	assert.Equal(t, "Open", tables[0].Rows[0].Original)

	assert.Equal(t, "Strings", ToTables(nil, false, "Strings")[0].Name)
}

func TestToTablesGrouped(t *testing.T) {
	tables := ToTables(sampleEntries(), true, "")

	var names []string
	for _, tb := range tables {
		names = append(names, tb.Name)
	}

	// Groups are keyed on the stem, so menu.xml and menu.txt share a table
	// while Menu.XML differs by case.
	assert.Equal(t, []string{"menu", "dialog", "Menu"}, names)
	assert.Len(t, tables[0].Rows, 3)
	assert.Equal(t, "Close", tables[0].Rows[1].Original)
	assert.Equal(t, "Menu", tables[0].Rows[2].Original)
}

func TestToTablesEmptyGrouped(t *testing.T) {
	tables := ToTables(nil, true, "")

	require.Len(t, tables, 1)
	assert.Equal(t, DefaultName, tables[0].Name)
	assert.Empty(t, tables[0].Rows)
}

func TestGroupingPartition(t *testing.T) {
	entries := sampleEntries()

	single := ToTables(entries, false, "")
	grouped := ToTables(entries, true, "")

	var union []Row
	for _, tb := range grouped {
		for _, r := range tb.Rows {
			assert.Equal(t, tb.Name, r.Entry().Group(), "row %s in wrong table", r.Address)
		}

		union = append(union, tb.Rows...)
	}

	sortRows := func(rows []Row) {
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].SourceFile+rows[i].Address < rows[j].SourceFile+rows[j].Address
		})
	}

	want := append([]Row(nil), single[0].Rows...)
	sortRows(want)
	sortRows(union)

	assert.Equal(t, want, union, spew.Sdump(grouped))
}

func TestFromTables(t *testing.T) {
	tables := []Table{
		{Name: "a", Rows: []Row{
			{SourceFile: "a.xml", Address: "/a/@t", Original: "x", Translated: "y"},
			{},
			{SourceFile: "a.xml", Address: "/a/@t", Original: "x", Translated: "z"},
		}},
		{Name: "empty"},
		{Name: "b", Rows: []Row{{SourceFile: "b.xml", Address: "/b/@t", Original: "q"}}},
	}

	got := FromTables(tables)

	assert.Equal(t, []entry.Entry{
		{SourceFile: "a.xml", Address: "/a/@t", Original: "x", Translated: "y"},
		{SourceFile: "a.xml", Address: "/a/@t", Original: "x", Translated: "z"},
		{SourceFile: "b.xml", Address: "/b/@t", Original: "q"},
	}, got)
}

func TestEntriesSurviveTables(t *testing.T) {
	entries := sampleEntries()

	assert.Equal(t, entries, FromTables(ToTables(entries, false, "")))
	assert.ElementsMatch(t, entries, FromTables(ToTables(entries, true, "")))
}
