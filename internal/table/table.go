package table

import (
	"strings"

	"lion/internal/address"
	"lion/internal/common"
	"lion/internal/entry"
)

// DefaultName names the single table produced when entries are not grouped.
const DefaultName = "L10N"

// Columns is the number of cells in a row.
const Columns = 4

// Row is one entry laid out as table cells.
type Row struct {
	SourceFile string
	Address    string
	Original   string
	Translated string
}

// Table is a named list of rows, one sheet in a workbook.
type Table struct {
	Name string
	Rows []Row
}

// RowOf lays out an entry as a row.
func RowOf(e entry.Entry) Row {
	return Row{
		SourceFile: e.SourceFile,
		Address:    string(e.Address),
		Original:   e.Original,
		Translated: e.Translated,
	}
}

// RowFromCells reads a row positionally. Missing trailing cells are empty and
// cells past the fourth are ignored.
func RowFromCells(cells []string) Row {
	var c [Columns]string
	copy(c[:], cells)

	return Row{SourceFile: c[0], Address: c[1], Original: c[2], Translated: c[3]}
}

// Cells returns the row's cells in column order.
func (r Row) Cells() []string {
	return []string{r.SourceFile, r.Address, r.Original, r.Translated}
}

// IsBlank reports whether every cell is empty.
func (r Row) IsBlank() bool {
	return r.SourceFile == "" && r.Address == "" && r.Original == "" && r.Translated == ""
}

// Entry converts the row back into an entry, keeping the translation.
func (r Row) Entry() entry.Entry {
	return entry.Entry{
		SourceFile: r.SourceFile,
		Address:    address.Address(r.Address),
		Original:   r.Original,
		Translated: r.Translated,
	}
}

// ToTables lays out entries as tables. With groupByFile each distinct
// source file stem gets its own table, in order of first appearance;
// otherwise all entries go into one table called name (DefaultName when
// empty). At least one table is always returned.
func ToTables(entries []entry.Entry, groupByFile bool, name string) []Table {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}

	if !groupByFile || len(entries) == 0 {
		return []Table{{Name: name, Rows: rowsOf(entries)}}
	}

	keys, groups := common.GroupBy(entries, entry.Entry.Group)

	tables := make([]Table, 0, len(keys))
	for _, k := range keys {
		tables = append(tables, Table{Name: k, Rows: rowsOf(groups[k])})
	}

	return tables
}

func rowsOf(entries []entry.Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, RowOf(e))
	}

	return rows
}

// FromTable reads the entries of one table in row order. Blank rows are
// skipped; duplicates are kept.
func FromTable(t Table) []entry.Entry {
	entries := make([]entry.Entry, 0, len(t.Rows))

	for _, r := range t.Rows {
		if r.IsBlank() {
			continue
		}

		entries = append(entries, r.Entry())
	}

	return entries
}

// FromTables concatenates the entries of every table.
func FromTables(ts []Table) []entry.Entry {
	var entries []entry.Entry
	for _, t := range ts {
		entries = append(entries, FromTable(t)...)
	}

	return entries
}
