package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookRoundTrip(t *testing.T) {
	tables := ToTables(sampleEntries(), true, "")

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, tables, Options{}))

	got, err := ReadWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, got, len(tables))

	// "Menu" clashes with "menu" in Excel's case-insensitive sheet names.
	assert.Equal(t, "menu", got[0].Name)
	assert.Equal(t, "dialog", got[1].Name)
	assert.Equal(t, "Menu (2)", got[2].Name)

	for i := range tables {
		assert.Equal(t, tables[i].Rows, got[i].Rows, "sheet %s", got[i].Name)
	}

	assert.Equal(t, sampleEntries()[1:2], FromTable(got[1]))
}

func TestWorkbookLayout(t *testing.T) {
	long := strings.Repeat("w", 200)
	tables := []Table{{Name: "L10N", Rows: []Row{
		{SourceFile: "a.xml", Address: "/a/@t", Original: long, Translated: "short"},
	}}}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, tables, Options{MaxWidth: 50}))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"L10N"}, wb.GetSheetList())

	for _, col := range []string{"A", "B"} {
		visible, err := wb.GetColVisible("L10N", col)
		require.NoError(t, err)
		assert.False(t, visible, "column %s", col)
	}

	for _, col := range []string{"C", "D"} {
		visible, err := wb.GetColVisible("L10N", col)
		require.NoError(t, err)
		assert.True(t, visible, "column %s", col)
	}

	width, err := wb.GetColWidth("L10N", "C")
	require.NoError(t, err)
	assert.InDelta(t, 50, width, 0.01)

	width, err = wb.GetColWidth("L10N", "D")
	require.NoError(t, err)
	assert.InDelta(t, minWidth, width, 0.01)

	first, err := wb.GetCellValue("L10N", "A1")
	require.NoError(t, err)
	assert.Equal(t, "a.xml", first, "no header row")
}

func TestWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, nil, Options{}))

	got, err := ReadWorkbook(&buf)
	require.NoError(t, err)
	assert.Equal(t, []Table{{Name: DefaultName}}, got)
}

func TestReadWorkbookSkipsHiddenSheetsAndBlankRows(t *testing.T) {
	wb := excelize.NewFile()
	defer wb.Close()

	require.NoError(t, wb.SetSheetName("Sheet1", "visible"))
	_, err := wb.NewSheet("hidden")
	require.NoError(t, err)

	require.NoError(t, wb.SetSheetRow("visible", "A1", &[]any{"a.xml", "/a/@t", "x", "y"}))
	require.NoError(t, wb.SetSheetRow("visible", "A3", &[]any{"a.xml", "/a/@u", "1.50"}))
	require.NoError(t, wb.SetSheetRow("hidden", "A1", &[]any{"h.xml", "/h/@t", "h", "h"}))
	require.NoError(t, wb.SetSheetVisible("hidden", false))

	var buf bytes.Buffer
	_, err = wb.WriteTo(&buf)
	require.NoError(t, err)

	got, err := ReadWorkbook(&buf)
	require.NoError(t, err)
	assert.Equal(t, []Table{{Name: "visible", Rows: []Row{
		{SourceFile: "a.xml", Address: "/a/@t", Original: "x", Translated: "y"},
		{SourceFile: "a.xml", Address: "/a/@u", Original: "1.50"},
	}}}, got)
}

func TestSaveAndLoadWorkbook(t *testing.T) {
	fsys := afero.NewMemMapFs()
	tables := ToTables(sampleEntries(), false, "")

	require.NoError(t, SaveWorkbook(fsys, "/out/strings.xlsx", tables, Options{}))

	got, err := LoadWorkbook(fsys, "/out/strings.xlsx")
	require.NoError(t, err)
	assert.Equal(t, tables, got)
}

func TestWorkbookErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bad.xlsx", []byte("not a zip"), 0o644))

	_, err := LoadWorkbook(fsys, "/bad.xlsx")
	var openErr *OpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, "/bad.xlsx", openErr.Path)

	_, err = LoadWorkbook(fsys, "/missing.xlsx")
	require.True(t, errors.As(err, &openErr))

	err = SaveWorkbook(afero.NewReadOnlyFs(fsys), "/out.xlsx", nil, Options{})
	var saveErr *SaveError
	require.True(t, errors.As(err, &saveErr))
	assert.Equal(t, "/out.xlsx", saveErr.Path)
}

func TestSheetNames(t *testing.T) {
	long := strings.Repeat("x", 40)

	got := SheetNames([]string{"menu", "MENU", "a/b:c", "", "'quoted'", long, long, "menu"})

	assert.Equal(t, []string{
		"menu",
		"MENU (2)",
		"a_b_c",
		"Sheet",
		"quoted",
		strings.Repeat("x", 31),
		strings.Repeat("x", 27) + " (2)",
		"menu (3)",
	}, got)
}
