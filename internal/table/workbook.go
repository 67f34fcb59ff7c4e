package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

const (
	// MaxSheetName is the longest sheet name Excel accepts.
	MaxSheetName = 31
	// DefaultMaxWidth caps the width of the visible text columns.
	DefaultMaxWidth = 80.0
	minWidth        = 10.0
	hiddenColumns   = "A:B"
)

// Options controls how workbooks are written.
type Options struct {
	// MaxWidth caps the width of the original and translated columns.
	// Zero means DefaultMaxWidth.
	MaxWidth float64
}

// OpenError is returned when a workbook cannot be read.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("opening workbook: %v", e.Err)
	}

	return fmt.Sprintf("opening workbook %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// SaveError is returned when a workbook cannot be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("saving workbook: %v", e.Err)
	}

	return fmt.Sprintf("saving workbook %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// WriteWorkbook writes tables as sheets of an xlsx workbook. There is no
// header row. The source file and address columns are hidden and the text
// columns are sized to their content.
func WriteWorkbook(w io.Writer, tables []Table, opts Options) error {
	if err := writeWorkbook(w, tables, opts); err != nil {
		return &SaveError{Err: err}
	}

	return nil
}

// SaveWorkbook writes tables to path on fsys.
func SaveWorkbook(fsys afero.Fs, path string, tables []Table, opts Options) error {
	f, err := fsys.Create(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}

	if err := writeWorkbook(f, tables, opts); err != nil {
		_ = f.Close()
		return &SaveError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &SaveError{Path: path, Err: err}
	}

	return nil
}

func writeWorkbook(w io.Writer, tables []Table, opts Options) error {
	if len(tables) == 0 {
		tables = []Table{{Name: DefaultName}}
	}

	maxWidth := opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	wb := excelize.NewFile()
	defer wb.Close()

	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}

	names = SheetNames(names)

	for i, t := range tables {
		sheet := names[i]

		if i == 0 {
			if err := wb.SetSheetName(wb.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sheet, err)
			}
		} else if _, err := wb.NewSheet(sheet); err != nil {
			return fmt.Errorf("adding sheet %q: %w", sheet, err)
		}

		if err := writeSheet(wb, sheet, t.Rows, maxWidth); err != nil {
			return fmt.Errorf("writing sheet %q: %w", sheet, err)
		}
	}

	wb.SetActiveSheet(0)

	if _, err := wb.WriteTo(w); err != nil {
		return err
	}

	return nil
}

func writeSheet(wb *excelize.File, sheet string, rows []Row, maxWidth float64) error {
	widths := [2]float64{minWidth, minWidth}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		cells := r.Cells()
		if err := wb.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}

		widths[0] = max(widths[0], textWidth(r.Original))
		widths[1] = max(widths[1], textWidth(r.Translated))
	}

	if err := wb.SetColVisible(sheet, hiddenColumns, false); err != nil {
		return err
	}

	if err := wb.SetColWidth(sheet, "C", "C", min(widths[0], maxWidth)); err != nil {
		return err
	}

	return wb.SetColWidth(sheet, "D", "D", min(widths[1], maxWidth))
}

// textWidth estimates the column width needed for s, counting wide runes
// twice. Multi-line values are measured by their longest line.
func textWidth(s string) float64 {
	longest := 0
	for _, line := range strings.Split(s, "\n") {
		longest = max(longest, runewidth.StringWidth(line))
	}

	return float64(longest) + 2
}

// ReadWorkbook reads every visible sheet of an xlsx workbook. Blank rows
// are dropped.
func ReadWorkbook(r io.Reader) ([]Table, error) {
	tables, err := readWorkbook(r)
	if err != nil {
		return nil, &OpenError{Err: err}
	}

	return tables, nil
}

// LoadWorkbook reads the workbook at path on fsys.
func LoadWorkbook(fsys afero.Fs, path string) ([]Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	tables, err := readWorkbook(f)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	return tables, nil
}

func readWorkbook(r io.Reader) ([]Table, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	var tables []Table

	for _, sheet := range wb.GetSheetList() {
		visible, err := wb.GetSheetVisible(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}

		if !visible {
			continue
		}

		rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}

		t := Table{Name: sheet}

		for _, cells := range rows {
			row := RowFromCells(cells)
			if row.IsBlank() {
				continue
			}

			t.Rows = append(t.Rows, row)
		}

		tables = append(tables, t)
	}

	return tables, nil
}

// SheetNames turns table names into valid, distinct sheet names. Characters
// Excel rejects become '_', names are cut to MaxSheetName runes and clashes
// (compared without case) get a " (n)" suffix.
func SheetNames(names []string) []string {
	out := make([]string, len(names))
	taken := make(map[string]bool, len(names))

	for i, name := range names {
		base := sanitizeSheetName(name)
		candidate := base

		for n := 2; taken[strings.ToLower(candidate)]; n++ {
			suffix := " (" + strconv.Itoa(n) + ")"
			candidate = truncateRunes(base, MaxSheetName-len(suffix)) + suffix
		}

		taken[strings.ToLower(candidate)] = true
		out[i] = candidate
	}

	return out
}

func sanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}

		return r
	}, strings.TrimSpace(name))

	name = strings.Trim(truncateRunes(name, MaxSheetName), "'")
	if name == "" {
		return "Sheet"
	}

	return name
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
