// Package worker runs the extract and inject pipelines against a
// filesystem, collecting one diagnostic report per run.
package worker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	"lion/internal/config"
	"lion/internal/diagnostic"
	"lion/internal/document"
	"lion/internal/entry"
	"lion/internal/extract"
	"lion/internal/inject"
	"lion/internal/match"
	"lion/internal/schema"
	"lion/internal/table"
)

// ErrNoDocuments is returned when inputs resolve to no parseable document.
var ErrNoDocuments = errors.New("no documents found")

// Worker owns the diagnostics of one run. It is not safe for concurrent use.
type Worker struct {
	fs    afero.Fs
	cfg   *config.Config
	diags diagnostic.Diagnostics
}

// New creates a Worker. A nil cfg means config.Default().
func New(fs afero.Fs, cfg *config.Config) *Worker {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Worker{fs: fs, cfg: cfg}
}

// Diagnostics returns everything reported so far.
func (w *Worker) Diagnostics() *diagnostic.Diagnostics {
	return &w.diags
}

// LoadDocuments resolves inputs and parses every document found. Documents
// that fail to parse are reported and skipped.
func (w *Worker) LoadDocuments(inputs []string) []*document.Document {
	var docs []*document.Document

	for _, path := range document.Resolve(w.fs, inputs, w.cfg.Documents.Pattern, &w.diags) {
		w.diags.Add(diagnostic.EventDocumentPath, path, "")

		doc, err := document.Load(w.fs, path)
		if err != nil {
			w.diags.AddCause(diagnostic.EventParseError, path, err)
			continue
		}

		docs = append(docs, doc)
	}

	return docs
}

// Infer builds an untyped schema from the documents reachable from inputs.
func (w *Worker) Infer(inputs []string) (*schema.Schema, []*document.Document, error) {
	docs := w.LoadDocuments(inputs)
	if len(docs) == 0 {
		return nil, nil, ErrNoDocuments
	}

	s := schema.Infer(docs...)
	w.diags.Add(diagnostic.EventSchemaName, s.Name, "")

	return s, docs, nil
}

// Suggest ranks the attributes of s using the values found in docs.
func (w *Worker) Suggest(s *schema.Schema, docs []*document.Document) match.CandidateList {
	return match.Suggest(s, match.CollectSamples(docs), match.Options{Vocabulary: w.cfg.Suggest.Vocabulary})
}

// SuggestSelection returns the suggested selection for s.
func (w *Worker) SuggestSelection(s *schema.Schema, docs []*document.Document) *schema.Selection {
	return w.Suggest(s, docs).Selection(s.Name, w.cfg.Suggest.MinScore)
}

// Select marks the fields of sel translatable in s. Keys the schema does not
// know are reported as unknown-selection.
func (w *Worker) Select(s *schema.Schema, sel *schema.Selection) {
	for _, key := range s.Apply(sel) {
		w.diags.Add(diagnostic.EventUnknownSelection, key, "not an attribute of schema "+strconv.Quote(s.Name))
	}
}

// Export extracts entries from inputs with s and saves them as a workbook
// at tablePath. It returns the number of rows written.
func (w *Worker) Export(s *schema.Schema, inputs []string, tablePath string, group bool) (int, error) {
	res := extract.Files(w.fs, s, inputs, w.cfg.Documents.Pattern)
	w.diags.Merge(&res.Diagnostics)

	return w.Save(res.Entries, tablePath, group)
}

// Save writes entries as a workbook at tablePath.
func (w *Worker) Save(entries []entry.Entry, tablePath string, group bool) (int, error) {
	tables := table.ToTables(entries, group, w.cfg.Table.SheetName)

	w.diags.Add(diagnostic.EventOutputFile, tablePath, "")

	if dir := filepath.Dir(tablePath); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			w.diags.AddCause(diagnostic.EventTableSaveError, tablePath, err)
			return 0, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	opts := table.Options{MaxWidth: w.cfg.Table.MaxColumnWidth}
	if err := table.SaveWorkbook(w.fs, tablePath, tables, opts); err != nil {
		w.diags.AddCause(diagnostic.EventTableSaveError, tablePath, err)
		return 0, err
	}

	w.diags.Add(diagnostic.EventWriteCount, strconv.Itoa(len(entries)), "")

	return len(entries), nil
}

// Import reads the entries of every workbook. A workbook that cannot be
// opened is reported and contributes nothing.
func (w *Worker) Import(tablePaths []string) []entry.Entry {
	var entries []entry.Entry

	for _, path := range tablePaths {
		w.diags.Add(diagnostic.EventTablePath, path, "")

		tables, err := table.LoadWorkbook(w.fs, path)
		if err != nil {
			w.diags.AddCause(diagnostic.EventTableOpenError, path, err)
			continue
		}

		entries = append(entries, table.FromTables(tables)...)
	}

	w.diags.Add(diagnostic.EventLoadCount, strconv.Itoa(len(entries)), "")

	return entries
}

// DocumentsBeside lists the XML files in the directory of tablePath.
func (w *Worker) DocumentsBeside(tablePath string) []string {
	dir := filepath.Dir(tablePath)

	files, err := document.Siblings(w.fs, dir, "*.xml")
	if err != nil {
		w.diags.AddCause(diagnostic.EventFileNotFound, dir, err)
		return nil
	}

	return files
}

// Apply injects entries into the documents reachable from documents and
// saves the results in outputDir. An empty outputDir falls back to the
// configured one, then to "output" beside the first document.
func (w *Worker) Apply(entries []entry.Entry, documents []string, outputDir string) *inject.Result {
	if outputDir == "" {
		outputDir = w.cfg.Documents.OutputDir
	}

	paths := document.Resolve(w.fs, documents, w.cfg.Documents.Pattern, &w.diags)

	var res *inject.Result
	if len(paths) == 0 {
		res = inject.Documents(nil, entries)
	} else {
		res = inject.Files(w.fs, paths, entries, outputDir)
	}

	w.diags.Merge(&res.Diagnostics)

	return res
}
