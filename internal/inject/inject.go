package inject

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"lion/internal/address"
	"lion/internal/common"
	"lion/internal/diagnostic"
	"lion/internal/document"
	"lion/internal/entry"
)

// OutputDirName is the directory created beside the first document when no
// output directory is given.
const OutputDirName = "output"

// Result is the outcome of injecting into a batch of documents.
type Result struct {
	// Written counts attribute values overwritten across all documents.
	Written int
	// Outputs lists the files saved, in processing order.
	Outputs     []string
	Diagnostics diagnostic.Diagnostics
}

// DefaultOutputDir returns the directory used when Files is given none.
func DefaultOutputDir(paths []string) string {
	first, ok := common.First(paths)
	if !ok {
		return OutputDirName
	}

	return filepath.Join(filepath.Dir(first), OutputDirName)
}

// Files loads every document in paths, patches it with the entries that
// carry its file name and saves it into outputDir under the same base name.
// Documents are saved even when nothing was written to them. A document
// whose base name was already taken by an earlier one (ignoring case) is
// reported as save-error and left untouched.
func Files(fsys afero.Fs, paths []string, entries []entry.Entry, outputDir string) *Result {
	res := &Result{}

	if outputDir == "" {
		outputDir = DefaultOutputDir(paths)
	}

	res.Diagnostics.Add(diagnostic.EventOutputPath, outputDir, "")

	if err := fsys.MkdirAll(outputDir, 0o755); err != nil {
		res.Diagnostics.AddCause(diagnostic.EventSaveError, outputDir, err)
		return res
	}

	groups := groupByFile(entries)
	saved := make(map[string]string)

	for _, path := range paths {
		res.Diagnostics.Add(diagnostic.EventDocumentPath, path, "")

		key := fileKey(path)
		if first, ok := saved[key]; ok {
			res.Diagnostics.Addf(diagnostic.EventSaveError, path, "output name %s is already used by %s", filepath.Base(path), first)
			continue
		}

		doc, err := document.Load(fsys, path)
		if err != nil {
			res.Diagnostics.AddCause(diagnostic.EventParseError, path, err)
			continue
		}

		saved[key] = path
		res.Written += Document(doc, groups.take(key), &res.Diagnostics)

		out := filepath.Join(outputDir, doc.Name())
		res.Diagnostics.Add(diagnostic.EventOutputFile, out, "")

		if err := doc.Save(fsys, out); err != nil {
			res.Diagnostics.AddCause(diagnostic.EventSaveError, path, err)
			continue
		}

		res.Outputs = append(res.Outputs, out)
	}

	groups.reportUnmatched(&res.Diagnostics)
	res.Diagnostics.Add(diagnostic.EventWriteCount, strconv.Itoa(res.Written), "")

	return res
}

// Documents patches already parsed documents in place. Entries are applied
// to the first document carrying their file name.
func Documents(docs []*document.Document, entries []entry.Entry) *Result {
	res := &Result{}
	groups := groupByFile(entries)

	for _, doc := range docs {
		res.Written += Document(doc, groups.take(fileKey(doc.Name())), &res.Diagnostics)
	}

	groups.reportUnmatched(&res.Diagnostics)
	res.Diagnostics.Add(diagnostic.EventWriteCount, strconv.Itoa(res.Written), "")

	return res
}

// Document applies entries to doc and returns the number of attributes
// written. The caller is responsible for passing only the entries that
// belong to doc.
func Document(doc *document.Document, entries []entry.Entry, diags *diagnostic.Diagnostics) int {
	written := 0

	for _, e := range entries {
		subject := doc.Name() + ":" + string(e.Address)

		path, attr, err := address.Decode(e.Address)
		if err != nil {
			diags.AddCause(diagnostic.EventInvalidAddress, subject, err)
			continue
		}

		el := doc.Lookup(path)
		if el == nil {
			diags.Addf(diagnostic.EventElementNotFound, subject, "no element at %s", path)
			continue
		}

		a := document.Attr(el, attr)
		if a == nil {
			diags.Addf(diagnostic.EventAttributeNotFound, subject, "element %s has no attribute %q", path, attr)
			continue
		}

		if a.Value != e.Original {
			diags.Addf(diagnostic.EventValueMismatch, subject, "expect [%s] <-> actual [%s]", e.Original, a.Value)
			continue
		}

		a.Value = e.Translated
		written++
	}

	return written
}

// fileGroups holds entries by file key until a document takes them.
type fileGroups struct {
	keys    []string
	entries map[string][]entry.Entry
	names   map[string]string
}

func groupByFile(entries []entry.Entry) *fileGroups {
	keys, groups := common.GroupBy(entries, func(e entry.Entry) string {
		return fileKey(e.SourceFile)
	})

	names := make(map[string]string, len(keys))
	for _, k := range keys {
		names[k] = groups[k][0].SourceFile
	}

	return &fileGroups{keys: keys, entries: groups, names: names}
}

// take returns the entries of key and forgets them.
func (g *fileGroups) take(key string) []entry.Entry {
	es := g.entries[key]
	delete(g.entries, key)

	return es
}

// reportUnmatched raises unmatched-entries for every file no document took.
func (g *fileGroups) reportUnmatched(diags *diagnostic.Diagnostics) {
	for _, k := range g.keys {
		if es, ok := g.entries[k]; ok {
			diags.Addf(diagnostic.EventUnmatchedEntries, g.names[k], "%d entries have no matching document", len(es))
		}
	}
}

func fileKey(name string) string {
	return strings.ToLower(filepath.Base(name))
}
