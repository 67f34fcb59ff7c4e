package extract

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/spf13/afero"

	"lion/internal/address"
	"lion/internal/diagnostic"
	"lion/internal/document"
	"lion/internal/entry"
	"lion/internal/schema"
)

// Result is the outcome of extracting from a batch of inputs.
type Result struct {
	Entries []entry.Entry
	// Documents lists the files that were parsed successfully.
	Documents   []string
	Diagnostics diagnostic.Diagnostics
}

// Files extracts entries from every document reachable from inputs. Files
// are taken as given, directories are searched with pattern.
func Files(fsys afero.Fs, s *schema.Schema, inputs []string, pattern string) *Result {
	res := &Result{}
	res.Diagnostics.Add(diagnostic.EventSchemaName, s.Name, "")

	for _, path := range document.Resolve(fsys, inputs, pattern, &res.Diagnostics) {
		res.Diagnostics.Add(diagnostic.EventDocumentPath, path, "")

		doc, err := document.Load(fsys, path)
		if err != nil {
			res.Diagnostics.AddCause(diagnostic.EventParseError, path, err)
			continue
		}

		res.Documents = append(res.Documents, path)
		res.Entries = append(res.Entries, Document(s, doc, &res.Diagnostics)...)
	}

	res.Diagnostics.Add(diagnostic.EventLoadCount, strconv.Itoa(len(res.Entries)), "")

	return res
}

// Document extracts the entries of one parsed document.
func Document(s *schema.Schema, doc *document.Document, diags *diagnostic.Diagnostics) []entry.Entry {
	root := doc.Root()

	rootName := root.FullTag()

	rootNode, ok := s.Child(s.Root(), rootName)
	if !ok {
		diags.Addf(diagnostic.EventRootNotInSchema, doc.Path, "root element <%s> is not described by schema %q", rootName, s.Name)
		return nil
	}

	type frame struct {
		node schema.NodeID
		el   *etree.Element
		path address.Path
	}

	var entries []entry.Entry

	name := doc.Name()
	stack := []frame{{node: rootNode, el: root, path: address.Path{{Name: rootName}}}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, a := range f.el.Attr {
			key := a.FullKey()
			if document.IsNamespaceDecl(a) || !s.IsTranslatable(f.node, key) {
				continue
			}

			if strings.TrimSpace(a.Value) == "" {
				continue
			}

			entries = append(entries, entry.Entry{
				SourceFile: name,
				Address:    address.Encode(f.path, key),
				Original:   a.Value,
			})
		}

		var next []frame

		seen := make(map[string]int)

		for _, child := range f.el.ChildElements() {
			tag := child.FullTag()
			seen[tag]++

			childNode, ok := s.Child(f.node, tag)
			if !ok {
				continue
			}

			next = append(next, frame{node: childNode, el: child, path: f.path.Child(tag, seen[tag])})
		}

		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	return entries
}
