package document

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/spf13/afero"

	"lion/internal/address"
)

// ErrNoRoot is the cause of a ParseError for input without a root element.
var ErrNoRoot = errors.New("no root element")

// ParseError reports a document that could not be read or parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SaveError reports a document that could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Document is a parsed XML file.
type Document struct {
	// Path the document was loaded from.
	Path string
	Tree *etree.Document
}

// Name returns the base file name of the document.
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// Root returns the root element.
func (d *Document) Root() *etree.Element {
	return d.Tree.Root()
}

// Parse reads a document from r. path is only used for naming.
func Parse(path string, r io.Reader) (*Document, error) {
	tree := etree.NewDocument()
	tree.ReadSettings.PreserveCData = true

	if _, err := tree.ReadFrom(r); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if tree.Root() == nil {
		return nil, &ParseError{Path: path, Err: ErrNoRoot}
	}

	return &Document{Path: path, Tree: tree}, nil
}

// ParseString parses a document held in memory.
func ParseString(path, xml string) (*Document, error) {
	return Parse(path, strings.NewReader(xml))
}

// Load opens and parses path from fsys.
func Load(fsys afero.Fs, path string) (*Document, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(path, f)
}

// WriteTo serializes the document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.Tree.WriteTo(w)
}

// String serializes the document to a string.
func (d *Document) String() string {
	s, err := d.Tree.WriteToString()
	if err != nil {
		return ""
	}

	return s
}

// Save writes the document to path on fsys, creating or truncating it.
func (d *Document) Save(fsys afero.Fs, path string) error {
	f, err := fsys.Create(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}

	if _, err := d.WriteTo(f); err != nil {
		_ = f.Close()
		return &SaveError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &SaveError{Path: path, Err: err}
	}

	return nil
}

// Lookup resolves a structural path against the document. The first segment
// must name the root (an explicit index there may only be 1); each following
// segment selects the Index-th child element with that name. Returns nil when
// any step is missing.
func (d *Document) Lookup(path address.Path) *etree.Element {
	if len(path) == 0 {
		return nil
	}

	el := d.Root()
	if el == nil || el.FullTag() != path[0].Name || path[0].Index > 1 {
		return nil
	}

	for _, seg := range path[1:] {
		el = nthChild(el, seg.Name, max(seg.Index, 1))
		if el == nil {
			return nil
		}
	}

	return el
}

func nthChild(parent *etree.Element, name string, n int) *etree.Element {
	seen := 0

	for _, child := range parent.ChildElements() {
		if child.FullTag() != name {
			continue
		}

		seen++
		if seen == n {
			return child
		}
	}

	return nil
}

// IsNamespaceDecl reports whether a is an xmlns declaration rather than content.
func IsNamespaceDecl(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

// Attr returns the content attribute of el with the given qualified name
// ("text" or "x:text"), or nil.
func Attr(el *etree.Element, name string) *etree.Attr {
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.FullKey() == name && !IsNamespaceDecl(*a) {
			return a
		}
	}

	return nil
}
