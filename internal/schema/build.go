package schema

import (
	"github.com/beevik/etree"

	"lion/internal/common"
	"lion/internal/document"
)

// Infer builds a schema from sample documents. The schema is named after the
// first document's file stem.
func Infer(docs ...*document.Document) *Schema {
	s := New("")

	for _, doc := range docs {
		if s.Name == "" {
			s.Name = common.FileStem(doc.Path)
		}

		s.Build(doc.Root())
	}

	return s
}

// Build merges the element structure under root into the schema. Every
// attribute seen is recorded as Untyped unless it is already known; an
// explicit TranslatableString is never downgraded. Elements and attributes
// are keyed by their qualified name, so "x:text" and "text" stay distinct.
func (s *Schema) Build(root *etree.Element) {
	if root == nil {
		return
	}

	type frame struct {
		id NodeID
		el *etree.Element
	}

	stack := []frame{{id: s.AddOrGetChild(s.Root(), root.FullTag()), el: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, a := range f.el.Attr {
			if document.IsNamespaceDecl(a) {
				continue
			}

			if _, ok := s.Kind(f.id, a.FullKey()); !ok {
				s.SetKind(f.id, a.FullKey(), Untyped)
			}
		}

		children := f.el.ChildElements()
		ids := make([]NodeID, len(children))

		for i, child := range children {
			ids[i] = s.AddOrGetChild(f.id, child.FullTag())
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: ids[i], el: children[i]})
		}
	}
}
