package schema

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/spf13/afero"
)

const (
	containerTag = "schema"
	nodeTag      = "node"
	attrTag      = "attr"
	nameAttr     = "name"
	typeAttr     = "type"
)

// LoadError reports a schema definition that could not be read. Nothing can
// be extracted without a schema, so callers treat it as fatal.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading schema: %v", e.Err)
	}

	return fmt.Sprintf("loading schema %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFile reads a schema definition from path on fsys.
func LoadFile(fsys afero.Fs, path string) (*Schema, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		var lerr *LoadError
		if errors.As(err, &lerr) {
			lerr.Path = path
		}

		return nil, err
	}

	return s, nil
}

// Load reads a schema definition.
func Load(r io.Reader) (*Schema, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &LoadError{Err: err}
	}

	container := doc.Root()
	if container == nil {
		return nil, &LoadError{Err: errors.New("empty schema definition")}
	}

	name := container.SelectAttr(nameAttr)
	if name == nil {
		return nil, &LoadError{Err: fmt.Errorf("<%s> has no %s attribute", container.Tag, nameAttr)}
	}

	s := New(name.Value)

	type frame struct {
		id NodeID
		el *etree.Element
	}

	stack := []frame{{id: s.Root(), el: container}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var pending []frame

		for _, el := range f.el.ChildElements() {
			switch el.Tag {
			case nodeTag:
				childName := el.SelectAttr(nameAttr)
				if childName == nil {
					return nil, &LoadError{Err: fmt.Errorf("<%s> under %q has no %s attribute", nodeTag, s.Path(f.id), nameAttr)}
				}

				pending = append(pending, frame{id: s.AddOrGetChild(f.id, childName.Value), el: el})
			case attrTag:
				if err := loadAttr(s, f.id, el); err != nil {
					return nil, &LoadError{Err: err}
				}
			}
		}

		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, pending[i])
		}
	}

	return s, nil
}

func loadAttr(s *Schema, id NodeID, el *etree.Element) error {
	name := el.SelectAttr(nameAttr)
	if name == nil {
		return fmt.Errorf("<%s> under %q has no %s attribute", attrTag, s.Path(id), nameAttr)
	}

	typ := el.SelectAttr(typeAttr)
	if typ == nil {
		return fmt.Errorf("attribute %q has no %s", FieldKey(s.Path(id), name.Value), typeAttr)
	}

	kind, err := ParseAttributeKind(typ.Value)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", FieldKey(s.Path(id), name.Value), err)
	}

	s.SetKind(id, name.Value, kind)

	return nil
}

// WriteTo writes the schema definition, indented, to w.
func (s *Schema) WriteTo(w io.Writer) (int64, error) {
	return s.document().WriteTo(w)
}

// SaveFile writes the schema definition to path on fsys.
func SaveFile(fsys afero.Fs, s *Schema, path string) error {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("creating schema file %s: %w", path, err)
	}

	if _, err := s.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing schema file %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing schema file %s: %w", path, err)
	}

	return nil
}

func (s *Schema) document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	container := doc.CreateElement(containerTag)
	container.CreateAttr(nameAttr, s.Name)

	type frame struct {
		id NodeID
		el *etree.Element
	}

	stack := []frame{{id: s.Root(), el: container}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, attr := range s.Attributes(f.id) {
			kind, _ := s.Kind(f.id, attr)
			a := f.el.CreateElement(attrTag)
			a.CreateAttr(nameAttr, attr)
			a.CreateAttr(typeAttr, kind.String())
		}

		children := s.Children(f.id)
		frames := make([]frame, len(children))

		for i, c := range children {
			el := f.el.CreateElement(nodeTag)
			el.CreateAttr(nameAttr, s.NodeName(c))
			frames[i] = frame{id: c, el: el}
		}

		for i := len(frames) - 1; i >= 0; i-- {
			stack = append(stack, frames[i])
		}
	}

	doc.Indent(2)

	return doc
}
