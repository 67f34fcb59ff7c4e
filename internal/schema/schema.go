package schema

import (
	"fmt"
	"strings"

	"lion/internal/common"
)

// AttributeKind classifies a schema attribute.
type AttributeKind int

const (
	// Untyped attributes are never extracted.
	Untyped AttributeKind = iota
	// TranslatableString attributes hold user-facing text.
	TranslatableString
)

// String returns the persisted token of the kind.
func (k AttributeKind) String() string {
	switch k {
	case Untyped:
		return "none"
	case TranslatableString:
		return "string"
	default:
		return common.UnknownStr
	}
}

// ParseAttributeKind parses "none" or "string", ignoring case.
func ParseAttributeKind(s string) (AttributeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return Untyped, nil
	case "string":
		return TranslatableString, nil
	default:
		return Untyped, fmt.Errorf("unknown attribute type %q", s)
	}
}

// NodeID is a handle to a node in a Schema.
type NodeID int

// NoNode is the parent of the root.
const NoNode NodeID = -1

type node struct {
	name      string
	parent    NodeID
	children  map[string]NodeID
	order     []NodeID
	attrs     map[string]AttributeKind
	attrOrder []string
}

// Schema is a named tree of nodes.
type Schema struct {
	Name  string
	nodes []node
}

// New returns a schema holding only the unnamed root.
func New(name string) *Schema {
	s := &Schema{Name: name}
	s.nodes = append(s.nodes, newNode("", NoNode))

	return s
}

func newNode(name string, parent NodeID) node {
	return node{
		name:     name,
		parent:   parent,
		children: make(map[string]NodeID),
		attrs:    make(map[string]AttributeKind),
	}
}

// Root returns the unnamed root node. Its children match document roots.
func (s *Schema) Root() NodeID {
	return 0
}

// Len returns the number of nodes, root included.
func (s *Schema) Len() int {
	return len(s.nodes)
}

// NodeName returns the element name matched by id; empty for the root.
func (s *Schema) NodeName(id NodeID) string {
	return s.nodes[id].name
}

// Parent returns the parent of id, or false for the root.
func (s *Schema) Parent(id NodeID) (NodeID, bool) {
	p := s.nodes[id].parent
	return p, p != NoNode
}

// Child returns the child of id named name.
func (s *Schema) Child(id NodeID, name string) (NodeID, bool) {
	c, ok := s.nodes[id].children[name]
	return c, ok
}

// Children returns the children of id in insertion order.
func (s *Schema) Children(id NodeID) []NodeID {
	return s.nodes[id].order
}

// AddOrGetChild returns the child of id named name, creating it if needed.
func (s *Schema) AddOrGetChild(id NodeID, name string) NodeID {
	if c, ok := s.nodes[id].children[name]; ok {
		return c
	}

	c := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, newNode(name, id))
	s.nodes[id].children[name] = c
	s.nodes[id].order = append(s.nodes[id].order, c)

	return c
}

// Attributes returns the attribute names of id in insertion order.
func (s *Schema) Attributes(id NodeID) []string {
	return s.nodes[id].attrOrder
}

// Kind returns the kind of attribute attr on id.
func (s *Schema) Kind(id NodeID, attr string) (AttributeKind, bool) {
	k, ok := s.nodes[id].attrs[attr]
	return k, ok
}

// SetKind sets the kind of attribute attr on id, adding it if absent.
func (s *Schema) SetKind(id NodeID, attr string, kind AttributeKind) {
	n := &s.nodes[id]
	if _, ok := n.attrs[attr]; !ok {
		n.attrOrder = append(n.attrOrder, attr)
	}

	n.attrs[attr] = kind
}

// IsTranslatable reports whether attr on id is a TranslatableString.
func (s *Schema) IsTranslatable(id NodeID, attr string) bool {
	k, ok := s.nodes[id].attrs[attr]
	return ok && k == TranslatableString
}

// Path returns the slash-separated element names from the root to id,
// e.g. "/config/item". The root's path is "".
func (s *Schema) Path(id NodeID) string {
	var names []string
	for n := id; s.nodes[n].parent != NoNode; n = s.nodes[n].parent {
		names = append(names, s.nodes[n].name)
	}

	var sb strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(names[i])
	}

	return sb.String()
}

// Lookup finds the node at path ("/config/item").
func (s *Schema) Lookup(path string) (NodeID, bool) {
	id := s.Root()
	if path == "" {
		return id, true
	}

	if !strings.HasPrefix(path, "/") {
		return NoNode, false
	}

	for _, name := range strings.Split(path[1:], "/") {
		c, ok := s.Child(id, name)
		if !ok {
			return NoNode, false
		}

		id = c
	}

	return id, true
}

// Walk visits every node except the root in pre-order. Returning false from
// fn skips the node's subtree.
func (s *Schema) Walk(fn func(id NodeID) bool) {
	stack := reversed(s.Children(s.Root()))

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(id) {
			continue
		}

		stack = append(stack, reversed(s.Children(id))...)
	}
}

func reversed(ids []NodeID) []NodeID {
	out := make([]NodeID, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}

	return out
}

// Field is one attribute position of the schema.
type Field struct {
	Path      string
	Attribute string
	Kind      AttributeKind
}

// Key returns the field as "/config/item/@text".
func (f Field) Key() string {
	return FieldKey(f.Path, f.Attribute)
}

// FieldKey joins a schema path and attribute name.
func FieldKey(path, attr string) string {
	return path + "/@" + attr
}

// SplitFieldKey splits "/config/item/@text" into path and attribute.
func SplitFieldKey(key string) (path, attr string, ok bool) {
	pos := strings.LastIndex(key, "/@")
	if pos < 0 || pos+2 == len(key) {
		return "", "", false
	}

	return key[:pos], key[pos+2:], true
}

// Fields lists every attribute in pre-order, attributes in insertion order.
func (s *Schema) Fields() []Field {
	var fields []Field

	s.Walk(func(id NodeID) bool {
		path := s.Path(id)
		for _, attr := range s.Attributes(id) {
			kind, _ := s.Kind(id, attr)
			fields = append(fields, Field{Path: path, Attribute: attr, Kind: kind})
		}

		return true
	})

	return fields
}

// Translatable lists the fields marked TranslatableString.
func (s *Schema) Translatable() []Field {
	var out []Field

	for _, f := range s.Fields() {
		if f.Kind == TranslatableString {
			out = append(out, f)
		}
	}

	return out
}
