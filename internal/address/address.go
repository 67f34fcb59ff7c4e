// Package address encodes the location of an extracted attribute as a single
// string token, e.g. "/config/item[2]/@text".
//
// The first segment names the document root and carries no index; every other
// segment carries the 1-based position of the element among its same-named
// siblings. The codec knows nothing about live documents.
package address

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAddress is returned by Decode for malformed addresses.
var ErrInvalidAddress = errors.New("invalid address")

const attrSeparator = "/@"

// Address is the stable identity of an extracted entry.
type Address string

// Segment is one element step of a structural path.
type Segment struct {
	// Name is the qualified element name, "prefix:local" when prefixed.
	Name string
	// Index is the 1-based occurrence among same-named siblings; 0 means unindexed.
	Index int
}

// String returns "name" or "name[index]".
func (s Segment) String() string {
	if s.Index == 0 {
		return s.Name
	}

	return s.Name + "[" + strconv.Itoa(s.Index) + "]"
}

// Path is a structural path from the document root to an element.
type Path []Segment

// String returns the path as "/seg1/seg2[i]".
func (p Path) String() string {
	var sb strings.Builder
	for _, seg := range p {
		sb.WriteByte('/')
		sb.WriteString(seg.String())
	}

	return sb.String()
}

// Shape returns the path without indices, "/config/item". It is the form
// schema paths use.
func (p Path) Shape() string {
	var sb strings.Builder
	for _, seg := range p {
		sb.WriteByte('/')
		sb.WriteString(seg.Name)
	}

	return sb.String()
}

// Child returns a copy of p extended with one segment.
func (p Path) Child(name string, index int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, Segment{Name: name, Index: index})
}

// Equals returns true if two paths are equal.
func (p Path) Equals(other Path) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// Encode joins a structural path and an attribute name into an Address.
func Encode(path Path, attribute string) Address {
	return Address(path.String() + attrSeparator + attribute)
}

// Decode splits an Address into its structural path and attribute name.
func Decode(a Address) (Path, string, error) {
	s := string(a)

	pos := strings.LastIndex(s, attrSeparator)
	if pos < 0 {
		return nil, "", fmt.Errorf("%w %q: missing %q", ErrInvalidAddress, s, attrSeparator)
	}

	pathPart, attribute := s[:pos], s[pos+len(attrSeparator):]
	if attribute == "" {
		return nil, "", fmt.Errorf("%w %q: empty attribute name", ErrInvalidAddress, s)
	}

	path, err := ParsePath(pathPart)
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %w", ErrInvalidAddress, s, err)
	}

	return path, attribute, nil
}

// ParsePath parses "/seg1/seg2[i]" into a Path.
func ParsePath(s string) (Path, error) {
	if !strings.HasPrefix(s, "/") {
		return nil, errors.New("path must start with /")
	}

	parts := strings.Split(s[1:], "/")
	path := make(Path, 0, len(parts))

	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, err
		}

		path = append(path, seg)
	}

	return path, nil
}

func parseSegment(part string) (Segment, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		if part == "" {
			return Segment{}, errors.New("empty segment")
		}

		if strings.ContainsAny(part, "]@") {
			return Segment{}, fmt.Errorf("invalid segment %q", part)
		}

		return Segment{Name: part}, nil
	}

	name := part[:open]
	if name == "" {
		return Segment{}, fmt.Errorf("segment %q has no name", part)
	}

	if !strings.HasSuffix(part, "]") {
		return Segment{}, fmt.Errorf("segment %q: unterminated index", part)
	}

	index, err := strconv.Atoi(part[open+1 : len(part)-1])
	if err != nil || index < 1 {
		return Segment{}, fmt.Errorf("segment %q: index must be a positive integer", part)
	}

	return Segment{Name: name, Index: index}, nil
}
