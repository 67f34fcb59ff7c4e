package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.xml", "a"},
		{"dir/strings.xml", "strings"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FileStem(tt.in))
		})
	}
}

func TestGroupBy(t *testing.T) {
	keys, groups := GroupBy([]string{"b1", "a1", "b2", "c1", "a2"}, func(s string) byte { return s[0] })

	assert.Equal(t, []byte{'b', 'a', 'c'}, keys)
	assert.Equal(t, []string{"b1", "b2"}, groups['b'])
	assert.Equal(t, []string{"a1", "a2"}, groups['a'])
	assert.Equal(t, []string{"c1"}, groups['c'])
}

func TestFirst(t *testing.T) {
	v, ok := First([]int{3, 4})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = First([]int(nil))
	assert.False(t, ok)
}
