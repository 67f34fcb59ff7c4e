// Package entry defines the unit of translatable data moved between
// documents and tables.
package entry

import (
	"lion/internal/address"
	"lion/internal/common"
)

// Entry is one translatable string value and where it came from.
type Entry struct {
	// SourceFile is the base file name the value was extracted from.
	SourceFile string
	Address    address.Address
	// Original is the value captured at extraction time.
	Original string
	// Translated is empty until filled by a translator.
	Translated string
}

// Group returns the key entries are grouped by in multi-sheet tables: the
// source file name without its extension.
func (e Entry) Group() string {
	return common.FileStem(e.SourceFile)
}

// WithTranslation returns a copy of the entry carrying the given translation.
func (e Entry) WithTranslation(translated string) Entry {
	e.Translated = translated
	return e
}

// Identity returns every entry with Translated set to Original.
func Identity(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.WithTranslation(e.Original)
	}

	return out
}
