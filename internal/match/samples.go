package match

import (
	"strings"
	"unicode"

	"lion/internal/address"
	"lion/internal/diagnostic"
	"lion/internal/document"
	"lion/internal/extract"
	"lion/internal/schema"
)

// MaxSamples bounds the values kept per field.
const MaxSamples = 32

// Samples holds non-blank attribute values observed per field key.
type Samples map[string][]string

// CollectSamples gathers up to MaxSamples values for every attribute found
// in docs, keyed like "/config/item/@text".
func CollectSamples(docs []*document.Document) Samples {
	every := schema.Infer(docs...)
	for _, f := range every.Fields() {
		if id, ok := every.Lookup(f.Path); ok {
			every.SetKind(id, f.Attribute, schema.TranslatableString)
		}
	}

	samples := make(Samples)

	var diags diagnostic.Diagnostics

	for _, doc := range docs {
		for _, e := range extract.Document(every, doc, &diags) {
			path, attr, err := address.Decode(e.Address)
			if err != nil {
				continue
			}

			key := schema.FieldKey(path.Shape(), attr)
			if len(samples[key]) < MaxSamples {
				samples[key] = append(samples[key], e.Original)
			}
		}
	}

	return samples
}

var flagWords = map[string]bool{
	"true": true, "false": true, "yes": true, "no": true,
	"on": true, "off": true, "null": true, "none": true,
}

// LooksLikeText reports whether v reads like text meant for people rather
// than an identifier, number, flag, path or colour.
func LooksLikeText(v string) bool {
	v = strings.TrimSpace(v)

	letters, wide := 0, false
	for _, r := range v {
		if unicode.IsLetter(r) {
			letters++
			if r > unicode.MaxASCII {
				wide = true
			}
		}
	}

	switch {
	case letters == 0:
		return false
	case strings.ContainsRune(v, ' '):
		return true
	case wide:
		return true
	case flagWords[strings.ToLower(v)]:
		return false
	case strings.ContainsAny(v, "/\\._#:{}$%"):
		return false
	}

	// A single capitalized word ("Open") is a label; a lower-case one
	// ("left") is usually an enum value.
	first := []rune(v)[0]

	return unicode.IsUpper(first) && !isCamel(v)
}

// isCamel reports mixed case with a capital after the first rune, as in
// "MainMenu". All-caps words such as "OK" are not camel case.
func isCamel(v string) bool {
	upper, lower := false, false

	for i, r := range v {
		switch {
		case unicode.IsLower(r):
			lower = true
		case i > 0 && unicode.IsUpper(r):
			upper = true
		}
	}

	return upper && lower
}

// textShare returns the share of values that look like text, or -1 when
// there are none.
func textShare(values []string) float64 {
	if len(values) == 0 {
		return -1
	}

	n := 0
	for _, v := range values {
		if LooksLikeText(v) {
			n++
		}
	}

	return float64(n) / float64(len(values))
}
