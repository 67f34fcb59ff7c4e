package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an attribute name for fuzzy matching: camel case is
// split, separators are dropped and the result is lower-cased.
//
//	"toolTip"   -> "tooltip"
//	"help_text" -> "helptext"
//	"ui:Label"  -> "uilabel"
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an attribute name into lower-case tokens.
//
//	"textId"        -> ["text", "id"]
//	"HTMLCaption"   -> ["html", "caption"]
//	"place-holder"  -> ["place", "holder"]
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator covers the separators found in XML attribute names, including
// the namespace prefix colon.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ':', ' ':
		return true
	}

	return false
}

// startsToken reports whether a new token begins at i: on a lower-to-upper
// transition ("toolTip") or at the last capital of an acronym that is
// followed by lower case ("HTMLCaption").
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
