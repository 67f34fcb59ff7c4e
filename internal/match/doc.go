// Package match suggests which schema attributes hold translatable text.
//
// Attribute names are normalized (camel case and separators split into
// tokens) and compared with a vocabulary of text-bearing names, either by an
// exact token hit or by normalized Levenshtein similarity. Values observed in
// sample documents add evidence: prose-like values raise a field's score,
// identifiers, numbers and flags lower it. The result is a ranked candidate
// list that can be written out as a Selection for a person to review; the
// schema itself is never changed here.
package match
