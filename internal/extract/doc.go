// Package extract harvests translatable attribute values from documents.
//
// The document tree is walked in lock-step with the schema: an element is
// visited only if the schema has a node for it at that position, so elements
// the schema does not describe are skipped together with their subtrees. At
// each visited element every attribute the schema marks TranslatableString
// and whose value is not blank becomes an entry. Values are kept verbatim.
//
// Entries of one document come in document order: an element's attributes
// as written, then its children depth-first.
package extract
