// Package inject writes translated entries back into XML documents.
//
// Every entry is located by its address and only written when the
// attribute still holds the value captured at extraction time. Entries that
// cannot be applied are reported as diagnostics and never abort the batch.
package inject
