// Package table converts entries to and from the four-column tables handed
// to translators, and reads and writes those tables as xlsx workbooks.
//
// Column order is fixed: source file, address, original, translated. Cells
// are read by position; header text is never consulted.
package table
