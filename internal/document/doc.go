// Package document loads, navigates and saves the XML documents strings are
// extracted from and injected into.
//
// Documents are held as etree trees so attribute order, comments and
// processing instructions survive a load/save cycle. All file access goes
// through an afero.Fs.
//
// Input resolution accepts files and directories. A directory is walked
// recursively and every file whose slash-separated path relative to the
// directory matches the document pattern (default "**/*.xml") is returned in
// lexical order. Paths that do not exist are reported as file-not-found and
// skipped.
package document
