// Package diagnostic provides the event vocabulary, severities and the
// collector every lion stage reports into.
//
// A run never aborts on a recoverable problem: missing files, unparsable
// documents, bad addresses and value mismatches all become diagnostics and
// processing continues with the rest of the batch. The collector is a sink;
// nothing in the engine reads it back to make decisions.
//
// Severities are looked up in a static table keyed by Event:
//   - debug: progress breadcrumbs (input paths, schema name, output files)
//   - info: counts and output locations
//   - warning: per-entry skips (element/attribute missing, value mismatch)
//   - critical: per-file or per-table failures and malformed addresses
package diagnostic
