// Package main provides the CLI entrypoint for lion.
//
// lion is a localization round-trip tool for XML documents that:
//   - Infers a schema of elements and attributes from sample documents
//   - Suggests which attributes carry translatable text, for review as YAML
//   - Exports the selected values to an xlsx workbook for translators
//   - Injects the translations back, flagging values changed since export
package main

import (
	"os"

	"lion/internal/cli"
)

func main() {
	if err := cli.RootCmd(cli.NewApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
