package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lion/internal/common"
	"lion/internal/schema"
	"lion/internal/worker"
)

var errMixedInputs = errors.New("inputs must be all .xml, all .xls or all .xlsx files")

type inputKind int

const (
	xmlInputs inputKind = iota
	tableInputs
)

type runOptions struct {
	schema    string
	selection string
}

func runCmd(app *App) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <file>...",
		Short: "Export XML files or inject workbooks, depending on the inputs",
		Long: `Run decides what to do from the file extensions. XML files are exported
to one workbook with a sheet per file: <name>.xlsx beside a single input,
Strings-<yyMMddHHmmss>.xlsx beside the first of several. Workbooks are
injected into the XML files beside the first workbook, writing to "output".
The translatable attributes come from --selection or --schema, or are
suggested when neither is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := classify(args)
			if err != nil {
				return err
			}

			if kind == tableInputs {
				return app.inject(args, injectOptions{})
			}

			return app.runExport(args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "schema file")
	cmd.Flags().StringVar(&opts.selection, "selection", "", "selection YAML marking translatable attributes")

	return cmd
}

func classify(files []string) (inputKind, error) {
	exts := make(map[string]bool)
	for _, f := range files {
		exts[strings.ToLower(filepath.Ext(f))] = true
	}

	if len(exts) == 1 {
		switch {
		case exts[".xml"]:
			return xmlInputs, nil
		case exts[".xls"], exts[".xlsx"]:
			return tableInputs, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", errMixedInputs, strings.Join(files, ", "))
}

// exportPath names the workbook written by run for xml inputs.
func (a *App) exportPath(inputs []string) string {
	first := inputs[0]
	dir := filepath.Dir(first)

	if len(inputs) == 1 {
		return filepath.Join(dir, common.FileStem(first)+".xlsx")
	}

	return filepath.Join(dir, "Strings-"+a.Now().Format("060102150405")+".xlsx")
}

func (a *App) runExport(inputs []string, opts runOptions) error {
	w := a.worker()

	var (
		s   *schema.Schema
		err error
	)

	if opts.schema != "" || opts.selection != "" {
		s, err = a.loadSchema(w, inputs, opts.schema, opts.selection)
	} else {
		s, err = a.suggestedSchema(w, inputs)
	}

	if err != nil {
		_ = a.finish(w)
		return err
	}

	if _, err := w.Export(s, inputs, a.exportPath(inputs), true); err != nil {
		_ = a.finish(w)
		return err
	}

	return a.finish(w)
}

// suggestedSchema infers a schema from inputs and marks the suggested
// attributes translatable.
func (a *App) suggestedSchema(w *worker.Worker, inputs []string) (*schema.Schema, error) {
	s, docs, err := w.Infer(inputs)
	if err != nil {
		return nil, err
	}

	sel := w.SuggestSelection(s, docs)
	a.log.Info("using suggested selection", "fields", strings.Join(sel.Translatable, ", "))
	w.Select(s, sel)

	return s, nil
}
