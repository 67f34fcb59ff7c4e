package cli

import (
	"github.com/spf13/cobra"
)

type injectOptions struct {
	documents []string
	output    string
}

func injectCmd(app *App) *cobra.Command {
	var opts injectOptions

	cmd := &cobra.Command{
		Use:   "inject <table.xlsx>...",
		Short: "Write translated values from workbooks back into documents",
		Long: `Inject reads every visible sheet of the workbooks and writes each
translation into its document, but only where the document still holds the
original value. Patched documents are saved under the output directory.
Without --documents the XML files beside the first workbook are used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.inject(args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.documents, "documents", nil, "documents or directories to patch")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default \"output\" beside the first document)")

	return cmd
}

func (a *App) inject(tables []string, opts injectOptions) error {
	w := a.worker()

	entries := w.Import(tables)

	docs := opts.documents
	if len(docs) == 0 {
		docs = w.DocumentsBeside(tables[0])
	}

	res := w.Apply(entries, docs, opts.output)
	a.log.Info("documents written", "count", len(res.Outputs), "values", res.Written)

	return a.finish(w)
}
