package cli

import (
	"github.com/spf13/cobra"
)

type extractOptions struct {
	schema    string
	selection string
	output    string
	group     bool
}

func extractCmd(app *App) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract <xml|dir>...",
		Short: "Export translatable values to a workbook",
		Long: `Extract walks the documents with the schema and writes every non-blank
translatable attribute as a row of an xlsx workbook. The schema comes from
--schema, or is inferred from the documents when only --selection is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.schema == "" && opts.selection == "" {
				return errNoSchema
			}

			if !cmd.Flags().Changed("group") {
				opts.group = app.cfg.Table.GroupByFile
			}

			return app.extract(args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "schema file")
	cmd.Flags().StringVar(&opts.selection, "selection", "", "selection YAML marking translatable attributes")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "workbook to write")
	cmd.Flags().BoolVar(&opts.group, "group", false, "one sheet per source file")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (a *App) extract(inputs []string, opts extractOptions) error {
	w := a.worker()

	s, err := a.loadSchema(w, inputs, opts.schema, opts.selection)
	if err != nil {
		_ = a.finish(w)
		return err
	}

	if _, err := w.Export(s, inputs, opts.output, opts.group); err != nil {
		_ = a.finish(w)
		return err
	}

	return a.finish(w)
}
