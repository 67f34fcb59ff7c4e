package cli

import (
	"github.com/spf13/cobra"

	"lion/internal/schema"
	"lion/internal/worker"
)

type inferOptions struct {
	output    string
	selection string
}

func inferCmd(app *App) *cobra.Command {
	var opts inferOptions

	cmd := &cobra.Command{
		Use:   "infer <xml|dir>...",
		Short: "Infer a schema from sample documents",
		Long: `Infer records every element and attribute found in the documents as an
untyped schema. With --selection the suggested translatable attributes are
written alongside for review.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.infer(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "schema.xml", "schema file to write")
	cmd.Flags().StringVar(&opts.selection, "selection", "", "also write suggested selection YAML to this file")

	return cmd
}

func (a *App) infer(inputs []string, opts inferOptions) error {
	w := a.worker()

	if err := a.writeInferred(w, inputs, opts); err != nil {
		_ = a.finish(w)
		return err
	}

	return a.finish(w)
}

func (a *App) writeInferred(w *worker.Worker, inputs []string, opts inferOptions) error {
	s, docs, err := w.Infer(inputs)
	if err != nil {
		return err
	}

	if err := schema.SaveFile(a.FS, s, opts.output); err != nil {
		return err
	}

	a.log.Info("schema written", "path", opts.output, "nodes", s.Len()-1, "fields", len(s.Fields()))

	if opts.selection != "" {
		sel := w.SuggestSelection(s, docs)
		if err := schema.WriteSelectionFile(a.FS, sel, opts.selection); err != nil {
			return err
		}

		a.log.Info("selection written", "path", opts.selection, "fields", len(sel.Translatable))
	}

	return nil
}
