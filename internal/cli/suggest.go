package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lion/internal/match"
	"lion/internal/schema"
	"lion/internal/worker"
)

type suggestOptions struct {
	output   string
	schema   string
	minScore float64
	all      bool
}

func suggestCmd(app *App) *cobra.Command {
	var opts suggestOptions

	cmd := &cobra.Command{
		Use:   "suggest <xml|dir>...",
		Short: "Suggest which attributes hold translatable text",
		Long: `Suggest ranks every attribute by its name and by the values seen in the
documents, prints the ranking and writes the attributes scoring at least
--min-score as a selection file. Without -o the selection is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min-score") {
				opts.minScore = app.cfg.Suggest.MinScore
			}

			return app.suggest(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "selection file to write")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "schema file to score instead of inferring one")
	cmd.Flags().Float64Var(&opts.minScore, "min-score", match.DefaultMinScore, "lowest score that is selected")
	cmd.Flags().BoolVar(&opts.all, "all", false, "print every candidate, not only selected ones")

	return cmd
}

func (a *App) suggest(inputs []string, opts suggestOptions) error {
	w := a.worker()

	if err := a.printSuggestions(w, inputs, opts); err != nil {
		_ = a.finish(w)
		return err
	}

	return a.finish(w)
}

func (a *App) printSuggestions(w *worker.Worker, inputs []string, opts suggestOptions) error {
	var (
		s   *schema.Schema
		err error
	)

	docs := w.LoadDocuments(inputs)

	if opts.schema != "" {
		s, err = schema.LoadFile(a.FS, opts.schema)
	} else if len(docs) > 0 {
		s = schema.Infer(docs...)
	} else {
		err = worker.ErrNoDocuments
	}

	if err != nil {
		return err
	}

	candidates := w.Suggest(s, docs)

	shown := candidates
	if !opts.all {
		shown = candidates.AboveThreshold(opts.minScore)
	}

	tw := tabwriter.NewWriter(a.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tFIELD\tKEYWORD\tSAMPLES")

	for _, c := range shown {
		fmt.Fprintf(tw, "%.2f\t%s\t%s\t%d\n", c.Score, c.Field.Key(), c.Keyword, c.Samples)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	sel := candidates.Selection(s.Name, opts.minScore)

	if opts.output != "" {
		return schema.WriteSelectionFile(a.FS, sel, opts.output)
	}

	data, err := yaml.Marshal(sel)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "\n%s", data)

	return nil
}
