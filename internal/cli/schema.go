package cli

import (
	"errors"

	"lion/internal/schema"
	"lion/internal/worker"
)

var errNoSchema = errors.New("either --schema or --selection is required")

// loadSchema reads schemaPath when set and infers the schema from inputs
// otherwise. The selection at selectionPath, if any, is applied on top.
func (a *App) loadSchema(w *worker.Worker, inputs []string, schemaPath, selectionPath string) (*schema.Schema, error) {
	var (
		s   *schema.Schema
		err error
	)

	if schemaPath != "" {
		s, err = schema.LoadFile(a.FS, schemaPath)
	} else {
		s, _, err = w.Infer(inputs)
	}

	if err != nil {
		return nil, err
	}

	if selectionPath != "" {
		sel, err := schema.LoadSelectionFile(a.FS, selectionPath)
		if err != nil {
			return nil, err
		}

		w.Select(s, sel)
	}

	return s, nil
}
