// Package cli wires the lion commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lion/internal/config"
	"lion/internal/diagnostic"
	"lion/internal/logger"
	"lion/internal/worker"
)

// App carries what every command needs. Fields are exported so tests can
// swap the filesystem, outputs and clock.
type App struct {
	FS     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time

	cfg  *config.Config
	log  logger.Logger
	opts rootOptions
}

type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
	strict     bool
	report     string
}

// NewApp returns an App on the real filesystem and standard streams.
func NewApp() *App {
	return &App{
		FS:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Now:    time.Now,
	}
}

// RootCmd builds the lion command tree.
func RootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lion",
		Short: "Extract translatable XML attributes into workbooks and inject translations back",
		Long: `lion walks XML documents guided by a schema of translatable attributes,
exports the values to an xlsx workbook for translators and writes the
translated values back, refusing to overwrite values that changed since
extraction.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}

	app.opts.bind(root.PersistentFlags())

	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)

	root.AddCommand(
		inferCmd(app),
		suggestCmd(app),
		extractCmd(app),
		injectCmd(app),
		runCmd(app),
	)

	return root
}

func (o *rootOptions) bind(pf *pflag.FlagSet) {
	pf.StringVar(&o.configPath, "config", "", "config file (default $"+config.PathEnv+" or ./"+config.DefaultPath+")")
	pf.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error or disabled")
	pf.BoolVar(&o.logJSON, "log-json", false, "log as JSON")
	pf.BoolVar(&o.strict, "strict", false, "exit with an error when a critical diagnostic was reported")
	pf.StringVar(&o.report, "report", "", "write the diagnostic report to this file")
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.FS, a.opts.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		if !logger.IsValidLevel(a.opts.logLevel) {
			return fmt.Errorf("unknown log level %q", a.opts.logLevel)
		}

		cfg.Log.Level = a.opts.logLevel
	}

	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = a.opts.logJSON
	}

	lc := cfg.Log.Logger()
	lc.Output = a.Stderr

	a.cfg = cfg
	a.log = logger.New(lc)

	return nil
}

func (a *App) worker() *worker.Worker {
	w := worker.New(a.FS, a.cfg)
	w.Diagnostics().Now = a.Now

	return w
}

// finish reports the run's diagnostics. With --strict a critical
// diagnostic becomes the command's error.
func (a *App) finish(w *worker.Worker) error {
	d := w.Diagnostics()

	diagnostic.Log(a.log, d.Entries())

	critical := len(d.AtLeast(diagnostic.SeverityCritical))
	warnings := len(d.AtLeast(diagnostic.SeverityWarning)) - critical
	a.log.Info("finished", "warnings", warnings, "critical", critical)

	if a.opts.report != "" {
		if err := a.writeReport(d); err != nil {
			return err
		}
	}

	if a.opts.strict && d.HasCritical() {
		return fmt.Errorf("%d critical diagnostics: %w", critical, d.Err())
	}

	return nil
}

func (a *App) writeReport(d *diagnostic.Diagnostics) error {
	f, err := a.FS.Create(a.opts.report)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if err := diagnostic.WriteReport(f, d.Entries(), diagnostic.SeverityDebug); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing report: %w", err)
	}

	return f.Close()
}
