package diagnostic

import (
	"bufio"
	"io"

	"lion/internal/logger"
)

// Log forwards diagnostics to l at the matching level.
func Log(l logger.Logger, ds []Diagnostic) {
	for _, d := range ds {
		keyvals := []any{"event", string(d.Event)}
		if d.Subject != "" {
			keyvals = append(keyvals, "subject", d.Subject)
		}

		if d.Cause != nil {
			keyvals = append(keyvals, "err", d.Cause)
		}

		msg := d.Message
		if msg == "" {
			msg = string(d.Event)
		}

		switch d.Severity {
		case SeverityDebug:
			l.Debug(msg, keyvals...)
		case SeverityInfo:
			l.Info(msg, keyvals...)
		case SeverityWarning:
			l.Warn(msg, keyvals...)
		default:
			l.Error(msg, keyvals...)
		}
	}
}

// WriteReport writes one report line per diagnostic at or above minSeverity.
func WriteReport(w io.Writer, ds []Diagnostic, minSeverity Severity) error {
	bw := bufio.NewWriter(w)

	for _, d := range ds {
		if d.Severity < minSeverity {
			continue
		}

		if _, err := bw.WriteString(d.Line() + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
