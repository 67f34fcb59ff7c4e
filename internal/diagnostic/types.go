package diagnostic

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lion/internal/common"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityCritical
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return common.UnknownStr
	}
}

// Event identifies what happened.
type Event string

const (
	EventInputPath    Event = "input-path"
	EventDocumentPath Event = "document-path"
	EventTablePath    Event = "table-path"
	EventSchemaName   Event = "schema-name"
	EventOutputFile   Event = "output-file"

	EventOutputPath Event = "output-path"
	EventLoadCount  Event = "load-count"
	EventWriteCount Event = "write-count"

	EventElementNotFound   Event = "element-not-found"
	EventAttributeNotFound Event = "attribute-not-found"
	EventValueMismatch     Event = "value-mismatch"
	EventRootNotInSchema   Event = "root-not-in-schema"
	EventUnknownSelection  Event = "unknown-selection"
	EventUnmatchedEntries  Event = "unmatched-entries"

	EventFileNotFound   Event = "file-not-found"
	EventParseError     Event = "parse-error"
	EventSaveError      Event = "save-error"
	EventInvalidAddress Event = "invalid-address"
	EventTableOpenError Event = "table-open-error"
	EventTableSaveError Event = "table-save-error"
)

var severities = map[Event]Severity{
	EventInputPath:    SeverityDebug,
	EventDocumentPath: SeverityDebug,
	EventTablePath:    SeverityDebug,
	EventSchemaName:   SeverityDebug,
	EventOutputFile:   SeverityDebug,

	EventOutputPath: SeverityInfo,
	EventLoadCount:  SeverityInfo,
	EventWriteCount: SeverityInfo,

	EventElementNotFound:   SeverityWarning,
	EventAttributeNotFound: SeverityWarning,
	EventValueMismatch:     SeverityWarning,
	EventRootNotInSchema:   SeverityWarning,
	EventUnknownSelection:  SeverityWarning,
	EventUnmatchedEntries:  SeverityWarning,

	EventFileNotFound:   SeverityCritical,
	EventParseError:     SeverityCritical,
	EventSaveError:      SeverityCritical,
	EventInvalidAddress: SeverityCritical,
	EventTableOpenError: SeverityCritical,
	EventTableSaveError: SeverityCritical,
}

// SeverityOf returns the fixed severity of an event. Events outside the
// vocabulary are critical.
func SeverityOf(e Event) Severity {
	if s, ok := severities[e]; ok {
		return s
	}

	return SeverityCritical
}

// Events returns the whole vocabulary.
func Events() []Event {
	out := make([]Event, 0, len(severities))
	for e := range severities {
		out = append(out, e)
	}

	return out
}

// Diagnostic is a single reported event.
type Diagnostic struct {
	Time     time.Time
	Event    Event
	Severity Severity
	// Subject is what the event is about: a path, an address, a count.
	Subject string
	// Message adds detail, e.g. the expected and actual values of a mismatch.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// String returns "[Level][event] subject: message: cause".
func (d Diagnostic) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s][%s]", titleCase(d.Severity.String()), d.Event)

	var parts []string
	if d.Subject != "" {
		parts = append(parts, d.Subject)
	}

	if d.Message != "" {
		parts = append(parts, d.Message)
	}

	if d.Cause != nil {
		parts = append(parts, d.Cause.Error())
	}

	if len(parts) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(parts, ": "))
	}

	return sb.String()
}

// Line formats the diagnostic as a report line prefixed by its timestamp.
func (d Diagnostic) Line() string {
	return "[" + d.Time.Format("06-01-02 15:04:05") + "] " + d.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// Diagnostics collects diagnostics in report order. The zero value is ready to use.
type Diagnostics struct {
	entries []Diagnostic
	// Now stamps new entries; time.Now when nil.
	Now func() time.Time
}

// Add records an event about subject.
func (d *Diagnostics) Add(event Event, subject, message string) {
	d.add(event, subject, message, nil)
}

// Addf records an event with a formatted message.
func (d *Diagnostics) Addf(event Event, subject, format string, args ...any) {
	d.add(event, subject, fmt.Sprintf(format, args...), nil)
}

// AddCause records an event caused by err.
func (d *Diagnostics) AddCause(event Event, subject string, err error) {
	d.add(event, subject, "", err)
}

func (d *Diagnostics) add(event Event, subject, message string, cause error) {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}

	d.entries = append(d.entries, Diagnostic{
		Time:     now(),
		Event:    event,
		Severity: SeverityOf(event),
		Subject:  subject,
		Message:  message,
		Cause:    cause,
	})
}

// Entries returns all diagnostics in report order.
func (d *Diagnostics) Entries() []Diagnostic {
	return d.entries
}

// Len returns the number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.entries)
}

// AtLeast returns the diagnostics whose severity is min or higher.
func (d *Diagnostics) AtLeast(minSeverity Severity) []Diagnostic {
	var out []Diagnostic

	for _, e := range d.entries {
		if e.Severity >= minSeverity {
			out = append(out, e)
		}
	}

	return out
}

// OfEvent returns the diagnostics raised for event.
func (d *Diagnostics) OfEvent(event Event) []Diagnostic {
	var out []Diagnostic

	for _, e := range d.entries {
		if e.Event == event {
			out = append(out, e)
		}
	}

	return out
}

// Count returns how many times event was raised.
func (d *Diagnostics) Count(event Event) int {
	return len(d.OfEvent(event))
}

// HasCritical returns true if any critical diagnostic was recorded.
func (d *Diagnostics) HasCritical() bool {
	return len(d.AtLeast(SeverityCritical)) > 0
}

// Merge appends other's diagnostics, keeping their order.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.entries = append(d.entries, other.entries...)
}

// Err joins all critical diagnostics into one error, or returns nil.
func (d *Diagnostics) Err() error {
	var errs []error
	for _, e := range d.AtLeast(SeverityCritical) {
		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}
