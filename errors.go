package chartdata

import "fmt"

// FormatError reports that the overall shape of an ingestion input could not
// be understood even after fallback classification: a required structural
// column or row is missing, or there are too few columns for the requested
// chart kind. It is fatal for the ingestion call only; previously stored
// datasets are never affected.
//
// Individual garbled cells never produce a FormatError, they degrade to safe
// defaults and are reported through Diagnostics.
type FormatError struct {
	Kind   ChartKind
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot ingest %s data: %s", e.Kind, e.Reason)
}

func formatErrorf(kind ChartKind, format string, args ...any) error {
	return &FormatError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
