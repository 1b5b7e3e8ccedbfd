// Package chartdata turns loosely structured spreadsheet exports into
// canonical chart datasets. It is designed for the messy reality of pasted
// financial data: mixed delimiters, renamed headers, currency-formatted
// numbers and inconsistent dates.
//
// The core functionalities include:
//   - Ingestion: detecting the delimiter, classifying column roles and
//     building one of three canonical dataset shapes (budget breakdown,
//     multi-account daily balance, categorized transaction ledger).
//   - Graceful degradation: garbled numeric cells coerce to zero and
//     unparseable dates pass through unchanged, each occurrence recorded in a
//     Diagnostics report instead of failing the whole import.
//   - Validation: repairing persisted records written by older versions back
//     to the current canonical shape, idempotently.
//   - Persistence: one JSON file per client, written atomically.
//
// This package serves as the foundational logic for the `cdt` command-line
// tool.
package chartdata
