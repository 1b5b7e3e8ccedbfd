package chartdata

import "strings"

// delimiter candidates in priority order: ties are broken in favor of the
// earliest entry.
var delimiters = []rune{'\t', ',', '|', ';'}

// DetectDelimiter guesses the field separator of pasted spreadsheet text from
// its first line. It counts raw occurrences of tab, comma, pipe and semicolon
// and returns the most frequent one; when all counts are zero it defaults to
// tab, the separator Excel and Google Sheets use on copy.
//
// Counting is naive on purpose: a quoted field like "1,000" inflates the
// comma count and can bias detection on comma-separated lines. Callers that
// control the export should prefer tab-separated input.
func DetectDelimiter(firstLine string) rune {
	best := '\t'
	bestCount := 0
	for _, d := range delimiters {
		if n := strings.Count(firstLine, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// SplitRows splits raw pasted text into rows of cells using the given
// delimiter. Windows line endings are tolerated and blank lines are skipped.
// Cells are whitespace-trimmed.
func SplitRows(text string, delim rune) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, string(delim))
		for i, c := range cells {
			cells[i] = strings.TrimSpace(c)
		}
		rows = append(rows, cells)
	}
	return rows
}
