package scan

import (
	"log/slog"

	"github.com/nbtools/nbscan/internal/logging"
	"github.com/nbtools/nbscan/internal/notebook"
)

// CellMatch is one cell that passed the filter chain.
type CellMatch struct {
	Index int
	Cell  notebook.Cell
}

// GradeID returns the nbgrader grade_id of the matched cell, if any.
func (m *CellMatch) GradeID() (string, bool) {
	return m.Cell.GradeID()
}

// FileMatches groups the matching cells of one notebook.
type FileMatches struct {
	Path  string
	Cells []CellMatch
}

// FileError records a notebook that could not be read. The scan continues
// past these; the caller decides how to surface them.
type FileError struct {
	Path string
	Err  error
}

// Scanner applies a filter chain to every cell of every notebook it is given.
type Scanner struct {
	// Filters are ANDed; an empty chain matches every cell.
	Filters []Filter

	// Format rejects notebooks newer than this nbformat major version.
	// Zero accepts anything.
	Format int

	// Logger receives per-file progress. Nil disables logging.
	Logger *logging.Logger
}

// Scan reads each file in order and collects matching cells, preserving
// notebook order. Files that fail to parse are returned as FileErrors
// rather than aborting the run.
func (s *Scanner) Scan(files []string) ([]FileMatches, []FileError) {
	filter := All(s.Filters...)

	var results []FileMatches
	var failures []FileError

	for _, fn := range files {
		nb, err := notebook.ReadVersion(fn, s.Format)
		if err != nil {
			failures = append(failures, FileError{Path: fn, Err: err})
			if s.Logger != nil {
				s.Logger.Warn("skipping unreadable notebook",
					slog.String("file", fn), slog.Any("error", err))
			}
			continue
		}

		var matches []CellMatch
		for i := range nb.Cells {
			if filter(&nb.Cells[i]) {
				matches = append(matches, CellMatch{Index: i, Cell: nb.Cells[i]})
			}
		}

		if s.Logger != nil {
			s.Logger.Debug("scanned notebook",
				slog.String("file", fn),
				slog.Int("cells", len(nb.Cells)),
				slog.Int("matches", len(matches)))
		}

		if len(matches) > 0 {
			results = append(results, FileMatches{Path: fn, Cells: matches})
		}
	}

	return results, failures
}
