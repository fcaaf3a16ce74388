// Package scan implements notebook discovery and cell filtering.
package scan

import (
	"regexp"

	"github.com/nbtools/nbscan/internal/notebook"
)

// Filter decides whether a notebook cell is kept.
type Filter func(*notebook.Cell) bool

// TypeFilter keeps cells of the given cell type ("code" or "markdown").
func TypeFilter(cellType string) Filter {
	return func(c *notebook.Cell) bool {
		return c.CellType == cellType
	}
}

// GradeIDFilter keeps cells whose nbgrader grade_id equals id.
func GradeIDFilter(id string) Filter {
	return func(c *notebook.Cell) bool {
		gradeID, ok := c.GradeID()
		return ok && gradeID == id
	}
}

// PatternFilter keeps cells whose source matches the pattern.
func PatternFilter(re *regexp.Regexp) Filter {
	return func(c *notebook.Cell) bool {
		return re.MatchString(c.Text())
	}
}

// All composes filters with AND semantics. A cell passes only if it passes
// every filter; the empty chain passes everything.
func All(filters ...Filter) Filter {
	return func(c *notebook.Cell) bool {
		for _, f := range filters {
			if !f(c) {
				return false
			}
		}
		return true
	}
}

// CompilePattern compiles a search pattern. Matching is case-insensitive
// to mirror interactive grep habits.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + expr)
}
