// Package report renders scan results for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nbtools/nbscan/internal/scan"
)

const separator = "---------"

// Styles holds the lipgloss styles used for scan output.
type Styles struct {
	Header lipgloss.Style
	Match  lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the standard color scheme: red headers and
// separators, blue pattern matches.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Match:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Printer writes scan results to Out.
type Printer struct {
	Out io.Writer

	// Plain drops headers, separators, and color; sources only.
	Plain bool

	// Tags prints nbgrader grade IDs instead of cell contents.
	Tags bool

	// JSON emits one machine-readable document instead of text.
	JSON bool

	// Color enables styled output. Ignored when Plain is set.
	Color bool

	// Pattern, when non-nil, has its occurrences highlighted inside
	// printed sources.
	Pattern *regexp.Regexp

	Styles Styles
}

// Print renders all file results in order.
func (p *Printer) Print(results []scan.FileMatches) error {
	if p.JSON {
		return p.printJSON(results)
	}

	for _, fm := range results {
		if p.Tags {
			p.printTags(fm)
		} else {
			p.printHits(fm)
		}
	}
	return nil
}

// PrintFileError reports a notebook that could not be read, in the same
// stream as the results so the failure lands next to its neighbors.
func (p *Printer) PrintFileError(fe scan.FileError) {
	msg := fmt.Sprintf("%v %s", fe.Err, fe.Path)
	if p.useColor() {
		msg = p.Styles.Error.Render(msg)
	}
	fmt.Fprintln(p.Out, msg)
}

// printTags prints the file name and one indented grade ID per cell.
func (p *Printer) printTags(fm scan.FileMatches) {
	var tags []string
	for i := range fm.Cells {
		if id, ok := fm.Cells[i].GradeID(); ok {
			tags = append(tags, id)
		}
	}
	if len(tags) == 0 {
		return
	}

	fmt.Fprintln(p.Out, fm.Path)
	for _, tag := range tags {
		fmt.Fprintln(p.Out, "  ", tag)
	}
	fmt.Fprintln(p.Out)
}

// printHits prints the matched cell sources of one file, with a styled
// file-name header and separators unless plain output was requested.
func (p *Printer) printHits(fm scan.FileMatches) {
	if !p.Plain {
		fmt.Fprintln(p.Out, p.header(fm.Path))
		fmt.Fprintln(p.Out, p.header(strings.Repeat("=", len(fm.Path))))
	}

	for i := range fm.Cells {
		fmt.Fprintln(p.Out, p.colorized(fm.Cells[i].Cell.Text()))
		if !p.Plain {
			fmt.Fprintln(p.Out, p.header(separator))
		}
	}
	fmt.Fprintln(p.Out)
}

// printJSON emits every match as one indented JSON array.
func (p *Printer) printJSON(results []scan.FileMatches) error {
	type jsonMatch struct {
		File     string `json:"file"`
		Index    int    `json:"index"`
		CellType string `json:"cell_type"`
		GradeID  string `json:"grade_id,omitempty"`
		Source   string `json:"source"`
	}

	matches := make([]jsonMatch, 0)
	for _, fm := range results {
		for i := range fm.Cells {
			m := jsonMatch{
				File:     fm.Path,
				Index:    fm.Cells[i].Index,
				CellType: fm.Cells[i].Cell.CellType,
				Source:   fm.Cells[i].Cell.Text(),
			}
			if id, ok := fm.Cells[i].GradeID(); ok {
				m.GradeID = id
			}
			matches = append(matches, m)
		}
	}

	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}

// header styles a file name or rule line.
func (p *Printer) header(text string) string {
	if !p.useColor() {
		return text
	}
	return p.Styles.Header.Render(text)
}

// colorized highlights pattern occurrences inside a cell source.
func (p *Printer) colorized(text string) string {
	if !p.useColor() || p.Pattern == nil {
		return text
	}
	return p.Pattern.ReplaceAllStringFunc(text, func(m string) string {
		return p.Styles.Match.Render(m)
	})
}

func (p *Printer) useColor() bool {
	return p.Color && !p.Plain
}
