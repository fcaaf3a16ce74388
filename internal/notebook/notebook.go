// Package notebook provides the Jupyter notebook data model and reader.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nbtools/nbscan/internal/errors"
)

// DefaultFormat is the nbformat major version accepted by default.
const DefaultFormat = 4

// Notebook represents the structure of a Jupyter notebook.
type Notebook struct {
	Cells         []Cell         `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

// Cell represents a cell in a Jupyter notebook.
type Cell struct {
	ID             string         `json:"id,omitempty"`
	CellType       string         `json:"cell_type"`
	Source         any            `json:"source"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	Outputs        []any          `json:"outputs,omitempty"`
	ExecutionCount *int           `json:"execution_count,omitempty"`
}

// Read parses the notebook at path, accepting any nbformat version.
func Read(path string) (*Notebook, error) {
	return ReadVersion(path, 0)
}

// ReadVersion parses the notebook at path. If version is non-zero,
// notebooks with a larger nbformat major version are rejected.
func ReadVersion(path string, version int) (*Notebook, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat notebook file: %w", err)
	}

	if stat.IsDir() {
		return nil, errors.New("path is a directory, not a file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notebook file: %w", err)
	}

	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrNotJSON, jsonErrorDetail(err))
	}

	// A JSON document without an nbformat field is some other JSON file
	// that happens to live under an .ipynb name.
	if nb.NBFormat == 0 {
		return nil, fmt.Errorf("%w: missing nbformat field", errors.ErrNotJSON)
	}

	if version != 0 && nb.NBFormat > version {
		return nil, errors.New("notebook is nbformat v%d, newer than requested v%d", nb.NBFormat, version)
	}

	return &nb, nil
}

// jsonErrorDetail trims encoding/json error text down to the useful part.
func jsonErrorDetail(err error) string {
	msg := err.Error()
	return strings.TrimPrefix(msg, "json: ")
}

// Text returns the cell source joined to a single string, regardless of
// whether the notebook stores it as a string or a list of lines.
func (c *Cell) Text() string {
	switch s := c.Source.(type) {
	case string:
		return s
	case []any:
		var b strings.Builder
		for _, line := range s {
			if str, ok := line.(string); ok {
				b.WriteString(str)
			}
		}
		return b.String()
	case []string:
		return strings.Join(s, "")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", c.Source)
	}
}

// Lines returns the cell source as normalized lines without trailing newlines.
func (c *Cell) Lines() []string {
	text := c.Text()
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// GradeID returns the nbgrader grade_id from the cell metadata, if any.
func (c *Cell) GradeID() (string, bool) {
	meta, ok := c.Metadata["nbgrader"].(map[string]any)
	if !ok {
		return "", false
	}
	id, ok := meta["grade_id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// FindCell returns the cell with the given ID and its index.
func (nb *Notebook) FindCell(cellID string) (*Cell, int, error) {
	for i := range nb.Cells {
		if nb.Cells[i].ID == cellID {
			return &nb.Cells[i], i, nil
		}
	}
	return nil, 0, errors.NotFound(fmt.Sprintf("cell with ID '%s'", cellID))
}
