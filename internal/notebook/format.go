package notebook

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format renders the whole notebook for display: a short header followed by
// every cell, separated by rules.
func (nb *Notebook) Format(path string) string {
	var output strings.Builder
	output.WriteString(fmt.Sprintf("Jupyter Notebook: %s\n", filepath.Base(path)))
	output.WriteString(fmt.Sprintf("Format: v%d.%d\n", nb.NBFormat, nb.NBFormatMinor))
	output.WriteString(fmt.Sprintf("Total cells: %d\n\n", len(nb.Cells)))

	for i := range nb.Cells {
		output.WriteString(nb.Cells[i].Format(i))
		if i < len(nb.Cells)-1 {
			output.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
		}
	}

	return output.String()
}

// Format renders a single cell for display with line-numbered source and a
// summary of code outputs.
func (c *Cell) Format(index int) string {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Cell %d", index))
	if c.ID != "" {
		output.WriteString(fmt.Sprintf(" (ID: %s)", c.ID))
	}
	output.WriteString(fmt.Sprintf(" [%s]", c.CellType))
	if id, ok := c.GradeID(); ok {
		output.WriteString(fmt.Sprintf(" [nbgrader: %s]", id))
	}
	if c.ExecutionCount != nil {
		output.WriteString(fmt.Sprintf(" [%d]", *c.ExecutionCount))
	}
	output.WriteString(":\n\n")

	lines := c.Lines()
	if len(lines) > 0 {
		output.WriteString("Source:\n")
		for i, line := range lines {
			output.WriteString(fmt.Sprintf("%3d: %s\n", i+1, line))
		}
	} else {
		output.WriteString("Source: (empty)\n")
	}

	if c.CellType == "code" && len(c.Outputs) > 0 {
		output.WriteString("\nOutputs:\n")
		for i, outputData := range c.Outputs {
			output.WriteString(fmt.Sprintf("  Output %d: %s\n", i+1, formatOutputData(outputData)))
		}
	}

	return output.String()
}

// formatOutputData summarizes one entry of a code cell's outputs list.
func formatOutputData(output any) string {
	outputMap, ok := output.(map[string]any)
	if !ok {
		return fmt.Sprintf("%v", output)
	}

	switch outputMap["output_type"] {
	case "stream":
		if text, exists := outputMap["text"]; exists {
			return fmt.Sprintf("stream: %v", text)
		}
	case "execute_result", "display_data":
		if data, ok := outputMap["data"].(map[string]any); ok {
			if textPlain, exists := data["text/plain"]; exists {
				return fmt.Sprintf("%s: %v", outputMap["output_type"], textPlain)
			}
		}
	case "error":
		if ename, exists := outputMap["ename"]; exists {
			if evalue, ok := outputMap["evalue"]; ok {
				return fmt.Sprintf("error: %v: %v", ename, evalue)
			}
			return fmt.Sprintf("error: %v", ename)
		}
	}

	return fmt.Sprintf("%v", output)
}
