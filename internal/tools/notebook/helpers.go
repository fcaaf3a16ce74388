// Package notebook exposes the notebook scanner as MCP tools.
package notebook

import (
	"github.com/nbtools/nbscan/internal/tools"
)

// sanitizePaths resolves and validates every path through the tool context's
// validator, returning the cleaned absolute paths.
func sanitizePaths(ctx *tools.Context, paths []string) ([]string, error) {
	sanitized := make([]string, 0, len(paths))
	for _, p := range paths {
		clean, err := ctx.Validator.SanitizePath(p)
		if err != nil {
			return nil, err
		}
		if err := ctx.Validator.ValidatePath(clean); err != nil {
			return nil, err
		}
		sanitized = append(sanitized, clean)
	}
	return sanitized, nil
}
