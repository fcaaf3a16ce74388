package notebook

import (
	"context"
	"regexp"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nbtools/nbscan/internal/errors"
	"github.com/nbtools/nbscan/internal/prompts"
	"github.com/nbtools/nbscan/internal/report"
	"github.com/nbtools/nbscan/internal/scan"
	"github.com/nbtools/nbscan/internal/tools"
)

// SearchArgs represents the arguments for the NotebookSearch tool.
type SearchArgs struct {
	Pattern  string   `json:"pattern,omitempty"`
	CellType string   `json:"cell_type,omitempty"`
	GradeID  string   `json:"grade_id,omitempty"`
	Files    []string `json:"files,omitempty"`
	Dirs     []string `json:"dirs,omitempty"`
}

// CreateSearchTool creates the NotebookSearch tool.
func CreateSearchTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[SearchArgs]) (*mcp.CallToolResultFor[any], error) {
		args := params.Arguments
		logger := ctx.Logger.WithTool("NotebookSearch")

		if args.CellType != "" && args.CellType != "code" && args.CellType != "markdown" {
			return tools.ErrorResponse("cell_type must be either 'code' or 'markdown'"), nil
		}
		if args.CellType != "" && args.GradeID != "" {
			return tools.ErrorResponse("cell_type and grade_id are mutually exclusive"), nil
		}
		if len(args.Files) == 0 && len(args.Dirs) == 0 {
			return tools.ErrorResponse("at least one of files or dirs is required"), nil
		}

		var filters []scan.Filter
		if args.CellType != "" {
			filters = append(filters, scan.TypeFilter(args.CellType))
		}
		if args.GradeID != "" {
			filters = append(filters, scan.GradeIDFilter(args.GradeID))
		}

		pattern, err := compileSearchPattern(args.Pattern)
		if err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}
		if pattern != nil {
			filters = append(filters, scan.PatternFilter(pattern))
		}

		files, err := resolveFileSet(ctx, args.Files, args.Dirs)
		if err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}

		scanner := &scan.Scanner{Filters: filters}
		results, failures := scanner.Scan(files)
		logger.Debug("search finished",
			"files", len(files), "hits", len(results), "failures", len(failures))

		var out strings.Builder
		printer := &report.Printer{Out: &out, Pattern: pattern}
		for _, fe := range failures {
			printer.PrintFileError(fe)
		}
		if err := printer.Print(results); err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}

		if len(results) == 0 {
			if out.Len() > 0 {
				return tools.SuccessResponse(out.String() + "\nNo matching cells"), nil
			}
			return tools.SuccessResponse("No matching cells"), nil
		}

		return tools.SuccessResponse(strings.TrimRight(out.String(), "\n")), nil
	}

	tool := &mcp.Tool{
		Name:        "NotebookSearch",
		Description: prompts.NotebookSearchToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// compileSearchPattern compiles a non-empty pattern argument.
func compileSearchPattern(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := scan.CompilePattern(expr)
	if err != nil {
		return nil, errors.Wrap(err, "invalid pattern %q", expr)
	}
	return re, nil
}

// resolveFileSet validates the argument paths and expands them to the list
// of notebooks to scan.
func resolveFileSet(ctx *tools.Context, files, dirs []string) ([]string, error) {
	cleanFiles, err := sanitizePaths(ctx, files)
	if err != nil {
		return nil, err
	}
	cleanDirs, err := sanitizePaths(ctx, dirs)
	if err != nil {
		return nil, err
	}

	set, err := scan.BuildFileSet(scan.FileSetOptions{
		Files: cleanFiles,
		Dirs:  cleanDirs,
	})
	if err != nil {
		if errors.Is(err, errors.ErrNoFiles) {
			return nil, errors.New("no notebooks found under the given paths")
		}
		return nil, err
	}
	return set, nil
}
