package notebook

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nbtools/nbscan/internal/prompts"
	"github.com/nbtools/nbscan/internal/report"
	"github.com/nbtools/nbscan/internal/scan"
	"github.com/nbtools/nbscan/internal/tools"
)

// TagsArgs represents the arguments for the NotebookTags tool.
type TagsArgs struct {
	Files []string `json:"files,omitempty"`
	Dirs  []string `json:"dirs,omitempty"`
}

// CreateTagsTool creates the NotebookTags tool.
func CreateTagsTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[TagsArgs]) (*mcp.CallToolResultFor[any], error) {
		args := params.Arguments
		logger := ctx.Logger.WithTool("NotebookTags")

		if len(args.Files) == 0 && len(args.Dirs) == 0 {
			return tools.ErrorResponse("at least one of files or dirs is required"), nil
		}

		files, err := resolveFileSet(ctx, args.Files, args.Dirs)
		if err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}

		scanner := &scan.Scanner{}
		results, failures := scanner.Scan(files)
		logger.Debug("tag listing finished",
			"files", len(files), "failures", len(failures))

		var out strings.Builder
		printer := &report.Printer{Out: &out, Tags: true}
		for _, fe := range failures {
			printer.PrintFileError(fe)
		}
		if err := printer.Print(results); err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}

		if strings.TrimSpace(out.String()) == "" {
			return tools.SuccessResponse("No nbgrader cells found"), nil
		}

		return tools.SuccessResponse(strings.TrimRight(out.String(), "\n")), nil
	}

	tool := &mcp.Tool{
		Name:        "NotebookTags",
		Description: prompts.NotebookTagsToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}
