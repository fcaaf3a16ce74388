package notebook

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nbtools/nbscan/internal/notebook"
	"github.com/nbtools/nbscan/internal/prompts"
	"github.com/nbtools/nbscan/internal/tools"
)

// ReadArgs represents the arguments for the NotebookRead tool.
type ReadArgs struct {
	NotebookPath string  `json:"notebook_path"`
	CellID       *string `json:"cell_id,omitempty"`
}

// CreateReadTool creates the NotebookRead tool.
func CreateReadTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ReadArgs]) (*mcp.CallToolResultFor[any], error) {
		args := params.Arguments

		sanitizedPath, err := ctx.Validator.SanitizePath(args.NotebookPath)
		if err != nil {
			return tools.ErrorResponsef("invalid notebook path: %v", err), nil
		}

		if err := ctx.Validator.ValidatePath(sanitizedPath); err != nil {
			return tools.ErrorResponsef("path validation failed: %v", err), nil
		}

		if !strings.HasSuffix(strings.ToLower(sanitizedPath), ".ipynb") {
			return tools.ErrorResponse("file must have .ipynb extension"), nil
		}

		nb, err := notebook.Read(sanitizedPath)
		if err != nil {
			return tools.ErrorResponse(err.Error()), nil
		}

		if args.CellID != nil && *args.CellID != "" {
			cell, index, err := nb.FindCell(*args.CellID)
			if err != nil {
				return tools.ErrorResponse(err.Error()), nil
			}
			return tools.SuccessResponse(cell.Format(index)), nil
		}

		return tools.SuccessResponse(nb.Format(sanitizedPath)), nil
	}

	tool := &mcp.Tool{
		Name:        "NotebookRead",
		Description: prompts.NotebookReadToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}
