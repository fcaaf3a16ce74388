package notebook

import (
	"github.com/nbtools/nbscan/internal/tools"
)

// CreateNotebookTools creates all notebook scanning tools.
func CreateNotebookTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateSearchTool(ctx),
		CreateTagsTool(ctx),
		CreateReadTool(ctx),
	}
}
