package prompts

// ToolPrompts contains the descriptions for all MCP tools.
type ToolPrompts struct {
	NotebookSearch string
	NotebookTags   string
	NotebookRead   string
}

// Default returns the default prompts configuration.
func Default() *ToolPrompts {
	return &ToolPrompts{
		NotebookSearch: NotebookSearchToolDoc,
		NotebookTags:   NotebookTagsToolDoc,
		NotebookRead:   NotebookReadToolDoc,
	}
}
