// Package prompts provides centralized management for the tool descriptions
// served to MCP clients.
package prompts

// NotebookSearchToolDoc describes the NotebookSearch tool.
const NotebookSearchToolDoc = `Search Jupyter notebooks for cells matching the given criteria.

Usage:
- Provide explicit notebook paths in "files" and/or directory roots in "dirs";
  directories are searched recursively for .ipynb files, skipping dot
  directories such as .ipynb_checkpoints.
- "pattern" is a case-insensitive regular expression matched against each
  cell's source.
- "cell_type" restricts the search to "code" or "markdown" cells.
- "grade_id" restricts the search to the nbgrader cell with that grade ID.
- Filters combine with AND; a cell must satisfy all of them.
- Results are grouped per notebook, with cell sources printed in order.
- Notebooks that fail to parse are reported but do not fail the search.`

// NotebookTagsToolDoc describes the NotebookTags tool.
const NotebookTagsToolDoc = `List the nbgrader grade IDs found in Jupyter notebooks.

Usage:
- Provide explicit notebook paths in "files" and/or directory roots in "dirs".
- The response lists each notebook followed by the grade IDs of its
  nbgrader cells, one per line.
- Notebooks without nbgrader metadata produce no output.`

// NotebookReadToolDoc describes the NotebookRead tool.
const NotebookReadToolDoc = `Read a Jupyter notebook and return its cells for display.

Usage:
- "notebook_path" must be an absolute path to a .ipynb file.
- With "cell_id", only the matching cell is returned.
- Cells are numbered, sources are line-numbered, and code cell outputs are
  summarized (stream text, execute results, errors).`
