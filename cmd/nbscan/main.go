// Package main implements the nbscan executable. It searches Jupyter
// notebooks for cells matching a type, nbgrader grade ID, or regular
// expression, and prints the matches with terminal highlighting.
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nbtools/nbscan/internal/cmd"
	"github.com/nbtools/nbscan/internal/config"
	"github.com/nbtools/nbscan/internal/errors"
	"github.com/nbtools/nbscan/internal/logging"
	"github.com/nbtools/nbscan/internal/report"
	"github.com/nbtools/nbscan/internal/scan"
	"github.com/nbtools/nbscan/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

const rootLong = `Search for and print contents of cells in Jupyter notebooks. Cells can be
filtered by type (code or markdown), by nbgrader grade ID, or by a regular
expression. Specify notebooks to scan by name, or search directories
recursively with --dir and --submitted.`

const rootExamples = `  nbscan source/hello/hello.ipynb --code
      print the contents of all the code cells in hello.ipynb

  nbscan source/hello/hello.ipynb source/oop/oop.ipynb --markdown --grep color:red
      print the markdown cells that contain the HTML style "color:red"

  nbscan --dir source --tags
      print the nbgrader grade IDs in all notebooks below the source folder

  nbscan --dir submitted/harry --dir submitted/hermione --id hello
      print the cell with nbgrader ID 'hello' in notebooks submitted by
      students named 'harry' or 'hermione'

  nbscan --dir source --markdown --grep '^#{1,2}\s'
      print the level 1 and level 2 headers in all notebooks below source

  nbscan --dir source --markdown --prompt
      as above, but enter the pattern interactively, without shell quoting

  nbscan --submitted hello --code --grep 'def hello'
      search all submissions for the hello project for code cells that
      define the hello function

  nbscan --submitted hello --id hello_doc --random 3
      print the cells tagged hello_doc in the hello projects submitted by
      3 random students`

// rootCmd runs the scan when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:     "nbscan [flags] [FN ...]",
	Short:   "Search for cells in Jupyter notebooks",
	Long:    rootLong,
	Example: rootExamples,
	RunE:    runScan,
}

// scanFlags holds the flags for the root scan command.
type scanFlags struct {
	dirs      []string
	submitted []string
	random    int
	grep      string
	prompt    bool
	gradeID   string
	code      bool
	markdown  bool
	tags      bool
	plain     bool
	jsonOut   bool
	nbformat  int
	config    string
	noColor   bool
}

var scanOpts = &scanFlags{}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")

	rootCmd.Flags().StringArrayVar(&scanOpts.dirs, "dir", nil, "find all notebooks in or below this directory")
	rootCmd.Flags().StringArrayVar(&scanOpts.submitted, "submitted", nil, "search subdirectories of project or student name X")
	rootCmd.Flags().IntVar(&scanOpts.random, "random", 0, "scan N randomly chosen files from the final set")
	rootCmd.Flags().StringVar(&scanOpts.grep, "grep", "", "look for cells containing pattern P")
	rootCmd.Flags().BoolVar(&scanOpts.prompt, "prompt", false, "prompt for grep pattern")
	rootCmd.Flags().StringVar(&scanOpts.gradeID, "id", "", "search nbgrader cells with this grade ID")
	rootCmd.Flags().BoolVar(&scanOpts.code, "code", false, "scan code cells only")
	rootCmd.Flags().BoolVar(&scanOpts.markdown, "markdown", false, "scan markdown cells only")
	rootCmd.Flags().BoolVar(&scanOpts.tags, "tags", false, "print grade IDs instead of cell contents")
	rootCmd.Flags().BoolVar(&scanOpts.plain, "plain", false, "plain text output (no headers, colors)")
	rootCmd.Flags().BoolVar(&scanOpts.jsonOut, "json", false, "print matches as JSON")
	rootCmd.Flags().IntVar(&scanOpts.nbformat, "nbformat", 4, "Jupyter notebook format version")
	rootCmd.Flags().StringVar(&scanOpts.config, "config", "", "config file (default .nbscan.yaml, then $HOME/.nbscan.yaml)")
	rootCmd.Flags().BoolVar(&scanOpts.noColor, "no-color", false, "disable colored output")

	rootCmd.MarkFlagsMutuallyExclusive("grep", "prompt")
	rootCmd.MarkFlagsMutuallyExclusive("id", "code", "markdown")
	rootCmd.MarkFlagsMutuallyExclusive("tags", "json")

	rootCmd.AddCommand(cmd.NewVersionCmd())
	rootCmd.AddCommand(serveCmd)
}

// runScan builds the file set, applies the filter chain, and prints matches.
func runScan(c *cobra.Command, args []string) error {
	if versionFlag, _ := c.Flags().GetBool("version"); versionFlag {
		fmt.Println(version.GetVersion().String())
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logLevel(cfg))

	pattern, err := resolvePattern(c)
	if err != nil {
		return err
	}

	files, err := scan.BuildFileSet(scan.FileSetOptions{
		Files:         args,
		Dirs:          searchDirs(cfg, args),
		Submitted:     scanOpts.submitted,
		SubmittedRoot: cfg.SubmittedRoot,
		Random:        scanOpts.random,
	})
	if err != nil {
		if errors.Is(err, errors.ErrNoFiles) {
			return errors.New("no files to scan")
		}
		return err
	}

	scanner := &scan.Scanner{
		Filters: buildFilters(pattern),
		Format:  scanOpts.nbformat,
		Logger:  logger,
	}
	results, failures := scanner.Scan(files)

	printer := &report.Printer{
		Out:     os.Stdout,
		Plain:   scanOpts.plain,
		Tags:    scanOpts.tags,
		JSON:    scanOpts.jsonOut,
		Color:   colorEnabled(cfg),
		Pattern: pattern,
		Styles:  report.DefaultStyles(),
	}

	for _, fe := range failures {
		printer.PrintFileError(fe)
	}

	return printer.Print(results)
}

// loadConfig reads the rc file named by --config, or the default locations.
func loadConfig() (*config.Config, error) {
	if scanOpts.config != "" {
		return config.Load(scanOpts.config)
	}
	return config.LoadDefault()
}

// logLevel resolves the log level; the LOG_LEVEL environment variable wins
// over the config file.
func logLevel(cfg *config.Config) string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return cfg.LogLevel
}

// searchDirs returns the directories to walk. Config-file defaults apply
// only when the command line names no files and no directories.
func searchDirs(cfg *config.Config, args []string) []string {
	if len(scanOpts.dirs) > 0 {
		return scanOpts.dirs
	}
	if len(args) == 0 && len(scanOpts.submitted) == 0 {
		return cfg.Dirs
	}
	return nil
}

// colorEnabled resolves the rc color setting, the --no-color flag, and
// whether stdout is a terminal.
func colorEnabled(cfg *config.Config) bool {
	if scanOpts.noColor {
		return false
	}
	return cfg.ColorEnabled(isatty.IsTerminal(os.Stdout.Fd()))
}

// resolvePattern compiles the --grep pattern, or reads one from stdin when
// --prompt was given. A nil pattern means no grep filtering.
func resolvePattern(c *cobra.Command) (*regexp.Regexp, error) {
	expr := scanOpts.grep

	if scanOpts.prompt {
		fmt.Fprint(os.Stderr, "pattern: ")
		reader := bufio.NewReader(c.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, errors.Wrap(err, "failed to read pattern")
		}
		expr = strings.TrimRight(line, "\r\n")
	}

	if expr == "" {
		return nil, nil
	}

	re, err := scan.CompilePattern(expr)
	if err != nil {
		return nil, errors.Wrap(err, "invalid pattern %q", expr)
	}
	return re, nil
}

// buildFilters assembles the filter chain from the flag set.
func buildFilters(pattern *regexp.Regexp) []scan.Filter {
	var filters []scan.Filter

	switch {
	case scanOpts.code:
		filters = append(filters, scan.TypeFilter("code"))
	case scanOpts.markdown:
		filters = append(filters, scan.TypeFilter("markdown"))
	case scanOpts.gradeID != "":
		filters = append(filters, scan.GradeIDFilter(scanOpts.gradeID))
	}

	if pattern != nil {
		filters = append(filters, scan.PatternFilter(pattern))
	}

	return filters
}
