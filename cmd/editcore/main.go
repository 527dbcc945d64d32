// Package main is the entry point for editcore, a batch host for the
// editing core. It loads a document, runs a command script against it and
// writes the result.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"

	"github.com/dshills/editcore/internal/app"
	"github.com/dshills/editcore/internal/dispatcher"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var usageExamples = heredoc.Doc(`

	Examples:
	  editcore -e 'w;delete_word' notes.txt     Delete the second word
	  editcore -s edits.txt -o out.txt in.txt   Run a script
	  editcore -diff -e 'dd' notes.txt          Show what deleting a line changes

	Script lines are "name [param]"; '#' starts a comment and a
	double-quoted param uses Go string escapes.
`)

type options struct {
	app.Options

	inputPath   string
	scriptPath  string
	commands    string
	outputPath  string
	showJournal bool
	showDiff    bool
	showStats   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.inputPath != "" {
		data, err := os.ReadFile(opts.inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		opts.Content = string(data)
	}

	script, closeScript, err := openScript(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeScript()

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	status := 0
	if err := application.Run(script); err != nil && !app.IsQuit(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		status = 1
	}

	if opts.showJournal {
		for _, e := range application.Journal().Entries() {
			line := fmt.Sprintf("%s %q -> %s", e.Invocation.Name, e.Invocation.Param, e.Result)
			if e.Result.Message != "" {
				line += " (" + e.Result.Message + ")"
			}
			fmt.Fprintln(os.Stderr, line)
		}
	}
	if opts.showStats {
		s := application.Stats()
		fmt.Fprintf(os.Stderr, "%d chars, %d lines, cursor %d:%d, %d selected, mode %s\n",
			s.TotalChars, s.TotalLines, s.Line, s.Column, s.SelectedChars, application.Mode())
		if m := application.Metrics(); m != nil {
			printReport(os.Stderr, m.Report())
		}
	}

	output := application.Text()
	if opts.showDiff {
		label := opts.inputPath
		if label == "" {
			label = "stdin"
		}
		output = application.Diff(label)
	}
	if err := writeOutput(opts.outputPath, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return status
}

// printReport writes one line per operation, then the totals.
func printReport(w io.Writer, r dispatcher.Report) {
	line := func(om dispatcher.OperationMetrics) {
		fmt.Fprintf(w, "%-24s %6d dispatched %6d changed %6d no-op %4d failed %4d panicked  avg %v  max %v\n",
			om.Name, om.Dispatches, om.Changes, om.NoOps, om.Errors, om.Panics, om.Average(), om.Slowest)
	}
	for _, om := range r.Operations {
		line(om)
	}
	line(r.Total)
}

// openScript returns the command source: -e commands, a script file, or
// stdin.
func openScript(opts options) (io.Reader, func(), error) {
	switch {
	case opts.commands != "":
		return strings.NewReader(strings.ReplaceAll(opts.commands, ";", "\n")), func() {}, nil
	case opts.scriptPath != "" && opts.scriptPath != "-":
		f, err := os.Open(opts.scriptPath)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	default:
		return os.Stdin, func() {}, nil
	}
}

func writeOutput(path, text string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "-", "Command script, one command per line (- for stdin)")
	flag.StringVar(&opts.scriptPath, "s", "-", "Command script (shorthand)")
	flag.StringVar(&opts.commands, "e", "", "Commands separated by ';' instead of a script")
	flag.StringVar(&opts.outputPath, "o", "-", "Output file for the edited document (- for stdout)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	flag.BoolVar(&opts.ContinueOnError, "keep-going", false, "Continue after a failed command")
	flag.BoolVar(&opts.showJournal, "journal", false, "Print every dispatched command to stderr")
	flag.BoolVar(&opts.showDiff, "diff", false, "Write a unified diff of the changes instead of the document")
	flag.BoolVar(&opts.showStats, "stats", false, "Print document statistics to stderr")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "editcore - run editing commands against a document\n\n")
		fmt.Fprintf(os.Stderr, "Usage: editcore [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprint(os.Stderr, usageExamples)
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("editcore %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: expected at most one file, got %d\n", flag.NArg())
		os.Exit(1)
	}
	opts.inputPath = flag.Arg(0)
	opts.Metrics = opts.showStats

	return opts
}
