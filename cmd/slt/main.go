// Command slt drives the core pipeline (spec.md §6's "CLI dispatch"
// collaborator) over a single source file: lex, parse, transform,
// resolve, analyze, then report every diagnostic collected as
// `path:line:col: message` and exit non-zero if any is Error-level.
//
// Multi-file discovery, a project/workspace model, and bundling are all
// out of scope here (spec.md §1 Non-goals) — this binary exists only to
// exercise internal/unit on one file at a time.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/slt-lang/slt/internal/config"
	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/unit"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 || args[0] != "build" {
		fmt.Fprintf(os.Stderr, "Usage: %s build <file%s> [--verbose]\n", progName(), config.SourceFileExt)
		return 2
	}

	var path string
	verbose := false
	for _, a := range args[1:] {
		switch a {
		case "--verbose":
			verbose = true
		default:
			path = a
		}
	}
	if path == "" {
		fmt.Fprintf(os.Stderr, "%s: build: missing source file\n", progName())
		return 2
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName(), err)
		return 1
	}

	result := unit.Build(path, string(src))
	color := wantColor()

	for _, d := range result.Diags {
		fmt.Fprintln(os.Stderr, renderDiagnostic(d, string(src), color))
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %d diagnostic(s)\n", progName(), len(result.Diags))
	}

	if result.HasErrors() {
		return 1
	}
	return 0
}

func renderDiagnostic(d *diagnostics.Diagnostic, text string, color bool) string {
	rendered := d.Render(text)
	if !color {
		return rendered
	}
	if d.Level == diagnostics.Error {
		return "\x1b[31m" + rendered + "\x1b[0m"
	}
	return "\x1b[33m" + rendered + "\x1b[0m"
}

// wantColor mirrors the NO_COLOR / isatty gate the teacher's terminal
// builtins use (internal/evaluator/builtins_term.go).
func wantColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func progName() string {
	return "slt"
}
