package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/tacogips/xenon/internal/template/generator"
)

// printer writes user-facing status lines. Logs go through zerolog; the
// printer only reports outcomes.
type printer struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	gray   *color.Color
}

func newPrinter(out, errOut io.Writer, quiet, noColor bool) *printer {
	p := &printer{
		out:    out,
		errOut: errOut,
		quiet:  quiet,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		gray:   color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.green, p.yellow, p.red, p.gray} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

// printInfo prints an informational message
func (p *printer) printInfo(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, msg)
}

// printSuccess prints a success message
func (p *printer) printSuccess(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.green.Sprint("✓"), msg)
}

// printWarning prints a warning message
func (p *printer) printWarning(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.yellow.Sprint("⚠"), msg)
}

// printErrorMsg prints an error message to stderr, even when quiet
func (p *printer) printErrorMsg(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.red.Sprint("✗"), msg)
}

// printResult summarizes a save pass.
// Paths are shown relative to baseDir when possible.
func (p *printer) printResult(result *generator.SaveResult, baseDir string) {
	if p.quiet || result == nil {
		return
	}
	if result.DryRun {
		p.printDryRun(result, baseDir)
		return
	}

	for _, f := range result.Files {
		p.printInfo("  " + p.gray.Sprint(relPath(baseDir, f.Path)))
	}
	p.printSuccess(fmt.Sprintf("Generated %d file(s): %d created, %d overwritten",
		len(result.Files), result.FilesCreated, result.FilesOverwritten))
}

// printDryRun renders the planned files as a table.
func (p *printer) printDryRun(result *generator.SaveResult, baseDir string) {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Template", "Output", "Size", "Action"})
	for _, f := range result.Files {
		action := "create"
		if f.Exists {
			action = "overwrite"
		}
		t.AppendRow(table.Row{f.SourcePath, relPath(baseDir, f.Path), formatBytes(int64(f.Size)), action})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d file(s)", len(result.Files)), "", ""})
	t.Render()

	p.printWarning(fmt.Sprintf("Dry run: nothing written (%d director%s would be used)",
		len(result.Directories), pluralY(len(result.Directories))))
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// relPath shortens path relative to base when possible.
func relPath(base, path string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
