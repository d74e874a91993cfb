// Package report renders operator-facing output for the list and convert commands.
package report

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/NikitaCOEUR/prefixgender/internal/customer"
	"github.com/charmbracelet/lipgloss"
)

// Writer prints to an output stream. Styles only take effect when the
// stream is a color-capable terminal.
type Writer struct {
	out  io.Writer
	line *template.Template

	title   lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	subtle  lipgloss.Style
}

// New creates a Writer. lineFormat is a text/template (with sprig functions)
// executed against a customer.Record for each verbose progress line.
func New(out io.Writer, lineFormat string) (*Writer, error) {
	tmpl, err := template.New("line").Funcs(sprig.TxtFuncMap()).Parse(lineFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid verbose format: %w", err)
	}

	r := lipgloss.NewRenderer(out)
	return &Writer{
		out:     out,
		line:    tmpl,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		value:   r.NewStyle().Foreground(lipgloss.Color("15")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		subtle:  r.NewStyle().Foreground(lipgloss.Color("241")),
	}, nil
}

func (w *Writer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.out, format, args...)
}

// Usage prints the command help
func (w *Writer) Usage() {
	w.printf("%s", Usage)
}

// Prefixes prints the distinct prefixes under a header
func (w *Writer) Prefixes(prefixes []string) {
	w.printf("%s\n", w.title.Render("Prefixes in system:"))
	for _, p := range prefixes {
		w.printf("  %s\n", p)
	}
}

// MissingArguments reports a convert call without --gender or --prefix
func (w *Writer) MissingArguments() {
	w.printf("%s\n", w.warning.Render("Missing --gender and --prefix arguments"))
	w.Usage()
}

// UnknownGender reports a --gender value other than male or female
func (w *Writer) UnknownGender(gender string) {
	w.printf("%s\n", w.warning.Render(fmt.Sprintf("Unknown gender %q", gender)))
	w.Usage()
}

// GenderIDs prints the resolved option values for operator verification
func (w *Writer) GenderIDs(male, female string) {
	w.printf("Make sure these values are correct:\n")
	w.printf("Female ID: %s\n", w.value.Render(female))
	w.printf("Male ID  : %s\n", w.value.Render(male))
}

// Ready describes the pending change before the confirmation prompt.
// Both values are echoed as given.
func (w *Writer) Ready(prefix, gender string) {
	w.printf("Ready to update users with \"%s\" prefix to %s gender...\n", prefix, gender)
}

// Aborted reports a declined confirmation
func (w *Writer) Aborted() {
	w.printf("Aborted.\n")
}

// Updating announces the start of the update loop
func (w *Writer) Updating(verbose bool) {
	w.printf("Updating users, please wait... ")
	if verbose {
		w.printf("\n")
	}
}

// Customer prints the verbose progress line for one record
func (w *Writer) Customer(r customer.Record) error {
	var buf bytes.Buffer
	if err := w.line.Execute(&buf, r); err != nil {
		return fmt.Errorf("render customer line: %w", err)
	}
	_, err := w.out.Write(buf.Bytes())
	return err
}

// AlreadySet ends a verbose line for a skipped record
func (w *Writer) AlreadySet() {
	w.printf("%s\n", w.subtle.Render("Gender is already set!"))
}

// Done ends a verbose line for a saved record
func (w *Writer) Done() {
	w.printf("%s\n", w.success.Render("Done!"))
}

// Failed ends a verbose line for a record that could not be saved
func (w *Writer) Failed() {
	w.printf("%s\n", w.warning.Render("Failed!"))
}

// Summary prints the number of updated records. complete is false when the
// loop stopped on an error.
func (w *Writer) Summary(updated int, complete bool) {
	if complete {
		w.printf("All done!\n")
	}
	w.printf("Number of users updated: %d\n", updated)
	if complete {
		w.printf("We're all done!\n")
	}
}
