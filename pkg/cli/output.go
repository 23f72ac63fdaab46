package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"open-atmos/mechanism-configuration/pkg/history"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/runner"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is styled plain text (default).
	FormatText OutputFormat = "text"
	// FormatJSON is indented JSON.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates a --format value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", NewConfigError("format", fmt.Sprintf("unknown output format %q: must be 'text' or 'json'", s))
	}
}

// ErrorView is the JSON form of one configuration error.
type ErrorView struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	Location   string `json:"location,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Context    string `json:"context,omitempty"`
}

// ReportView is the JSON form of one validation.
type ReportView struct {
	RunID      string      `json:"run_id"`
	Source     string      `json:"source"`
	Schema     string      `json:"schema"`
	Valid      bool        `json:"valid"`
	Cached     bool        `json:"cached"`
	DurationMs int64       `json:"duration_ms"`
	Species    int         `json:"species"`
	Phases     int         `json:"phases"`
	Reactions  int         `json:"reactions"`
	Errors     []ErrorView `json:"errors"`
}

// NewReportView converts a runner report for output.
func NewReportView(r *runner.Report) ReportView {
	view := ReportView{
		RunID:      r.Run.ID,
		Source:     r.Run.Source,
		Schema:     string(r.Result.Schema),
		Valid:      r.Run.Valid,
		Cached:     r.Cached,
		DurationMs: r.Run.Duration.Milliseconds(),
		Errors:     []ErrorView{},
	}
	if m := r.Result.Mechanism; m != nil {
		view.Species = len(m.Species)
		view.Phases = len(m.Phases)
		view.Reactions = m.Reactions.Count()
	}
	if r.Result.Errors != nil {
		for _, e := range r.Result.Errors.Errors {
			view.Errors = append(view.Errors, newErrorView(e))
		}
	}
	return view
}

func newErrorView(e *mechErrors.Error) ErrorView {
	v := ErrorView{
		Kind:       string(e.Kind),
		Message:    e.Message,
		Suggestion: e.Suggestion,
		Context:    e.Context,
	}
	if e.Location.IsValid() {
		v.Location = e.Location.String()
	} else if e.Location.File != "" {
		v.Location = e.Location.File
	}
	return v
}

// Printer writes command results in the selected format.
type Printer struct {
	w      io.Writer
	format OutputFormat

	ok     lipgloss.Style
	fail   lipgloss.Style
	kind   lipgloss.Style
	subtle lipgloss.Style
}

// NewPrinter creates a printer for w. Colors are used only when w is a
// terminal that supports them.
func NewPrinter(w io.Writer, format OutputFormat) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		format: format,
		ok:     r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		kind:   r.NewStyle().Foreground(lipgloss.Color("3")),
		subtle: r.NewStyle().Faint(true),
	}
}

// Reports prints validation reports followed by a summary line in text
// mode, or a JSON array.
func (p *Printer) Reports(reports []*runner.Report) error {
	if p.format == FormatJSON {
		views := make([]ReportView, 0, len(reports))
		for _, r := range reports {
			views = append(views, NewReportView(r))
		}
		return p.JSON(views)
	}

	invalid := 0
	for _, r := range reports {
		if !r.Run.Valid {
			invalid++
		}
		p.report(r)
	}
	if len(reports) > 1 {
		summary := fmt.Sprintf("%d configurations checked, %d invalid", len(reports), invalid)
		if invalid == 0 {
			fmt.Fprintln(p.w, p.ok.Render(summary))
		} else {
			fmt.Fprintln(p.w, p.fail.Render(summary))
		}
	}
	return nil
}

func (p *Printer) report(r *runner.Report) {
	view := NewReportView(r)
	if view.Valid {
		detail := fmt.Sprintf("(%s, %d species, %d phases, %d reactions)",
			view.Schema, view.Species, view.Phases, view.Reactions)
		fmt.Fprintf(p.w, "%s %s %s\n", p.ok.Render("✓"), view.Source, p.subtle.Render(detail))
		return
	}

	noun := "errors"
	if len(view.Errors) == 1 {
		noun = "error"
	}
	fmt.Fprintf(p.w, "%s %s: %d %s\n", p.fail.Render("✗"), view.Source, len(view.Errors), noun)
	for _, e := range r.Result.Errors.Errors {
		fmt.Fprintf(p.w, "  %s %s\n", p.kind.Render("["+string(e.Kind)+"]"), e.Message)
		if e.Location.IsValid() {
			fmt.Fprintf(p.w, "    --> %s\n", e.Location.String())
		}
		if e.Context != "" {
			for _, line := range strings.Split(strings.TrimRight(e.Context, "\n"), "\n") {
				fmt.Fprintf(p.w, "    %s\n", line)
			}
		}
		if e.Suggestion != "" {
			fmt.Fprintf(p.w, "    = suggestion: %s\n", e.Suggestion)
		}
	}
}

// Runs prints history records as a table, or a JSON array.
func (p *Printer) Runs(runs []*history.Run) error {
	if p.format == FormatJSON {
		if runs == nil {
			runs = []*history.Run{}
		}
		return p.JSON(runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(p.w, p.subtle.Render("no recorded runs"))
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		status := p.ok.Render("valid")
		if !run.Valid {
			status = p.fail.Render("invalid")
		}
		rows = append(rows, []string{
			run.StartedAt.Local().Format(time.DateTime),
			run.Source,
			string(run.Schema),
			status,
			strconv.Itoa(run.ErrorCount),
			run.Duration.Round(time.Millisecond).String(),
			shortID(run.ID),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STARTED", "SOURCE", "SCHEMA", "STATUS", "ERRORS", "DURATION", "RUN").
		Rows(rows...)
	fmt.Fprintln(p.w, t.String())
	return nil
}

// Message prints a line of text. It is suppressed in JSON mode so that the
// output stays machine-readable.
func (p *Printer) Message(format string, args ...any) {
	if p.format == FormatJSON {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
