package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"

	"nextin/internal/model"
)

func init() {
	// NO_COLOR still wins; otherwise colour even when piped.
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
	faint  = color.New(color.Faint)
)

var priorityColor = map[model.Priority]*color.Color{
	model.PriorityHigh:   color.New(color.FgRed),
	model.PriorityMedium: color.New(color.FgYellow),
	model.PriorityLow:    color.New(color.FgBlue),
}

// Printer writes coloured output to a fixed pair of streams.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// Success prints a green line with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprintln(p.Out, msg)
}

func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.Out, format+"\n", a...)
}

// Warning prints a yellow line to the error stream.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	yellow.Fprintln(p.Err, msg)
}

// Error prints a titled failure with an optional hint and returns a short
// error for cobra, which is configured not to print it again.
func (p *Printer) Error(title string, err error, hint string) error {
	red.Fprintf(p.Err, "%s\n", title)
	if err != nil {
		fmt.Fprintf(p.Err, "%v\n", err)
	}
	if hint != "" {
		fmt.Fprintf(p.Err, "\n%s\n", hint)
	}
	return fmt.Errorf("%s", title)
}

// Columns renders columns in order with their cards.
func (p *Printer) Columns(views []model.ColumnView) {
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(p.Out)
		}
		cyan.Fprintf(p.Out, "%s (%d)\n", v.Title, v.Total)
		if len(v.Issues) == 0 {
			faint.Fprintln(p.Out, "  (empty)")
			continue
		}
		for _, issue := range v.Issues {
			p.Issue(issue)
		}
	}
}

// Issue prints one card line.
func (p *Printer) Issue(issue *model.Issue) {
	pc, ok := priorityColor[issue.Priority]
	if !ok {
		pc = faint
	}
	fmt.Fprintf(p.Out, "  %s  %s  %s %s\n",
		faint.Sprint(shortID(issue.ID)),
		issue.Title,
		pc.Sprintf("[%s/%s]", issue.Type, issue.Priority),
		faint.Sprint("@"+issue.AssigneeLabel()),
	)
}

func (p *Printer) Stats(s model.Stats) {
	fmt.Fprintf(p.Out, "Total: %d  Done: %d\n", s.Total, s.Done)
	for _, name := range slices.Sorted(maps.Keys(s.ByAssignee)) {
		fmt.Fprintf(p.Out, "  %-16s %d\n", name, s.ByAssignee[name])
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
