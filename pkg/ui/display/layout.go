package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/wsp/pkg/links"
	"github.com/arthur-debert/wsp/pkg/paths"
)

// Styler decorates s according to the named style. Plain output uses
// Plain, which returns s unchanged.
type Styler func(style, s string) string

// Plain is the identity Styler.
func Plain(_, s string) string {
	return s
}

// SelectionLine renders "[<workspace>] - [<environment>]".
func SelectionLine(style Styler, workspace, environment string) string {
	return style("Workspace", "["+workspace+"]") +
		style("Separator", " - ") +
		style("Environment", "["+environment+"]")
}

// WriteSelection writes the selection line and, for dry runs, the planned
// link changes.
func WriteSelection(w io.Writer, style Styler, r *SelectionResult) error {
	if _, err := fmt.Fprintln(w, SelectionLine(style, r.Workspace, r.Environment)); err != nil {
		return err
	}
	if !r.DryRun {
		return nil
	}

	if _, err := fmt.Fprintln(w, style("DryRunBanner", "dry run, nothing changed:")); err != nil {
		return err
	}
	for _, c := range r.Changes {
		if _, err := fmt.Fprintln(w, "  "+changeLine(style, c, r.Home)); err != nil {
			return err
		}
	}
	return nil
}

func changeLine(style Styler, c links.Change, home string) string {
	link := style("FilePath", paths.ContractHome(c.File.LinkPath(), home))
	switch c.Outcome {
	case links.OutcomeLinked:
		return fmt.Sprintf("link   %s -> %s", link, paths.ContractHome(c.Source, home))
	case links.OutcomeRemoved:
		return fmt.Sprintf("unlink %s", link)
	case links.OutcomeSkipped:
		return fmt.Sprintf("skip   %s %s", link, style("Muted", "(not a symlink)"))
	default:
		return fmt.Sprintf("none   %s", link)
	}
}

var stateStyles = map[links.State]string{
	links.StateLinked:    "Linked",
	links.StateMissing:   "Missing",
	links.StateStale:     "Stale",
	links.StateUnmanaged: "Unmanaged",
	links.StateAbsent:    "Absent",
}

// WriteStatus writes the selection line followed by one line per managed
// file.
func WriteStatus(w io.Writer, style Styler, r *StatusResult) error {
	if _, err := fmt.Fprintln(w, SelectionLine(style, r.Workspace, r.Environment)); err != nil {
		return err
	}
	for _, s := range r.Links {
		if _, err := fmt.Fprintln(w, statusLine(style, s, r.Home)); err != nil {
			return err
		}
	}
	return nil
}

func statusLine(style Styler, s links.Status, home string) string {
	line := style(stateStyles[s.State], fmt.Sprintf("%-9s", s.State)) + " " +
		style("FilePath", paths.ContractHome(s.File.LinkPath(), home))

	switch s.State {
	case links.StateLinked, links.StateMissing:
		line += " -> " + paths.ContractHome(s.Expected, home)
	case links.StateStale:
		line += " -> " + s.Actual + style("Muted", " (want "+paths.ContractHome(orNone(s.Expected), home)+")")
	}
	return line
}

func orNone(s string) string {
	if s == "" {
		return "nothing"
	}
	return s
}

// WriteList writes every workspace with its environments, marking the
// active selection with "*".
func WriteList(w io.Writer, style Styler, r *ListResult) error {
	for _, ws := range r.Workspaces {
		current := ws.Name == r.Workspace
		if _, err := fmt.Fprintln(w, marked(style, current, ws.Name, "Header")); err != nil {
			return err
		}
		envs := make([]string, 0, len(ws.Environments))
		for _, env := range ws.Environments {
			envs = append(envs, marked(style, current && env == r.Environment, env, ""))
		}
		if len(envs) == 0 {
			envs = append(envs, "  "+style("Muted", "(no environments)"))
		}
		if _, err := fmt.Fprintln(w, "  "+strings.Join(envs, "\n  ")); err != nil {
			return err
		}
	}
	return nil
}

func marked(style Styler, current bool, name, base string) string {
	if current {
		return style("Current", "* "+name)
	}
	if base != "" {
		return "  " + style(base, name)
	}
	return "  " + name
}
