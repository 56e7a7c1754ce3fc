// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/wsp/pkg/ui/display"
	"github.com/arthur-debert/wsp/pkg/ui/styles"
)

// Renderer provides terminal output styled from the styles registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.SelectionResult:
		return display.WriteSelection(r.output, styles.Render, v)
	case *display.StatusResult:
		return display.WriteStatus(r.output, styles.Render, v)
	case *display.ListResult:
		return display.WriteList(r.output, styles.Render, v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %v\n", styles.Render("Error", "Error:"), err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
