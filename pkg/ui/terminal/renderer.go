// Package terminal provides rich terminal output styled with lipgloss
package terminal

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/imgreorder/pkg/types"
	"github.com/arthur-debert/imgreorder/pkg/ui/output/styles"
	"github.com/arthur-debert/imgreorder/pkg/ui/text"
)

// Renderer provides styled output for interactive terminals
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type with styles
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.ListImagesResult:
		return r.renderList(v)
	case *types.ReorderResult:
		return r.renderReorder(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderList(v *types.ListImagesResult) error {
	header := styles.GetStyle("Header").Render(fmt.Sprintf("%d image(s) in %s", len(v.Files), v.Folder))
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}
	for i, file := range v.Files {
		position := styles.GetStyle("Position").Render(fmt.Sprintf("%d", i+1))
		if _, err := fmt.Fprintln(r.output, position+styles.GetStyle("FilePath").Render(filepath.Base(file))); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderReorder(v *types.ReorderResult) error {
	header := styles.GetStyle("Header").Render(v.OutputDir)
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}

	arrow := styles.GetStyle("Muted").Render(" <- ")
	for _, m := range v.Mappings {
		line := styles.GetStyle("Bold").Render(filepath.Base(m.Target)) +
			arrow +
			styles.GetStyle("FilePath").Render(m.Source)
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}

	summaryStyle := styles.GetStyle("Success")
	if v.DryRun {
		summaryStyle = styles.GetStyle("DryRunBanner")
	}
	_, err := fmt.Fprintln(r.output, summaryStyle.Render(text.Summary(v)))
	return err
}

// RenderError renders an error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
