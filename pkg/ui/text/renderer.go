// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/imgreorder/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.ListImagesResult:
		for _, file := range v.Files {
			if _, err := fmt.Fprintln(r.output, file); err != nil {
				return err
			}
		}
		return nil
	case *types.ReorderResult:
		for _, m := range v.Mappings {
			if _, err := fmt.Fprintf(r.output, "%s <- %s\n", filepath.Base(m.Target), m.Source); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(r.output, Summary(v))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// Summary is the closing line of a reorder result.
func Summary(v *types.ReorderResult) string {
	if v.DryRun {
		return fmt.Sprintf("Dry run: would copy %d file(s) to %s", len(v.Mappings), v.OutputDir)
	}
	return fmt.Sprintf("Copied %d file(s) to %s", len(v.Mappings), v.OutputDir)
}
