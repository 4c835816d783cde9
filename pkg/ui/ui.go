// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), JSON, YAML and TOML output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/imgreorder/pkg/ui/json"
	"github.com/arthur-debert/imgreorder/pkg/ui/terminal"
	"github.com/arthur-debert/imgreorder/pkg/ui/text"
	"github.com/arthur-debert/imgreorder/pkg/ui/toml"
	"github.com/arthur-debert/imgreorder/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result (*types.ListImagesResult, *types.ReorderResult)
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and pipes wrapped in other writers get plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	case FormatTOML:
		return toml.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
