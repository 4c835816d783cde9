// Package toml provides TOML output
package toml

import (
	"io"

	"github.com/arthur-debert/imgreorder/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Renderer provides TOML output
type Renderer struct {
	output io.Writer
}

// New creates a new TOML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a result struct as a TOML document
func (r *Renderer) RenderResult(result interface{}) error {
	return toml.NewEncoder(r.output).Encode(result)
}

// RenderError renders an error as TOML, including its error code
func (r *Renderer) RenderError(err error) error {
	return toml.NewEncoder(r.output).Encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

// RenderMessage renders a simple message as TOML
func (r *Renderer) RenderMessage(msg string) error {
	return toml.NewEncoder(r.output).Encode(map[string]string{"message": msg})
}
