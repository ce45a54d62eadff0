// Package ui renders command results as styled terminal output, plain text,
// or one of the structured encodings.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/ui/structured"
	"github.com/arthur-debert/portfs/pkg/ui/terminal"
	"github.com/arthur-debert/portfs/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result. Human formats use its view
	// when it implements view.Viewable; structured formats encode it.
	RenderResult(result interface{}) error

	RenderError(err error) error

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
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return structured.New(structured.JSON, output), nil
	case FormatYAML:
		return structured.New(structured.YAML, output), nil
	case FormatTOML:
		return structured.New(structured.TOML, output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
