// Package structured encodes results as JSON, YAML or TOML for machine
// consumption.
package structured

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/portfs/pkg/errors"
)

type Encoding int

const (
	JSON Encoding = iota
	YAML
	TOML
)

// Renderer writes one document per call.
type Renderer struct {
	output   io.Writer
	encoding Encoding
}

func New(encoding Encoding, output io.Writer) *Renderer {
	return &Renderer{output: output, encoding: encoding}
}

func (r *Renderer) encode(v interface{}) error {
	switch r.encoding {
	case YAML:
		enc := yaml.NewEncoder(r.output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		enc := toml.NewEncoder(r.output)
		enc.SetIndentTables(true)
		return enc.Encode(v)
	default:
		enc := json.NewEncoder(r.output)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// RenderResult encodes result as is. TOML needs a struct or map at the top.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

type errorDocument struct {
	Error   string                 `json:"error" yaml:"error" toml:"error"`
	Code    string                 `json:"code" yaml:"code" toml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

func (r *Renderer) RenderError(err error) error {
	return r.encode(errorDocument{
		Error:   err.Error(),
		Code:    string(errors.GetErrorCode(err)),
		Details: errors.GetErrorDetails(err),
	})
}

type messageDocument struct {
	Message string `json:"message" yaml:"message" toml:"message"`
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(messageDocument{Message: msg})
}
