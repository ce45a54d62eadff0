// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/portfs/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	v, ok := result.(view.Viewable)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}
	switch v := v.View().(type) {
	case *view.Fields:
		return r.fields(v)
	case *view.Table:
		return r.table(v)
	default:
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}
}

func (r *Renderer) fields(f *view.Fields) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	if f.Title != "" {
		fmt.Fprintln(tw, f.Title)
	}
	for _, item := range f.Items {
		fmt.Fprintf(tw, "%s:\t%s\n", item.Key, item.Value)
	}
	return tw.Flush()
}

// table writes tab-separated rows; the header line is omitted when there
// are no rows so scripts see empty output.
func (r *Renderer) table(t *view.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	if len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for i := range t.Rows {
		cells := make([]string, 0, len(t.Headers))
		for j := 0; j < max(len(t.Headers), len(t.Rows[i])); j++ {
			cells = append(cells, t.Cell(i, j))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
