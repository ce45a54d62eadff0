// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/portfs/pkg/ui/view"
)

// Renderer draws views with lipgloss styles and pterm tables.
type Renderer struct {
	output io.Writer
}

func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	v, ok := result.(view.Viewable)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	switch v := v.View().(type) {
	case *view.Fields:
		return r.fields(v)
	case *view.Table:
		return r.table(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) fields(f *view.Fields) error {
	var b strings.Builder
	if f.Title != "" {
		b.WriteString(titleStyle.Render(f.Title))
		b.WriteByte('\n')
	}
	width := 0
	for _, item := range f.Items {
		width = max(width, len(item.Key))
	}
	for _, item := range f.Items {
		key := keyStyle.Render(fmt.Sprintf("%-*s", width+1, item.Key+":"))
		fmt.Fprintf(&b, "  %s %s\n", key, item.Value)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) table(t *view.Table) error {
	if t.Title != "" {
		if _, err := fmt.Fprintln(r.output, titleStyle.Render(t.Title)); err != nil {
			return err
		}
	}
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(r.output, keyStyle.Render("  (empty)"))
		return err
	}

	data := pterm.TableData{}
	if len(t.Headers) > 0 {
		data = append(data, t.Headers)
	}
	cols := len(t.Headers)
	for i := range t.Rows {
		cols = max(cols, len(t.Rows[i]))
	}
	for i := range t.Rows {
		row := make([]string, cols)
		style := kindStyle(t.Kind(i))
		for j := range row {
			row[j] = t.Cell(i, j)
			if style != nil && row[j] != "" {
				row[j] = style.Sprint(row[j])
			}
		}
		data = append(data, row)
	}

	out, err := pterm.DefaultTable.
		WithHasHeader(len(t.Headers) > 0).
		WithData(data).
		Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", errorStyle.Render("Error:"), err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}
