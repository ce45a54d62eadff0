// Package view holds the display-neutral shapes that human renderers draw.
package view

// View is either *Fields or *Table.
type View interface {
	isView()
}

// Viewable results describe how they look to a human.
type Viewable interface {
	View() View
}

type Field struct {
	Key   string
	Value string
}

// Fields is a titled list of key/value pairs.
type Fields struct {
	Title string
	Items []Field
}

func (*Fields) isView() {}

// Add appends a pair and returns f for chaining.
func (f *Fields) Add(key, value string) *Fields {
	f.Items = append(f.Items, Field{Key: key, Value: value})
	return f
}

// Table is a titled grid. Rows shorter than Headers are padded when drawn.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// Kinds optionally tags each row for styling, e.g. with a file type.
	Kinds []string
}

func (*Table) isView() {}

// AddRow appends a row tagged with kind.
func (t *Table) AddRow(kind string, cells ...string) *Table {
	t.Rows = append(t.Rows, cells)
	t.Kinds = append(t.Kinds, kind)
	return t
}

// Kind returns the tag of row i, or "".
func (t *Table) Kind(i int) string {
	if i < len(t.Kinds) {
		return t.Kinds[i]
	}
	return ""
}

// Cell returns row i column j, or "" for short rows.
func (t *Table) Cell(i, j int) string {
	if j < len(t.Rows[i]) {
		return t.Rows[i][j]
	}
	return ""
}
