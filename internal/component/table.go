package component

import (
	"context"

	"golang.org/x/net/html"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/markup"
)

// Row is a record a DataTable can lay out.
type Row interface {
	Cells() []string
}

// RowSource fetches the table records for an entity.
type RowSource[R Row] func(ctx context.Context, id int64, model domain.ModelAdapter) ([]R, error)

// DataTable renders records from the model as a table, in source order.
type DataTable[R Row] struct {
	attrs   Attrs
	what    string
	columns []string
	source  RowSource[R]
}

// NewDataTable creates a table with fixed column headings. columns is copied.
func NewDataTable[R Row](what string, attrs Attrs, columns []string, source RowSource[R]) DataTable[R] {
	return DataTable[R]{
		attrs:   attrs,
		what:    what,
		columns: append([]string(nil), columns...),
		source:  source,
	}
}

// NewNotesTable creates the table listing an entity's notes.
func NewNotesTable(attrs Attrs) DataTable[domain.Note] {
	return NewDataTable("notes", attrs, domain.NoteColumns, Notes)
}

// Notes returns model.Notes unmodified.
func Notes(ctx context.Context, id int64, model domain.ModelAdapter) ([]domain.Note, error) {
	return model.Notes(ctx, id)
}

// Rows returns the records exactly as the source produced them.
func (t DataTable[R]) Rows(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) ([]R, error) {
	n, err := requireID(id, t.what+" table")
	if err != nil {
		return nil, err
	}
	rows, err := t.source(ctx, n, model)
	if err != nil {
		return nil, modelError(t.what+" for "+model.Name()+" "+id.String(), err)
	}
	return rows, nil
}

// Build implements Component.
func (t DataTable[R]) Build(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (*html.Node, error) {
	return Leaf[[]R]{
		Attrs:    t.attrs,
		Data:     t.Rows,
		Assemble: t.assemble,
	}.Build(ctx, id, model)
}

func (t DataTable[R]) assemble(_ domain.EntityID, _ domain.ModelAdapter, rows []R) (*html.Node, error) {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cells())
	}
	return markup.Table(t.columns, cells), nil
}
