package labels

import (
	"context"

	"musicdb/internal/app/records"
	"musicdb/internal/store"
)

// Store is the subset of the catalogue store used for record labels.
type Store interface {
	ListLabels(ctx context.Context, page store.Page) ([]store.Label, error)
	Label(ctx context.Context, id int64) (store.Found[store.Label], bool, error)
	CreateLabel(ctx context.Context, row store.Label) (store.Label, error)
	UpdateLabel(ctx context.Context, existing store.Found[store.Label], patch store.LabelPatch) (store.Label, error)
	DeleteLabel(ctx context.Context, existing store.Found[store.Label]) (store.Label, error)
}

// Service exposes record labels by id.
type Service interface {
	List(ctx context.Context, page store.Page) ([]store.Label, error)
	Get(ctx context.Context, id int64) (store.Label, error)
	Create(ctx context.Context, row store.Label) (store.Label, error)
	Update(ctx context.Context, id int64, patch store.LabelPatch) (store.Label, error)
	Delete(ctx context.Context, id int64) (store.Label, error)
}

// New constructs a Service backed by st.
func New(st Store) Service {
	return records.New(records.Table[store.Label, store.LabelPatch]{
		List:   st.ListLabels,
		Lookup: st.Label,
		Create: st.CreateLabel,
		Update: st.UpdateLabel,
		Delete: st.DeleteLabel,
	})
}
