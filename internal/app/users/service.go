package users

import (
	"context"

	"musicdb/internal/app/records"
	"musicdb/internal/store"
)

// Store is the subset of the catalogue store used for users.
type Store interface {
	ListUsers(ctx context.Context, page store.Page) ([]store.User, error)
	User(ctx context.Context, id int64) (store.Found[store.User], bool, error)
	CreateUser(ctx context.Context, row store.User) (store.User, error)
	UpdateUser(ctx context.Context, existing store.Found[store.User], patch store.UserPatch) (store.User, error)
	DeleteUser(ctx context.Context, existing store.Found[store.User]) (store.User, error)
}

// Service exposes users by id.
type Service interface {
	List(ctx context.Context, page store.Page) ([]store.User, error)
	Get(ctx context.Context, id int64) (store.User, error)
	Create(ctx context.Context, row store.User) (store.User, error)
	Update(ctx context.Context, id int64, patch store.UserPatch) (store.User, error)
	Delete(ctx context.Context, id int64) (store.User, error)
}

// New constructs a Service backed by st.
func New(st Store) Service {
	return records.New(records.Table[store.User, store.UserPatch]{
		List:   st.ListUsers,
		Lookup: st.User,
		Create: st.CreateUser,
		Update: st.UpdateUser,
		Delete: st.DeleteUser,
	})
}
