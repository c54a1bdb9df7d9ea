package artists

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"musicdb/internal/store"
)

var columns = []string{"at_id", "at_nom", "at_prenom", "at_nationalite", "at_genre", "at_biographie"}

func newService(t *testing.T) (Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(store.New(db)), mock
}

func TestFindByName(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE at_nom = $1`)).
		WithArgs("Dylan").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), "Dylan", "Bob", nil, "Folk", nil))

	got, err := svc.FindByName(context.Background(), "Dylan")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if got.ID != 1 || got.Genre != "Folk" {
		t.Fatalf("unexpected artist: %#v", got)
	}
}

func TestFindByNameMissing(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE at_nom = $1`)).
		WithArgs("Nobody").
		WillReturnRows(sqlmock.NewRows(columns))

	if _, err := svc.FindByName(context.Background(), "Nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteLooksUpFirst(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE at_id = $1`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(9), "Dylan", nil, nil, "Folk", nil))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tb_artiste WHERE at_id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := svc.Delete(context.Background(), 9)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got.Name != "Dylan" {
		t.Fatalf("unexpected artist: %#v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
