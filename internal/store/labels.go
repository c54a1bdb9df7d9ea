package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// Label is a row of tb_label.
type Label struct {
	ID        int64       `json:"id"`
	Name      string      `json:"nom"`
	Country   *string     `json:"pays"`
	FoundedOn pgtype.Date `json:"date_de_creation"`
}

// LabelPatch carries the fields of a partial label update.
type LabelPatch struct {
	Name      *string
	Country   *string
	FoundedOn *pgtype.Date
}

// Apply returns a copy of l with every non-nil patch field written over it.
func (p LabelPatch) Apply(l Label) Label {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Country != nil {
		l.Country = p.Country
	}
	if p.FoundedOn != nil && p.FoundedOn.Valid {
		l.FoundedOn = *p.FoundedOn
	}
	return l
}

// ListLabels returns one page of labels ordered by id.
func (s *Store) ListLabels(ctx context.Context, page Page) ([]Label, error) {
	labels, err := list(ctx, s.db, `
		SELECT lb_id, lb_nom, lb_pays, lb_datedecreation
		FROM tb_label
		ORDER BY lb_id
		LIMIT $1 OFFSET $2
	`, page, scanLabel)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return labels, nil
}

// Label looks a label up by id.
func (s *Store) Label(ctx context.Context, id int64) (Found[Label], bool, error) {
	found, ok, err := lookup(ctx, s.db, `
		SELECT lb_id, lb_nom, lb_pays, lb_datedecreation
		FROM tb_label
		WHERE lb_id = $1
	`, scanLabel, id)
	if err != nil {
		return Found[Label]{}, false, fmt.Errorf("get label: %w", err)
	}
	return found, ok, nil
}

// CreateLabel inserts l and echoes it back.
func (s *Store) CreateLabel(ctx context.Context, l Label) (Label, error) {
	err := s.insert(ctx, "insert label", `
		INSERT INTO tb_label (lb_id, lb_nom, lb_pays, lb_datedecreation)
		VALUES ($1, $2, $3, $4)
	`, l.ID, l.Name, l.Country, l.FoundedOn)
	if err != nil {
		return Label{}, err
	}
	return l, nil
}

// UpdateLabel merges patch into the looked-up label and stores the result.
func (s *Store) UpdateLabel(ctx context.Context, existing Found[Label], patch LabelPatch) (Label, error) {
	l := patch.Apply(existing.Row())
	err := s.update(ctx, "update label", `
		UPDATE tb_label
		SET lb_nom = $2, lb_pays = $3, lb_datedecreation = $4
		WHERE lb_id = $1
	`, l.ID, l.Name, l.Country, l.FoundedOn)
	if err != nil {
		return Label{}, err
	}
	return l, nil
}

// DeleteLabel removes the looked-up label and returns it.
func (s *Store) DeleteLabel(ctx context.Context, existing Found[Label]) (Label, error) {
	l := existing.Row()
	if err := s.remove(ctx, "delete label", `DELETE FROM tb_label WHERE lb_id = $1`, l.ID); err != nil {
		return Label{}, err
	}
	return l, nil
}

func scanLabel(sc rowScanner) (Label, error) {
	var l Label
	if err := sc.Scan(&l.ID, &l.Name, &l.Country, &l.FoundedOn); err != nil {
		return Label{}, fmt.Errorf("scan label: %w", err)
	}
	return l, nil
}
