package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// User is a row of tb_user.
type User struct {
	ID        int64       `json:"id"`
	Name      string      `json:"nom"`
	FirstName *string     `json:"prenom"`
	Birthday  pgtype.Date `json:"birthday"`
	Email     string      `json:"email"`
	Address   *string     `json:"address"`
}

// UserPatch carries the fields of a partial user update.
type UserPatch struct {
	Name      *string
	FirstName *string
	Birthday  *pgtype.Date
	Email     *string
	Address   *string
}

// Apply returns a copy of u with every non-nil patch field written over it.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.FirstName != nil {
		u.FirstName = p.FirstName
	}
	if p.Birthday != nil && p.Birthday.Valid {
		u.Birthday = *p.Birthday
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Address != nil {
		u.Address = p.Address
	}
	return u
}

// ListUsers returns one page of users ordered by id.
func (s *Store) ListUsers(ctx context.Context, page Page) ([]User, error) {
	users, err := list(ctx, s.db, `
		SELECT us_id, us_nom, us_prenom, us_birthday, us_email, us_address
		FROM tb_user
		ORDER BY us_id
		LIMIT $1 OFFSET $2
	`, page, scanUser)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// User looks a user up by id.
func (s *Store) User(ctx context.Context, id int64) (Found[User], bool, error) {
	found, ok, err := lookup(ctx, s.db, `
		SELECT us_id, us_nom, us_prenom, us_birthday, us_email, us_address
		FROM tb_user
		WHERE us_id = $1
	`, scanUser, id)
	if err != nil {
		return Found[User]{}, false, fmt.Errorf("get user: %w", err)
	}
	return found, ok, nil
}

// CreateUser inserts u. A reused id or email fails with ErrDuplicateKey.
func (s *Store) CreateUser(ctx context.Context, u User) (User, error) {
	err := s.insert(ctx, "insert user", `
		INSERT INTO tb_user (us_id, us_nom, us_prenom, us_birthday, us_email, us_address)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID, u.Name, u.FirstName, u.Birthday, u.Email, u.Address)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// UpdateUser merges patch into the looked-up user and stores the result.
func (s *Store) UpdateUser(ctx context.Context, existing Found[User], patch UserPatch) (User, error) {
	u := patch.Apply(existing.Row())
	err := s.update(ctx, "update user", `
		UPDATE tb_user
		SET us_nom = $2, us_prenom = $3, us_birthday = $4, us_email = $5, us_address = $6
		WHERE us_id = $1
	`, u.ID, u.Name, u.FirstName, u.Birthday, u.Email, u.Address)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// DeleteUser removes the looked-up user and returns it.
func (s *Store) DeleteUser(ctx context.Context, existing Found[User]) (User, error) {
	u := existing.Row()
	if err := s.remove(ctx, "delete user", `DELETE FROM tb_user WHERE us_id = $1`, u.ID); err != nil {
		return User{}, err
	}
	return u, nil
}

func scanUser(sc rowScanner) (User, error) {
	var u User
	if err := sc.Scan(&u.ID, &u.Name, &u.FirstName, &u.Birthday, &u.Email, &u.Address); err != nil {
		return User{}, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}
