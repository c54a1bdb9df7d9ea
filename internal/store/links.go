package store

import (
	"context"
	"fmt"
)

// Collaboration links an artist to a song they contributed to (tb_collaborer).
type Collaboration struct {
	ArtistID int64 `json:"id_artiste"`
	SongID   int64 `json:"id_song"`
}

// Follow links a user to an artist they follow (tb_suivre).
type Follow struct {
	ArtistID int64 `json:"id_artiste"`
	UserID   int64 `json:"id_user"`
}

// Affiliation links an artist to a label (tb_affilier).
type Affiliation struct {
	ArtistID int64 `json:"id_artiste"`
	LabelID  int64 `json:"id_label"`
}

// Share links a user to a playlist shared with them (tb_partager).
type Share struct {
	UserID     int64 `json:"id_user"`
	PlaylistID int64 `json:"id_playlist"`
}

// Holds links a song to a playlist containing it (tb_detenir).
type Holds struct {
	SongID     int64 `json:"id_song"`
	PlaylistID int64 `json:"id_playlist"`
}

// linkTable describes an association table keyed by two foreign keys.
type linkTable struct {
	name        string
	left, right string
}

var (
	collaborations = linkTable{name: "tb_collaborer", left: "cl_id_artiste", right: "cl_id_song"}
	follows        = linkTable{name: "tb_suivre", left: "su_id_artiste", right: "su_id_user"}
	affiliations   = linkTable{name: "tb_affilier", left: "af_id_artiste", right: "af_id_label"}
	shares         = linkTable{name: "tb_partager", left: "pa_id_user", right: "pa_id_playlist"}
	holdings       = linkTable{name: "tb_detenir", left: "de_id_song", right: "de_id_playlist"}
)

func (t linkTable) listQuery() string {
	return fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s, %s LIMIT $1 OFFSET $2", t.left, t.right, t.name, t.left, t.right)
}

func (t linkTable) lookupQuery() string {
	return fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = $1 AND %s = $2", t.left, t.right, t.name, t.left, t.right)
}

func (t linkTable) insertQuery() string {
	return fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", t.name, t.left, t.right)
}

func (t linkTable) deleteQuery() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2", t.name, t.left, t.right)
}

func listLinks[T any](ctx context.Context, s *Store, t linkTable, page Page, build func(left, right int64) T) ([]T, error) {
	links, err := list(ctx, s.db, t.listQuery(), page, scanLink(t, build))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return links, nil
}

func lookupLink[T any](ctx context.Context, s *Store, t linkTable, left, right int64, build func(left, right int64) T) (Found[T], bool, error) {
	found, ok, err := lookup(ctx, s.db, t.lookupQuery(), scanLink(t, build), left, right)
	if err != nil {
		return Found[T]{}, false, fmt.Errorf("get %s: %w", t.name, err)
	}
	return found, ok, nil
}

func scanLink[T any](t linkTable, build func(left, right int64) T) func(rowScanner) (T, error) {
	return func(sc rowScanner) (T, error) {
		var left, right int64
		if err := sc.Scan(&left, &right); err != nil {
			var zero T
			return zero, fmt.Errorf("scan %s: %w", t.name, err)
		}
		return build(left, right), nil
	}
}

func newCollaboration(artistID, songID int64) Collaboration {
	return Collaboration{ArtistID: artistID, SongID: songID}
}

func newFollow(artistID, userID int64) Follow { return Follow{ArtistID: artistID, UserID: userID} }

func newAffiliation(artistID, labelID int64) Affiliation {
	return Affiliation{ArtistID: artistID, LabelID: labelID}
}

func newShare(userID, playlistID int64) Share { return Share{UserID: userID, PlaylistID: playlistID} }

func newHolds(songID, playlistID int64) Holds { return Holds{SongID: songID, PlaylistID: playlistID} }

// ListCollaborations returns one page of collaborations.
func (s *Store) ListCollaborations(ctx context.Context, page Page) ([]Collaboration, error) {
	return listLinks(ctx, s, collaborations, page, newCollaboration)
}

// Collaboration looks up the (artist, song) pair.
func (s *Store) Collaboration(ctx context.Context, artistID, songID int64) (Found[Collaboration], bool, error) {
	return lookupLink(ctx, s, collaborations, artistID, songID, newCollaboration)
}

// CreateCollaboration inserts c. An existing pair fails with ErrDuplicateKey.
func (s *Store) CreateCollaboration(ctx context.Context, c Collaboration) (Collaboration, error) {
	if err := s.insert(ctx, "insert collaboration", collaborations.insertQuery(), c.ArtistID, c.SongID); err != nil {
		return Collaboration{}, err
	}
	return c, nil
}

// DeleteCollaboration removes the looked-up pair.
func (s *Store) DeleteCollaboration(ctx context.Context, existing Found[Collaboration]) (Collaboration, error) {
	c := existing.Row()
	if err := s.remove(ctx, "delete collaboration", collaborations.deleteQuery(), c.ArtistID, c.SongID); err != nil {
		return Collaboration{}, err
	}
	return c, nil
}

// ListFollows returns one page of follows.
func (s *Store) ListFollows(ctx context.Context, page Page) ([]Follow, error) {
	return listLinks(ctx, s, follows, page, newFollow)
}

// Follow looks up the (artist, user) pair.
func (s *Store) Follow(ctx context.Context, artistID, userID int64) (Found[Follow], bool, error) {
	return lookupLink(ctx, s, follows, artistID, userID, newFollow)
}

// CreateFollow inserts f.
func (s *Store) CreateFollow(ctx context.Context, f Follow) (Follow, error) {
	if err := s.insert(ctx, "insert follow", follows.insertQuery(), f.ArtistID, f.UserID); err != nil {
		return Follow{}, err
	}
	return f, nil
}

// DeleteFollow removes the looked-up pair.
func (s *Store) DeleteFollow(ctx context.Context, existing Found[Follow]) (Follow, error) {
	f := existing.Row()
	if err := s.remove(ctx, "delete follow", follows.deleteQuery(), f.ArtistID, f.UserID); err != nil {
		return Follow{}, err
	}
	return f, nil
}

// ListAffiliations returns one page of affiliations.
func (s *Store) ListAffiliations(ctx context.Context, page Page) ([]Affiliation, error) {
	return listLinks(ctx, s, affiliations, page, newAffiliation)
}

// Affiliation looks up the (artist, label) pair.
func (s *Store) Affiliation(ctx context.Context, artistID, labelID int64) (Found[Affiliation], bool, error) {
	return lookupLink(ctx, s, affiliations, artistID, labelID, newAffiliation)
}

// CreateAffiliation inserts a.
func (s *Store) CreateAffiliation(ctx context.Context, a Affiliation) (Affiliation, error) {
	if err := s.insert(ctx, "insert affiliation", affiliations.insertQuery(), a.ArtistID, a.LabelID); err != nil {
		return Affiliation{}, err
	}
	return a, nil
}

// DeleteAffiliation removes the looked-up pair.
func (s *Store) DeleteAffiliation(ctx context.Context, existing Found[Affiliation]) (Affiliation, error) {
	a := existing.Row()
	if err := s.remove(ctx, "delete affiliation", affiliations.deleteQuery(), a.ArtistID, a.LabelID); err != nil {
		return Affiliation{}, err
	}
	return a, nil
}

// ListShares returns one page of shares.
func (s *Store) ListShares(ctx context.Context, page Page) ([]Share, error) {
	return listLinks(ctx, s, shares, page, newShare)
}

// Share looks up the (user, playlist) pair.
func (s *Store) Share(ctx context.Context, userID, playlistID int64) (Found[Share], bool, error) {
	return lookupLink(ctx, s, shares, userID, playlistID, newShare)
}

// CreateShare inserts sh.
func (s *Store) CreateShare(ctx context.Context, sh Share) (Share, error) {
	if err := s.insert(ctx, "insert share", shares.insertQuery(), sh.UserID, sh.PlaylistID); err != nil {
		return Share{}, err
	}
	return sh, nil
}

// DeleteShare removes the looked-up pair.
func (s *Store) DeleteShare(ctx context.Context, existing Found[Share]) (Share, error) {
	sh := existing.Row()
	if err := s.remove(ctx, "delete share", shares.deleteQuery(), sh.UserID, sh.PlaylistID); err != nil {
		return Share{}, err
	}
	return sh, nil
}

// ListHoldings returns one page of song/playlist memberships.
func (s *Store) ListHoldings(ctx context.Context, page Page) ([]Holds, error) {
	return listLinks(ctx, s, holdings, page, newHolds)
}

// Holds looks up the (song, playlist) pair.
func (s *Store) Holds(ctx context.Context, songID, playlistID int64) (Found[Holds], bool, error) {
	return lookupLink(ctx, s, holdings, songID, playlistID, newHolds)
}

// CreateHolds inserts h.
func (s *Store) CreateHolds(ctx context.Context, h Holds) (Holds, error) {
	if err := s.insert(ctx, "insert holds", holdings.insertQuery(), h.SongID, h.PlaylistID); err != nil {
		return Holds{}, err
	}
	return h, nil
}

// DeleteHolds removes the looked-up pair.
func (s *Store) DeleteHolds(ctx context.Context, existing Found[Holds]) (Holds, error) {
	h := existing.Row()
	if err := s.remove(ctx, "delete holds", holdings.deleteQuery(), h.SongID, h.PlaylistID); err != nil {
		return Holds{}, err
	}
	return h, nil
}
