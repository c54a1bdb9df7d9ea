package store

import (
	"context"
	"fmt"
)

// demoCatalogue inserts a small connected catalogue. Existing rows win.
var demoCatalogue = []string{
	`INSERT INTO tb_artiste (at_id, at_nom, at_prenom, at_nationalite, at_genre, at_biographie) VALUES
		(1, 'Dylan', 'Bob', 'American', 'Folk', 'Singer-songwriter from Duluth, Minnesota.'),
		(2, 'Baez', 'Joan', 'American', 'Folk', NULL),
		(3, 'Simone', 'Nina', 'American', 'Jazz', NULL)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_user (us_id, us_nom, us_prenom, us_birthday, us_email, us_address) VALUES
		(1, 'Martin', 'Claire', '1990-04-12', 'claire.martin@example.com', '12 rue de la Paix, Paris'),
		(2, 'Durand', 'Hugo', NULL, 'hugo.durand@example.com', NULL)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_label (lb_id, lb_nom, lb_pays, lb_datedecreation) VALUES
		(1, 'Columbia', 'United States', '1889-01-15'),
		(2, 'Vanguard', 'United States', '1950-01-01')
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_album (ab_id, ab_id_artiste, ab_titre, ab_annee) VALUES
		(1, 1, 'Highway 61 Revisited', 1965),
		(2, 2, 'Joan Baez', 1960),
		(3, 3, 'I Put a Spell on You', 1965)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_song (sg_id, sg_id_album, sg_titre, sg_datedesortie) VALUES
		(1, 1, 'Like a Rolling Stone', '1965-07-20'),
		(2, 1, 'Desolation Row', '1965-08-30'),
		(3, 2, 'Silver Dagger', '1960-10-01'),
		(4, 3, 'Feeling Good', '1965-06-01')
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_playlist (pl_id, pl_id_user, pl_titre, pl_description) VALUES
		(1, 1, 'Sixties', 'Folk and jazz from the sixties'),
		(2, 2, 'Evening', NULL)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_collaborer (cl_id_artiste, cl_id_song) VALUES (1, 1), (2, 3), (3, 4)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_suivre (su_id_artiste, su_id_user) VALUES (1, 1), (3, 1), (2, 2)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_affilier (af_id_artiste, af_id_label) VALUES (1, 1), (2, 2)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_partager (pa_id_user, pa_id_playlist) VALUES (2, 1)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO tb_detenir (de_id_song, de_id_playlist) VALUES (1, 1), (2, 1), (4, 1), (4, 2)
	ON CONFLICT DO NOTHING`,
}

// SeedDemo loads the demo catalogue in one transaction. Rows whose keys are
// already taken are left as they are, so seeding twice is harmless.
func (s *Store) SeedDemo(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range demoCatalogue {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed demo catalogue: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}
