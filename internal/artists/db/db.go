package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"gigboard/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// GetArtistByID fetches one artist by its ID.
func (d *DB) GetArtistByID(ctx context.Context, id int64) (*models.Artist, error) {
	var artist models.Artist
	err := d.Bun.NewSelect().
		Model(&artist).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist %d: %w", id, err)
	}
	return &artist, nil
}

// ListArtists returns every artist in insertion order.
func (d *DB) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// ListRecentArtists returns the most recently listed artists, newest first.
func (d *DB) ListRecentArtists(ctx context.Context, limit int) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Order("id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent artists: %w", err)
	}
	return artists, nil
}

// CreateArtist inserts a new artist and fills in its generated ID.
func (d *DB) CreateArtist(ctx context.Context, artist *models.Artist) error {
	_, err := d.Bun.NewInsert().Model(artist).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

// UpdateArtist overwrites every user-editable column of an existing artist.
func (d *DB) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	res, err := d.Bun.NewUpdate().
		Model(artist).
		Column("name", "city", "state", "phone", "image_link",
			"facebook_link", "website", "genres", "seeking_venue", "seeking_description").
		Where("id = ?", artist.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update artist %d: %w", artist.ID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrArtistNotFound
	}
	return nil
}

// DeleteArtist removes an artist. Unlike venues there is no cascade: the
// delete is refused while any show still references the artist, and the
// whole transaction rolls back leaving everything untouched.
func (d *DB) DeleteArtist(ctx context.Context, id int64) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		booked, err := tx.NewSelect().
			Model((*models.Show)(nil)).
			Where("artist_id = ?", id).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check shows of artist %d: %w", id, err)
		}
		if booked {
			return models.ErrArtistBooked
		}

		res, err := tx.NewDelete().
			Model((*models.Artist)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete artist %d: %w", id, err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.ErrArtistNotFound
		}
		return nil
	})
}
