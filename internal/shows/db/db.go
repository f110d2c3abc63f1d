package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	"gigboard/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateShow inserts a new show after verifying that both foreign keys
// resolve. The checks and the insert share one transaction, so a
// concurrently deleted counterpart rolls the whole operation back.
func (d *DB) CreateShow(ctx context.Context, show *models.Show) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		venueExists, err := tx.NewSelect().
			Model((*models.Venue)(nil)).
			Where("id = ?", show.VenueID).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check venue %d: %w", show.VenueID, err)
		}
		if !venueExists {
			return models.ErrVenueNotFound
		}

		artistExists, err := tx.NewSelect().
			Model((*models.Artist)(nil)).
			Where("id = ?", show.ArtistID).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check artist %d: %w", show.ArtistID, err)
		}
		if !artistExists {
			return models.ErrArtistNotFound
		}

		if _, err := tx.NewInsert().Model(show).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create show: %w", err)
		}
		return nil
	})
}

// ListShows returns every show ordered by start time.
func (d *DB) ListShows(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Order("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}

// ListShowsByVenue returns the shows booked at one venue.
func (d *DB) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Where("venue_id = ?", venueID).
		Order("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for venue %d: %w", venueID, err)
	}
	return shows, nil
}

// ListShowsByArtist returns the shows an artist is booked into.
func (d *DB) ListShowsByArtist(ctx context.Context, artistID int64) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Where("artist_id = ?", artistID).
		Order("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for artist %d: %w", artistID, err)
	}
	return shows, nil
}
