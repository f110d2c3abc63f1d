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

// GetVenueByID fetches one venue by its ID.
func (d *DB) GetVenueByID(ctx context.Context, id int64) (*models.Venue, error) {
	var venue models.Venue
	err := d.Bun.NewSelect().
		Model(&venue).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue %d: %w", id, err)
	}
	return &venue, nil
}

// ListVenues returns every venue in insertion order.
func (d *DB) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

// ListRecentVenues returns the most recently listed venues, newest first.
func (d *DB) ListRecentVenues(ctx context.Context, limit int) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Order("id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent venues: %w", err)
	}
	return venues, nil
}

// CreateVenue inserts a new venue and fills in its generated ID.
func (d *DB) CreateVenue(ctx context.Context, venue *models.Venue) error {
	_, err := d.Bun.NewInsert().Model(venue).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

// UpdateVenue overwrites every user-editable column of an existing venue.
func (d *DB) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	res, err := d.Bun.NewUpdate().
		Model(venue).
		Column("name", "address", "city", "state", "phone", "image_link",
			"facebook_link", "website", "genres", "seeking_talent", "seeking_description").
		Where("id = ?", venue.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update venue %d: %w", venue.ID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrVenueNotFound
	}
	return nil
}

// DeleteVenue removes a venue and all of its shows in one transaction.
// The cascade is this side only; artists are untouched.
func (d *DB) DeleteVenue(ctx context.Context, id int64) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete venue %d: %w", id, err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.ErrVenueNotFound
		}

		_, err = tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to cascade shows of venue %d: %w", id, err)
		}
		return nil
	})
}
