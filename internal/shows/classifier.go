package shows

import (
	"fmt"
	"time"

	"gigboard/internal/models"
)

// Counterpart holds the display attributes of the entity on the other
// side of a show: the artist when looking from a venue, the venue when
// looking from an artist.
type Counterpart struct {
	ID        int64
	Name      string
	ImageLink string
}

// LookupFunc resolves a show's counterpart. It must return an error for
// a counterpart that no longer exists; the store's integrity rules make
// that a data bug, and the classifier refuses to paper over it.
type LookupFunc func(show models.Show) (Counterpart, error)

// ShowView is one classified show enriched with its counterpart.
type ShowView struct {
	Show        models.Show
	Counterpart Counterpart
}

// Classification partitions a set of shows relative to a reference time.
// Every input show lands in exactly one bucket.
type Classification struct {
	Past     []ShowView
	Upcoming []ShowView
}

func (c *Classification) PastCount() int     { return len(c.Past) }
func (c *Classification) UpcomingCount() int { return len(c.Upcoming) }

// IsUpcoming reports whether a show counts as upcoming at the reference
// time. A show starting exactly at the reference time is upcoming.
func IsUpcoming(show models.Show, now time.Time) bool {
	return !show.StartTime.Before(now)
}

// Partition splits shows into past and upcoming buckets, preserving
// input order within each bucket.
func Partition(list []models.Show, now time.Time) (past, upcoming []models.Show) {
	for _, show := range list {
		if IsUpcoming(show, now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}
	return past, upcoming
}

// Classify partitions shows against now and enriches each with its
// counterpart's display attributes. It has no side effects; counts are
// always the bucket lengths, never cached anywhere.
func Classify(list []models.Show, now time.Time, lookup LookupFunc) (*Classification, error) {
	c := &Classification{}
	for _, show := range list {
		counterpart, err := lookup(show)
		if err != nil {
			return nil, fmt.Errorf("show %d: %w", show.ID, err)
		}
		view := ShowView{Show: show, Counterpart: counterpart}
		if IsUpcoming(show, now) {
			c.Upcoming = append(c.Upcoming, view)
		} else {
			c.Past = append(c.Past, view)
		}
	}
	return c, nil
}
