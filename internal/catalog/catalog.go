// Package catalog loads the recording list together with its court and
// courtroom reference data, and serves filtered, paginated views of it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gavel/internal/courtapi"
	"gavel/internal/logging"
	"gavel/internal/search"
)

// Backend is the slice of the court API the catalog depends on.
type Backend interface {
	ListRecordings(ctx context.Context) ([]courtapi.Recording, error)
	ListCourts(ctx context.Context) ([]courtapi.Court, error)
	ListCourtrooms(ctx context.Context) ([]courtapi.Courtroom, error)
}

// Page is one window into a filtered recording list.
type Page struct {
	Recordings []courtapi.Recording
	Number     int
	Count      int
	Total      int
}

// Catalog holds the loaded recording list and its reference data.
type Catalog struct {
	backend Backend
	logger  *slog.Logger

	recordings    []courtapi.Recording
	courtList     []courtapi.Court
	courtroomList []courtapi.Courtroom
	courts        map[int64]string
	courtrooms    map[int64]string
	loaded        bool
}

// New builds an empty catalog.
func New(backend Backend, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		backend: backend,
		logger:  logger.With(logging.FieldComponent, "catalog"),
	}
}

// LoadAll fetches recordings, courts, and courtrooms concurrently. All
// three requests run to completion even when one fails; the catalog
// only replaces its state when every fetch succeeded.
func (c *Catalog) LoadAll(ctx context.Context) error {
	var (
		wg         sync.WaitGroup
		recordings []courtapi.Recording
		courts     []courtapi.Court
		courtrooms []courtapi.Courtroom
		errs       [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		recordings, errs[0] = c.backend.ListRecordings(ctx)
	}()
	go func() {
		defer wg.Done()
		courts, errs[1] = c.backend.ListCourts(ctx)
	}()
	go func() {
		defer wg.Done()
		courtrooms, errs[2] = c.backend.ListCourtrooms(ctx)
	}()
	wg.Wait()

	if err := errors.Join(errs[0], errs[1], errs[2]); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	c.courts = make(map[int64]string, len(courts))
	for _, court := range courts {
		c.courts[court.ID] = court.Name
	}
	c.courtrooms = make(map[int64]string, len(courtrooms))
	for _, room := range courtrooms {
		c.courtrooms[room.ID] = room.Name
	}
	c.courtList = courts
	c.courtroomList = courtrooms
	c.recordings = c.joinNames(recordings)
	c.loaded = true
	c.logger.Debug("loaded catalog",
		"recordings", len(recordings),
		"courts", len(courts),
		"courtrooms", len(courtrooms))
	return nil
}

func (c *Catalog) joinNames(recordings []courtapi.Recording) []courtapi.Recording {
	joined := make([]courtapi.Recording, len(recordings))
	for i, rec := range recordings {
		if rec.Court == "" {
			rec.Court = c.courts[rec.CourtID]
		}
		if rec.Courtroom == "" {
			rec.Courtroom = c.courtrooms[rec.CourtroomID]
		}
		joined[i] = rec
	}
	return joined
}

// Loaded reports whether the catalog holds server state.
func (c *Catalog) Loaded() bool {
	return c.loaded
}

// Recordings returns every loaded recording with names joined in.
func (c *Catalog) Recordings() []courtapi.Recording {
	return c.recordings
}

// Recording returns one recording by id.
func (c *Catalog) Recording(id int64) (courtapi.Recording, bool) {
	for _, rec := range c.recordings {
		if rec.ID == id {
			return rec, true
		}
	}
	return courtapi.Recording{}, false
}

// Search returns the recordings matching term.
func (c *Catalog) Search(term string) []courtapi.Recording {
	return search.Filter(c.recordings, term)
}

// Courts returns the loaded court collection.
func (c *Catalog) Courts() []courtapi.Court {
	return c.courtList
}

// Courtrooms returns the loaded courtroom collection.
func (c *Catalog) Courtrooms() []courtapi.Courtroom {
	return c.courtroomList
}

// CourtName resolves a court id to its display name.
func (c *Catalog) CourtName(id int64) string {
	return c.courts[id]
}

// CourtroomName resolves a courtroom id to its display name.
func (c *Catalog) CourtroomName(id int64) string {
	return c.courtrooms[id]
}

// Paginate slices recordings into the requested page. Pages are
// one-based; a page past the end returns the last non-empty page, and
// an empty input yields a single empty page.
func Paginate(recordings []courtapi.Recording, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 10
	}
	total := len(recordings)
	count := (total + pageSize - 1) / pageSize
	if count == 0 {
		count = 1
	}
	if page < 1 {
		page = 1
	}
	if page > count {
		page = count
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page{
		Recordings: recordings[start:end],
		Number:     page,
		Count:      count,
		Total:      total,
	}
}
