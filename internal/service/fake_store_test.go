package service

import (
	"context"
	"database/sql"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/species-sync/internal/store"
	"github.com/MKhiriev/species-sync/models"
)

// recordingTransactor hands the same repositories to every transaction and
// remembers the options each one was opened with.
type recordingTransactor struct {
	repos *store.Repositories
	err   error

	mu   sync.Mutex
	opts []*sql.TxOptions
}

func (r *recordingTransactor) WithinTx(_ context.Context, opts *sql.TxOptions, fn func(repos *store.Repositories) error) error {
	r.mu.Lock()
	r.opts = append(r.opts, opts)
	r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	return fn(r.repos)
}

// memoryCatalogue is an in-memory catalogue with a version ledger. Each
// transaction holds the lock for its whole duration and is applied to a copy
// that replaces the live state only on success.
type memoryCatalogue struct {
	mu sync.Mutex

	counter   int64
	changes   []models.ChangeEntry
	species   map[models.Locale]map[int64]models.Species
	media     map[int64]models.Media
	nextMedia int64
}

func newMemoryCatalogue() *memoryCatalogue {
	return &memoryCatalogue{
		counter: models.BaselineVersion,
		species: map[models.Locale]map[int64]models.Species{
			models.LocaleEnglish: {},
			models.LocaleTetum:   {},
		},
		media: map[int64]models.Media{},
	}
}

func (m *memoryCatalogue) clone() *memoryCatalogue {
	c := &memoryCatalogue{
		counter:   m.counter,
		changes:   slices.Clone(m.changes),
		species:   map[models.Locale]map[int64]models.Species{},
		media:     map[int64]models.Media{},
		nextMedia: m.nextMedia,
	}
	for locale, rows := range m.species {
		c.species[locale] = map[int64]models.Species{}
		for id, row := range rows {
			c.species[locale][id] = row
		}
	}
	for id, row := range m.media {
		c.media[id] = row
	}
	return c
}

func (m *memoryCatalogue) WithinTx(_ context.Context, _ *sql.TxOptions, fn func(repos *store.Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := m.clone()
	repos := &store.Repositories{
		Changelog: memoryLedger{tx},
		Species:   memorySpecies{tx},
		Media:     memoryMedia{tx},
	}
	if err := fn(repos); err != nil {
		return err
	}

	m.counter, m.changes, m.species, m.media, m.nextMedia = tx.counter, tx.changes, tx.species, tx.media, tx.nextMedia
	return nil
}

func (m *memoryCatalogue) since(since int64) []models.ChangeEntry {
	var out []models.ChangeEntry
	for _, e := range m.changes {
		if e.Version > since {
			out = append(out, e)
		}
	}
	return out
}

type memoryLedger struct{ m *memoryCatalogue }

func (l memoryLedger) Append(_ context.Context, entityType models.EntityType, entityID int64, operation models.Operation) (models.ChangeEntry, error) {
	l.m.counter++
	e := models.ChangeEntry{
		ChangeID:   int64(len(l.m.changes) + 1),
		EntityType: entityType,
		EntityID:   entityID,
		Version:    l.m.counter,
		Operation:  operation,
		CreatedAt:  time.Now(),
	}
	l.m.changes = append(l.m.changes, e)
	return e, nil
}

// WithinTx already serializes transactions, so there is nothing to lock.
func (l memoryLedger) LockCounter(context.Context) error { return nil }

func (l memoryLedger) QuerySince(_ context.Context, since int64) ([]models.ChangeEntry, error) {
	return l.m.since(since), nil
}

func (l memoryLedger) CountSince(_ context.Context, since int64) (int64, error) {
	return int64(len(l.m.since(since))), nil
}

func (l memoryLedger) MaxVersionSince(_ context.Context, since int64) (int64, error) {
	var latest int64
	for _, e := range l.m.since(since) {
		latest = max(latest, e.Version)
	}
	return latest, nil
}

func (l memoryLedger) MaxVersion(ctx context.Context) (int64, error) {
	return l.MaxVersionSince(ctx, 0)
}

func (l memoryLedger) Page(_ context.Context, since int64, limit, offset uint64) ([]models.ChangeEntry, error) {
	all := l.m.since(since)
	if offset >= uint64(len(all)) {
		return nil, nil
	}
	end := min(offset+limit, uint64(len(all)))
	return all[offset:end], nil
}

type memorySpecies struct{ m *memoryCatalogue }

func (s memorySpecies) ListAll(_ context.Context, locale models.Locale) ([]models.Species, error) {
	out := []models.Species{}
	for _, row := range s.m.species[locale] {
		out = append(out, row)
	}
	slices.SortFunc(out, func(a, b models.Species) int { return int(a.SpeciesID - b.SpeciesID) })
	return out, nil
}

func (s memorySpecies) ListByIDs(ctx context.Context, locale models.Locale, ids []int64) ([]models.Species, error) {
	all, _ := s.ListAll(ctx, locale)
	out := []models.Species{}
	for _, row := range all {
		if slices.Contains(ids, row.SpeciesID) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s memorySpecies) Upsert(_ context.Context, locale models.Locale, row models.Species) (models.Species, error) {
	s.m.species[locale][row.SpeciesID] = row
	return row, nil
}

func (s memorySpecies) Delete(_ context.Context, speciesID int64) error {
	found := false
	for _, rows := range s.m.species {
		if _, ok := rows[speciesID]; ok {
			found = true
			delete(rows, speciesID)
		}
	}
	if !found {
		return store.ErrSpeciesNotFound
	}
	return nil
}

func (s memorySpecies) Exists(_ context.Context, speciesID int64) (bool, error) {
	for _, rows := range s.m.species {
		if _, ok := rows[speciesID]; ok {
			return true, nil
		}
	}
	return false, nil
}

type memoryMedia struct{ m *memoryCatalogue }

func (r memoryMedia) ListAll(_ context.Context) ([]models.Media, error) {
	out := []models.Media{}
	for _, row := range r.m.media {
		out = append(out, row)
	}
	slices.SortFunc(out, func(a, b models.Media) int { return int(a.MediaID - b.MediaID) })
	return out, nil
}

func (r memoryMedia) ListByIDs(ctx context.Context, ids []int64) ([]models.Media, error) {
	all, _ := r.ListAll(ctx)
	out := []models.Media{}
	for _, row := range all {
		if slices.Contains(ids, row.MediaID) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r memoryMedia) Create(_ context.Context, media models.Media) (models.Media, error) {
	r.m.nextMedia++
	media.MediaID = r.m.nextMedia
	r.m.media[media.MediaID] = media
	return media, nil
}

func (r memoryMedia) Update(_ context.Context, media models.Media) (models.Media, error) {
	if _, ok := r.m.media[media.MediaID]; !ok {
		return models.Media{}, store.ErrMediaNotFound
	}
	r.m.media[media.MediaID] = media
	return media, nil
}

func (r memoryMedia) Delete(_ context.Context, mediaID int64) error {
	if _, ok := r.m.media[mediaID]; !ok {
		return store.ErrMediaNotFound
	}
	delete(r.m.media, mediaID)
	return nil
}

// memoryReplica applies sync payloads the way the client replica does.
type memoryReplica struct {
	watermark int64
	species   map[models.Locale]map[int64]models.Species
	media     map[int64]models.Media
}

func newMemoryReplica() *memoryReplica {
	return &memoryReplica{
		species: map[models.Locale]map[int64]models.Species{
			models.LocaleEnglish: {},
			models.LocaleTetum:   {},
		},
		media: map[int64]models.Media{},
	}
}

func (r *memoryReplica) applyBundle(b models.Bundle) {
	*r = *newMemoryReplica()
	r.applyRows(b.EntityCollections)
	r.watermark = b.Version
}

func (r *memoryReplica) applyIncremental(c models.IncrementalChanges) {
	for _, id := range c.Deleted.Species {
		for _, rows := range r.species {
			delete(rows, id)
		}
	}
	for _, id := range c.Deleted.Media {
		delete(r.media, id)
	}
	r.applyRows(c.EntityCollections)
	r.watermark = max(r.watermark, c.LatestVersion)
}

func (r *memoryReplica) applyRows(c models.EntityCollections) {
	for _, locale := range models.Locales {
		for _, row := range c.Species(locale) {
			r.species[locale][row.SpeciesID] = row
		}
	}
	for _, row := range c.Media {
		r.media[row.MediaID] = row
	}
}
