// SPDX-License-Identifier: MIT

package server

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphpoet/internal/observability"
	"github.com/katalvlaran/graphpoet/poet"
)

// Snapshot is one immutable generation of the affinity graph.
type Snapshot struct {
	ID       uuid.UUID
	Source   string
	LoadedAt time.Time
	Stats    poet.Stats
	Poet     *poet.Poet
}

// Store publishes the current Snapshot. Readers never block; a reload builds
// a complete new poet and swaps the pointer, so no graph is mutated in place.
type Store struct {
	current atomic.Pointer[Snapshot]

	// loadMu serializes LoadFile: one build publishes before the next starts.
	loadMu sync.Mutex
	build  func(path string, opts ...poet.Option) (*poet.Poet, error)

	metrics *observability.Collector
	log     *zap.Logger
	opts    []poet.Option
}

// NewStore returns an empty store. metrics may be nil.
func NewStore(metrics *observability.Collector, log *zap.Logger, opts ...poet.Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}

	return &Store{build: poet.NewFromFile, metrics: metrics, log: log, opts: opts}
}

// Current returns the live snapshot, or nil before the first successful load.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Publish makes p the live snapshot and returns it.
func (s *Store) Publish(source string, p *poet.Poet) *Snapshot {
	snap := &Snapshot{
		ID:       uuid.New(),
		Source:   source,
		LoadedAt: time.Now().UTC(),
		Stats:    p.Stats(),
		Poet:     p,
	}
	prev := s.current.Swap(snap)

	fields := []zap.Field{
		zap.String("snapshot", snap.ID.String()),
		zap.String("source", source),
		zap.Int("words", snap.Stats.Words),
		zap.Int("pairs", snap.Stats.Pairs),
	}
	if prev != nil {
		fields = append(fields, zap.String("replaces", prev.ID.String()))
	}
	s.log.Info("corpus snapshot published", fields...)

	if s.metrics != nil {
		s.metrics.ObserveReload(snap.Stats, nil)
	}

	return snap
}

// LoadFile builds a poet from path and publishes it. On failure the previous
// snapshot stays live and the error is returned. Concurrent calls run one at
// a time, so a slow build of an older file can never replace a newer one.
func (s *Store) LoadFile(path string) (*Snapshot, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	p, err := s.build(path, s.opts...)
	if err != nil {
		s.log.Error("corpus load failed", zap.String("source", path), zap.Error(err))
		if s.metrics != nil {
			s.metrics.ObserveReload(poet.Stats{}, err)
		}
		return nil, err
	}

	return s.Publish(path, p), nil
}
