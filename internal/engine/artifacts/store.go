// Package artifacts holds the most recent value of every derived artifact.
package artifacts

import (
	"sync"
	"time"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/zerr"
)

type slot struct {
	value      any
	status     domain.Status
	version    uint64
	err        error
	producedAt time.Time
	updatedAt  time.Time
}

// Store is the artifact state of one orchestrator.
// Versions are monotonic per kind and survive invalidation.
type Store struct {
	mu          sync.RWMutex
	order       []domain.ArtifactKind
	slots       map[domain.ArtifactKind]*slot
	subscribers map[int]func(domain.ArtifactState)
	nextSub     int
	now         func() time.Time
}

// New creates a Store with every kind in order absent.
func New(order []domain.ArtifactKind) *Store {
	s := &Store{
		order:       append([]domain.ArtifactKind(nil), order...),
		slots:       make(map[domain.ArtifactKind]*slot, len(order)),
		subscribers: make(map[int]func(domain.ArtifactState)),
		now:         time.Now,
	}
	for _, kind := range order {
		s.slots[kind] = &slot{}
	}
	return s
}

// Get returns the artifact if it is present.
func (s *Store) Get(kind domain.ArtifactKind) (domain.Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.slots[kind]
	if !ok || sl.status != domain.StatusPresent {
		return domain.Artifact{}, false
	}
	return domain.Artifact{
		Kind:       kind,
		Value:      sl.value,
		Version:    sl.version,
		ProducedAt: sl.producedAt,
	}, true
}

// Put replaces the artifact value and bumps its version.
func (s *Store) Put(kind domain.ArtifactKind, value any) domain.Artifact {
	s.mu.Lock()
	sl := s.slotLocked(kind)
	now := s.now()
	sl.value = value
	sl.status = domain.StatusPresent
	sl.version++
	sl.err = nil
	sl.producedAt = now
	sl.updatedAt = now
	art := domain.Artifact{Kind: kind, Value: value, Version: sl.version, ProducedAt: now}
	state := stateOf(kind, sl)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, state)
	return art
}

// MarkPending flags the given artifacts as being recomputed.
// A pending artifact is not readable through Get.
func (s *Store) MarkPending(kinds ...domain.ArtifactKind) {
	s.mu.Lock()
	now := s.now()
	states := make([]domain.ArtifactState, 0, len(kinds))
	for _, kind := range kinds {
		sl := s.slotLocked(kind)
		sl.status = domain.StatusPending
		sl.value = nil
		sl.err = nil
		sl.updatedAt = now
		states = append(states, stateOf(kind, sl))
	}
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, st := range states {
		notify(subs, st)
	}
}

// Invalidate marks the artifact absent. cause is kept for reporting and may be nil.
func (s *Store) Invalidate(kind domain.ArtifactKind, cause error) {
	s.mu.Lock()
	sl := s.slotLocked(kind)
	sl.status = domain.StatusAbsent
	sl.value = nil
	sl.err = cause
	sl.updatedAt = s.now()
	state := stateOf(kind, sl)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, state)
}

// State returns the current state of one slot.
func (s *Store) State(kind domain.ArtifactKind) domain.ArtifactState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.slots[kind]
	if !ok {
		return domain.ArtifactState{Kind: kind}
	}
	return stateOf(kind, sl)
}

// Snapshot returns the state of every slot in derivation order.
func (s *Store) Snapshot() []domain.ArtifactState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]domain.ArtifactState, 0, len(s.order))
	for _, kind := range s.order {
		states = append(states, stateOf(kind, s.slots[kind]))
	}
	return states
}

// Subscribe registers fn for every state change and returns a function removing it.
// fn runs on the writer's goroutine and must not call back into the Store's writers.
func (s *Store) Subscribe(fn func(domain.ArtifactState)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Consistent reports an error if a present artifact has a requirement that is not present.
func (s *Store) Consistent(g *domain.Graph) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for step := range g.Walk() {
		sl, ok := s.slots[step.Kind]
		if !ok || sl.status != domain.StatusPresent {
			continue
		}
		for _, dep := range step.Requires {
			if d, ok := s.slots[dep]; !ok || d.status != domain.StatusPresent {
				return zerr.With(
					zerr.With(domain.ErrOrphanedArtifact, "artifact", step.Kind.String()),
					"dependency", dep.String(),
				)
			}
		}
	}
	return nil
}

func (s *Store) slotLocked(kind domain.ArtifactKind) *slot {
	sl, ok := s.slots[kind]
	if !ok {
		sl = &slot{}
		s.slots[kind] = sl
		s.order = append(s.order, kind)
	}
	return sl
}

func (s *Store) subscribersLocked() []func(domain.ArtifactState) {
	if len(s.subscribers) == 0 {
		return nil
	}
	subs := make([]func(domain.ArtifactState), 0, len(s.subscribers))
	for id := range s.nextSub {
		if fn, ok := s.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

func stateOf(kind domain.ArtifactKind, sl *slot) domain.ArtifactState {
	return domain.ArtifactState{
		Kind:      kind,
		Status:    sl.status,
		Version:   sl.version,
		Err:       sl.err,
		UpdatedAt: sl.updatedAt,
	}
}

func notify(subs []func(domain.ArtifactState), state domain.ArtifactState) {
	for _, fn := range subs {
		fn(state)
	}
}
