package service

import (
	"sort"
	"strings"
	"sync"

	"stream_tracker/internal/domain"
)

// roster is the in-memory tracked-streamer map, keyed by user ID. Ticks and
// operator add/remove calls run concurrently against it. Published entries are
// immutable: updates swap in a fresh copy through sync.Map's compare-and-swap,
// and inserts and removes use its atomic insert-if-absent and
// remove-if-present primitives, so a reader copying an entry out of the map
// never observes a partial write.
type roster struct {
	m sync.Map // user ID -> *domain.Streamer
}

func (r *roster) get(id string) (*domain.Streamer, bool) {
	v, ok := r.m.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*domain.Streamer), true
}

// insert adds the streamer if its ID is not yet tracked. Returns false when an
// entry already exists.
func (r *roster) insert(s *domain.Streamer) bool {
	_, loaded := r.m.LoadOrStore(s.ID, s)
	return !loaded
}

// remove deletes by ID and returns the removed entry, if any.
func (r *roster) remove(id string) (*domain.Streamer, bool) {
	v, loaded := r.m.LoadAndDelete(id)
	if !loaded {
		return nil, false
	}
	return v.(*domain.Streamer), true
}

// replace swaps in an updated copy of an entry. Returns false when the entry
// was removed or replaced concurrently, in which case the update is dropped
// rather than resurrecting a removed streamer.
func (r *roster) replace(id string, old, updated *domain.Streamer) bool {
	return r.m.CompareAndSwap(id, old, updated)
}

// findByLogin scans for a case-insensitive login match.
func (r *roster) findByLogin(login string) (*domain.Streamer, bool) {
	var found *domain.Streamer
	r.m.Range(func(_, v any) bool {
		s := v.(*domain.Streamer)
		if strings.EqualFold(s.Login, login) {
			found = s
			return false
		}
		return true
	})
	return found, found != nil
}

// ids returns all tracked user IDs, sorted so batch composition is stable
// across ticks.
func (r *roster) ids() []string {
	var ids []string
	r.m.Range(func(k, _ any) bool {
		ids = append(ids, k.(string))
		return true
	})
	sort.Strings(ids)
	return ids
}

// snapshot returns value copies of all entries for persistence, in ID order.
func (r *roster) snapshot() []domain.Streamer {
	var streamers []domain.Streamer
	r.m.Range(func(_, v any) bool {
		streamers = append(streamers, *v.(*domain.Streamer))
		return true
	})
	sort.Slice(streamers, func(i, j int) bool { return streamers[i].ID < streamers[j].ID })
	return streamers
}

func (r *roster) len() int {
	n := 0
	r.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
