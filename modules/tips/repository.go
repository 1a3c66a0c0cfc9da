package tips

import (
	"errors"
	"sync"

	"github.com/example/interactive-basics-demo/domain/tip"
	"github.com/google/uuid"
)

var errSessionNotFound = errors.New("tip session not found")

// session is one owner's view of the catalog.
type session struct {
	id    string
	shown *tip.ShownSet
}

// sessionSnapshot is a read-only copy of a session's state.
type sessionSnapshot struct {
	ID        string
	Shown     []string
	Total     int
	Remaining int
	Exhausted bool
}

// drawResult is a draw plus whether it was the draw that used up the catalog.
type drawResult struct {
	tip.Draw
	justExhausted bool
}

// sessionRepository keeps tip sessions in memory. A single mutex covers the
// rotator and every session, so draw-then-insert is atomic.
type sessionRepository struct {
	mu       sync.Mutex
	catalog  tip.Catalog
	rotator  *tip.Rotator
	sessions map[string]*session
	newID    func() string
}

func newSessionRepository(catalog tip.Catalog, rotator *tip.Rotator) *sessionRepository {
	return &sessionRepository{
		catalog:  catalog,
		rotator:  rotator,
		sessions: make(map[string]*session),
		newID:    uuid.NewString,
	}
}

func (r *sessionRepository) create() sessionSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &session{
		id:    r.newID(),
		shown: tip.NewShownSet(),
	}
	r.sessions[s.id] = s
	return r.snapshotLocked(s)
}

func (r *sessionRepository) get(id string) (sessionSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return sessionSnapshot{}, errSessionNotFound
	}
	return r.snapshotLocked(s), nil
}

func (r *sessionRepository) draw(id string) (drawResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return drawResult{}, errSessionNotFound
	}

	d := r.rotator.Next(r.catalog, s.shown)
	return drawResult{
		Draw:          d,
		justExhausted: !d.Exhausted && d.Remaining == 0,
	}, nil
}

func (r *sessionRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *sessionRepository) snapshotLocked(s *session) sessionSnapshot {
	remaining := tip.Remaining(r.catalog, s.shown)
	return sessionSnapshot{
		ID:        s.id,
		Shown:     s.shown.Tips(),
		Total:     r.catalog.Len(),
		Remaining: remaining,
		Exhausted: remaining == 0,
	}
}
