package services

import (
	"arena-route-planner/internal/domain"
	"errors"
	"sync"
)

// Session owns the single RouteModel of an editing session.
//
// Every command runs to completion before the next one starts, so callers
// on different goroutines observe the same sequential behavior as a single
// event loop. The model is never handed out beyond the callback scope.
type Session struct {
	mu    sync.Mutex
	model *domain.RouteModel
}

// Read-only copy of the session state with the analysis derived from it.
type Snapshot struct {
	Config    domain.ArenaConfig
	Waypoints []domain.Point
	Active    []int
	Landmarks []domain.Landmark
	Obstacles []domain.Obstacle
	Analysis  *domain.RouteAnalysis
}

func NewSession(model *domain.RouteModel) (*Session, error) {
	if model == nil {
		return nil, errors.New("new session: model must be non-nil")
	}
	return &Session{model: model}, nil
}

// Do runs one command against the model.
func (s *Session) Do(fn func(m *domain.RouteModel) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.model)
}

// Replace swaps in a model produced by a successful load.
func (s *Session) Replace(model *domain.RouteModel) error {
	if model == nil {
		return errors.New("replace session model: model must be non-nil")
	}
	s.mu.Lock()
	s.model = model
	s.mu.Unlock()
	return nil
}

func (s *Session) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := AnalyzeSegments(s.model)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Config:    s.model.Config(),
		Waypoints: s.model.Waypoints(),
		Active:    s.model.ActiveIndices(),
		Landmarks: s.model.Landmarks(),
		Obstacles: s.model.Obstacles(),
		Analysis:  a,
	}, nil
}

// Analyze recomputes the segment metrics of the current model.
func (s *Session) Analyze() (*domain.RouteAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AnalyzeSegments(s.model)
}
