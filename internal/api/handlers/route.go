package handlers

import (
	"arena-route-planner/internal/api/dto"
	"arena-route-planner/internal/domain"
	"arena-route-planner/internal/services"
	"net/http"
)

// RouteHandler exposes the RouteModel commands of the editing session.
type RouteHandler struct {
	Session   *services.Session
	HitRadius float64
}

func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Session.Snapshot()
	if err != nil {
		writeDomainError(w, r, "get route", err)
		return
	}

	active := make(map[int]bool, len(snap.Active))
	for _, i := range snap.Active {
		active[i] = true
	}

	res := dto.RouteResponse{
		Config:     toConfigResponse(snap.Config),
		Waypoints:  make([]dto.WaypointResponse, 0, len(snap.Waypoints)),
		Landmarks:  make([]dto.LandmarkResponse, 0, len(snap.Landmarks)),
		Rectangles: make([]dto.ObstacleResponse, 0, len(snap.Obstacles)),
		Analysis:   toAnalysisResponse(snap.Analysis),
	}
	for i, wp := range snap.Waypoints {
		res.Waypoints = append(res.Waypoints, dto.WaypointResponse{
			Index:  i,
			Label:  i + 1,
			X:      wp.X,
			Y:      wp.Y,
			Active: active[i],
		})
	}
	for _, lm := range snap.Landmarks {
		res.Landmarks = append(res.Landmarks, dto.LandmarkResponse{X: lm.Center.X, Y: lm.Center.Y, Radius: lm.Radius})
	}
	for _, o := range snap.Obstacles {
		res.Rectangles = append(res.Rectangles, dto.ObstacleResponse{X: o.Center.X, Y: o.Center.Y, Width: o.Width, Height: o.Height})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) AddWaypoint(w http.ResponseWriter, r *http.Request) {
	var req dto.PointRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.X == nil || req.Y == nil {
		writeError(w, r, http.StatusBadRequest, "x and y are required")
		return
	}

	var index int
	_ = h.Session.Do(func(m *domain.RouteModel) error {
		index = m.AddWaypoint(*req.X, *req.Y)
		return nil
	})

	writeJSON(w, r, http.StatusCreated, dto.WaypointResponse{
		Index: index,
		Label: index + 1,
		X:     *req.X,
		Y:     *req.Y,
	})
}

func (h *RouteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req dto.ToggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.X == nil || req.Y == nil {
		writeError(w, r, http.StatusBadRequest, "x and y are required")
		return
	}

	radius := h.HitRadius
	if req.HitRadius != nil {
		radius = *req.HitRadius
	}
	if !(radius > 0) {
		writeError(w, r, http.StatusBadRequest, "hit_radius must be positive")
		return
	}

	var res dto.ToggleResponse
	_ = h.Session.Do(func(m *domain.RouteModel) error {
		i, ok := m.ToggleActive(*req.X, *req.Y, radius)
		if ok {
			res = dto.ToggleResponse{Toggled: true, Index: &i, Active: m.IsActive(i)}
		}
		return nil
	})

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) AddLandmark(w http.ResponseWriter, r *http.Request) {
	var req dto.LandmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.X == nil || req.Y == nil {
		writeError(w, r, http.StatusBadRequest, "x and y are required")
		return
	}

	err := h.Session.Do(func(m *domain.RouteModel) error {
		return m.AddLandmark(*req.X, *req.Y, req.Radius)
	})
	if err != nil {
		writeDomainError(w, r, "add landmark", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.LandmarkResponse{X: *req.X, Y: *req.Y, Radius: req.Radius})
}

func (h *RouteHandler) AddObstacle(w http.ResponseWriter, r *http.Request) {
	var req dto.ObstacleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.X == nil || req.Y == nil {
		writeError(w, r, http.StatusBadRequest, "x and y are required")
		return
	}

	err := h.Session.Do(func(m *domain.RouteModel) error {
		return m.AddObstacle(*req.X, *req.Y, req.Width, req.Height)
	})
	if err != nil {
		writeDomainError(w, r, "add obstacle", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ObstacleResponse{X: *req.X, Y: *req.Y, Width: req.Width, Height: req.Height})
}

func (h *RouteHandler) Reset(w http.ResponseWriter, r *http.Request) {
	_ = h.Session.Do(func(m *domain.RouteModel) error {
		m.Reset()
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *RouteHandler) SetConfig(w http.ResponseWriter, r *http.Request) {
	var req dto.ArenaConfigRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cfg := domain.ArenaConfig{
		Width:            req.ArenaWidth,
		Height:           req.ArenaHeight,
		Speed:            req.Speed,
		ActiveMultiplier: req.ActiveMultiplier,
	}
	err := h.Session.Do(func(m *domain.RouteModel) error {
		return m.SetArenaConfig(cfg)
	})
	if err != nil {
		writeDomainError(w, r, "set arena config", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toConfigResponse(cfg))
}

func (h *RouteHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	a, err := h.Session.Analyze()
	if err != nil {
		writeDomainError(w, r, "analyze route", err)
		return
	}
	writeJSON(w, r, http.StatusOK, toAnalysisResponse(a))
}

// Info returns the plain-text info panel.
func (h *RouteHandler) Info(w http.ResponseWriter, r *http.Request) {
	a, err := h.Session.Analyze()
	if err != nil {
		writeDomainError(w, r, "analyze route", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(services.FormatInfoPanel(a) + "\n"))
}

func toConfigResponse(c domain.ArenaConfig) dto.ArenaConfigResponse {
	return dto.ArenaConfigResponse{
		ArenaWidth:       c.Width,
		ArenaHeight:      c.Height,
		Speed:            c.Speed,
		ActiveMultiplier: c.ActiveMultiplier,
	}
}

func toAnalysisResponse(a *domain.RouteAnalysis) dto.AnalysisResponse {
	res := dto.AnalysisResponse{
		TotalDistancePixels:  a.TotalDistance,
		TotalDurationSeconds: a.TotalTime,
		Segments:             make([]dto.SegmentResponse, 0, len(a.Segments)),
	}
	for _, s := range a.Segments {
		res.Segments = append(res.Segments, dto.SegmentResponse{
			Index:           s.Index,
			DistancePixels:  s.Distance,
			DurationSeconds: s.Time,
			Active:          s.Active,
		})
	}
	return res
}
