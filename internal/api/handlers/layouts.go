package handlers

import (
	"arena-route-planner/internal/api/dto"
	"arena-route-planner/internal/domain"
	"arena-route-planner/internal/layout"
	"arena-route-planner/internal/ports"
	"arena-route-planner/internal/services"
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// LayoutHandler imports, exports and stores layout documents.
type LayoutHandler struct {
	Session *services.Session
	Repo    ports.LayoutRepository
}

// Export writes the current model as a layout document.
func (h *LayoutHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := h.Session.Do(func(m *domain.RouteModel) error {
		return layout.Encode(&buf, m)
	})
	if err != nil {
		writeDomainError(w, r, "export layout", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// Import replaces the current model with the layout document in the body.
// A rejected document leaves the session untouched.
func (h *LayoutHandler) Import(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	m, err := layout.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, r, http.StatusRequestEntityTooLarge, "layout document too large")
		return
	}
	if err != nil {
		writeDomainError(w, r, "import layout", err)
		return
	}
	if err := h.Session.Replace(m); err != nil {
		writeDomainError(w, r, "import layout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LayoutHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Repo.ListLayouts(r.Context())
	if err != nil {
		writeDomainError(w, r, "list layouts", err)
		return
	}

	res := dto.ListLayoutsResponse{Layouts: make([]dto.LayoutRecordResponse, 0, len(recs))}
	for _, rec := range recs {
		res.Layouts = append(res.Layouts, toRecordResponse(rec))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *LayoutHandler) Save(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	rec, err := services.SaveLayout(r.Context(), h.Session, h.Repo, name)
	if err != nil {
		writeDomainError(w, r, "save layout", err)
		return
	}
	writeJSON(w, r, http.StatusOK, toRecordResponse(rec))
}

func (h *LayoutHandler) Load(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := services.LoadLayout(r.Context(), h.Session, h.Repo, name); err != nil {
		writeDomainError(w, r, "load layout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toRecordResponse(rec ports.LayoutRecord) dto.LayoutRecordResponse {
	return dto.LayoutRecordResponse{ID: rec.ID, Name: rec.Name, UpdatedAt: rec.UpdatedAt}
}
