package handlers

import (
	"net/http"
	"path"
	"strconv"

	"service-cursos/internal/domain"
	"service-cursos/internal/logx"
	"service-cursos/internal/pagination"
)

// CursoHandler handles HTTP requests for the cursos collection.
type CursoHandler struct {
	logger logx.Logger
	uc     cursoUsecase
	paging pagination.Config
}

// NewCursoHandler creates a new CursoHandler.
func NewCursoHandler(logger logx.Logger, uc cursoUsecase, paging pagination.Config) *CursoHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CursoHandler{logger: logger, uc: uc, paging: paging}
}

// Create handles POST /cursos.
func (h *CursoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.Curso
	if !decodeJSON(h.logger, w, r, &in) {
		return
	}

	created, err := h.uc.Create(r.Context(), &in)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	w.Header().Set("Location", path.Join(r.URL.Path, strconv.FormatInt(created.ID, 10)))
	writeJSON(h.logger, w, r, http.StatusCreated, created)
}

// GetByID handles GET /cursos/{id}.
func (h *CursoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	c, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, c)
}

// Update handles PUT /cursos/{id}.
func (h *CursoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	var in domain.Curso
	if !decodeJSON(h.logger, w, r, &in) {
		return
	}

	if err := h.uc.Update(r.Context(), id, &in); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /cursos/{id}.
func (h *CursoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /cursos?pagina=&tamanhoPagina=.
func (h *CursoHandler) List(w http.ResponseWriter, r *http.Request) {
	req, err := h.paging.Parse(r.URL.Query())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	page, err := h.uc.List(r.Context(), req)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	items := page.Items
	if items == nil {
		items = []domain.Curso{}
	}

	setPaginationHeaders(w, r, page)
	writeJSON(h.logger, w, r, http.StatusOK, items)
}
