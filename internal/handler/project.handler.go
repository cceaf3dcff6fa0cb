package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/middleware"
	"github.com/SYK3S999/tamweeli-sub001/internal/repository"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/project"
	"github.com/SYK3S999/tamweeli-sub001/internal/view"
	"github.com/SYK3S999/tamweeli-sub001/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	uc     *project.Service
	logger *zap.Logger
}

func NewProjectHandler(uc *project.Service, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{uc: uc, logger: logger}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in project.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	p, err := h.uc.Create(r.Context(), middleware.UserID(r.Context()), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, p)
}

type projectDetail struct {
	*domain.Project
	IsSaved bool `json:"is_saved"`
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := h.uc.Get(ctx, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	saved, err := h.uc.IsSaved(ctx, middleware.UserID(ctx), p.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, projectDetail{Project: p, IsSaved: saved})
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd repository.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	p, err := h.uc.Update(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "projectID"), upd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.uc.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}

func (h *ProjectHandler) Submit(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.Submit(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, true)
}

func (h *ProjectHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, false)
}

func (h *ProjectHandler) review(w http.ResponseWriter, r *http.Request, approve bool) {
	var body struct {
		Note string `json:"note"`
	}
	// Body is optional for reviews.
	_ = json.NewDecoder(r.Body).Decode(&body)

	p, err := h.uc.Review(r.Context(), chi.URLParam(r, "projectID"), approve, body.Note)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) Browse(w http.ResponseWriter, r *http.Request) {
	page, err := h.uc.Browse(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *ProjectHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	page, err := h.uc.ListAll(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *ProjectHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	projects, err := h.uc.ListByOwner(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Save(w http.ResponseWriter, r *http.Request) {
	err := h.uc.Save(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "project saved"})
}

func (h *ProjectHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	err := h.uc.Unsave(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "project unsaved"})
}

func (h *ProjectHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	projects, err := h.uc.ListSaved(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, projects)
}

func filterFromQuery(r *http.Request) view.ProjectFilter {
	q := r.URL.Query()
	minGoal, _ := strconv.ParseFloat(q.Get("min_goal"), 64)
	maxGoal, _ := strconv.ParseFloat(q.Get("max_goal"), 64)
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	return view.ProjectFilter{
		Query:        q.Get("q"),
		Sector:       domain.Sector(q.Get("sector")),
		ContractType: domain.ContractType(q.Get("contract_type")),
		Status:       domain.ProjectStatus(q.Get("status")),
		MinGoal:      minGoal,
		MaxGoal:      maxGoal,
		Sort:         view.SortKey(q.Get("sort")),
		PageNumber:   page,
		PageSize:     pageSize,
	}
}
