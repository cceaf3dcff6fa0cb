package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SYK3S999/tamweeli-sub001/internal/middleware"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/investment"
	"github.com/SYK3S999/tamweeli-sub001/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvestmentHandler struct {
	uc     *investment.Service
	logger *zap.Logger
}

func NewInvestmentHandler(uc *investment.Service, logger *zap.Logger) *InvestmentHandler {
	return &InvestmentHandler{uc: uc, logger: logger}
}

func (h *InvestmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in investment.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	inv, err := h.uc.Create(r.Context(), middleware.UserID(r.Context()), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, inv)
}

func (h *InvestmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.uc.Get(r.Context(), chi.URLParam(r, "investmentID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, inv)
}

func (h *InvestmentHandler) Accept(w http.ResponseWriter, r *http.Request) {
	inv, err := h.uc.Accept(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "investmentID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, inv)
}

func (h *InvestmentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	inv, err := h.uc.Reject(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "investmentID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, inv)
}

func (h *InvestmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ReturnAmount float64 `json:"return_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	inv, err := h.uc.Complete(r.Context(), chi.URLParam(r, "investmentID"), body.ReturnAmount)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, inv)
}

func (h *InvestmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	investments, err := h.uc.ListByInvestor(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, investments)
}

func (h *InvestmentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	investments, err := h.uc.ListByProject(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, investments)
}
