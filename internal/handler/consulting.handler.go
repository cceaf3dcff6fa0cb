package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SYK3S999/tamweeli-sub001/internal/middleware"
	"github.com/SYK3S999/tamweeli-sub001/internal/repository"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/consulting"
	"github.com/SYK3S999/tamweeli-sub001/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ConsultingHandler struct {
	uc     *consulting.Service
	logger *zap.Logger
}

func NewConsultingHandler(uc *consulting.Service, logger *zap.Logger) *ConsultingHandler {
	return &ConsultingHandler{uc: uc, logger: logger}
}

func (h *ConsultingHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var in consulting.ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	svc, err := h.uc.CreateService(r.Context(), middleware.UserID(r.Context()), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, svc)
}

func (h *ConsultingHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var upd repository.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	svc, err := h.uc.UpdateService(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "serviceID"), upd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, svc)
}

func (h *ConsultingHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	err := h.uc.DeleteService(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "serviceID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "service deleted"})
}

func (h *ConsultingHandler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.uc.GetService(r.Context(), chi.URLParam(r, "serviceID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, svc)
}

func (h *ConsultingHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.uc.ListServices(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, services)
}

func (h *ConsultingHandler) ListMyServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.uc.ListByConsultant(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, services)
}

func (h *ConsultingHandler) RequestService(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ServiceID string `json:"service_id"`
		Details   string `json:"details"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req, err := h.uc.RequestService(r.Context(), middleware.UserID(r.Context()),
		body.ServiceID, body.Details)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, req)
}

func (h *ConsultingHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.uc.AcceptRequest(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "requestID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, req)
}

func (h *ConsultingHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.uc.RejectRequest(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "requestID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, req)
}

func (h *ConsultingHandler) CompleteRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.uc.CompleteRequest(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "requestID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, req)
}

func (h *ConsultingHandler) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.uc.ListRequestsByClient(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, requests)
}

func (h *ConsultingHandler) ListIncomingRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.uc.ListRequestsByConsultant(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, requests)
}
