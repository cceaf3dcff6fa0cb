package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/middleware"
	"github.com/SYK3S999/tamweeli-sub001/internal/repository"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/auth"
	"github.com/SYK3S999/tamweeli-sub001/pkg/response"

	"go.uber.org/zap"
)

type AuthHandler struct {
	uc     *auth.Service
	logger *zap.Logger
}

func NewAuthHandler(uc *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in auth.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	u, err := h.uc.Register(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	res, err := h.uc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, res)
}

func (h *AuthHandler) DemoLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserType domain.UserType `json:"user_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	res, err := h.uc.DemoLogin(r.Context(), body.UserType)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, res)
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Verify(r.Context(), middleware.UserID(r.Context())); err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "account verified"})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Logout(r.Context(), middleware.SessionID(r.Context())); err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.uc.Me(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, u)
}

func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var upd repository.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	u, err := h.uc.UpdateProfile(r.Context(), middleware.UserID(r.Context()), upd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, u)
}

func (h *AuthHandler) ListConsultants(w http.ResponseWriter, r *http.Request) {
	users, err := h.uc.ListConsultants(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, users)
}
