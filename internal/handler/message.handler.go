package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SYK3S999/tamweeli-sub001/internal/middleware"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/messaging"
	"github.com/SYK3S999/tamweeli-sub001/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MessageHandler struct {
	uc     *messaging.Service
	logger *zap.Logger
}

func NewMessageHandler(uc *messaging.Service, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, logger: logger}
}

func (h *MessageHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PeerID string `json:"peer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	c, err := h.uc.FindOrCreateConversation(r.Context(), middleware.UserID(r.Context()), body.PeerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

func (h *MessageHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.uc.ListConversations(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, conversations)
}

func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.uc.ListMessages(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "conversationID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	m, err := h.uc.Send(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "conversationID"), body.Content)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, m)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	err := h.uc.MarkRead(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "conversationID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "conversation read"})
}
