package handler

import (
	"net/http"

	"github.com/SYK3S999/tamweeli-sub001/internal/middleware"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/notification"
	"github.com/SYK3S999/tamweeli-sub001/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type NotificationHandler struct {
	uc     *notification.Service
	logger *zap.Logger
}

func NewNotificationHandler(uc *notification.Service, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.uc.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	err := h.uc.MarkRead(r.Context(), chi.URLParam(r, "notificationID"),
		middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "notification read"})
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.MarkAllRead(r.Context(), middleware.UserID(r.Context())); err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "all notifications read"})
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.uc.UnreadCount(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]int{"unread": count})
}

// Stream upgrades to a websocket and keeps the connection registered with
// the hub until the client goes away. The read loop only exists to detect
// disconnects; the server never expects client messages.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "WebSocket upgrade failed")
		return
	}

	h.uc.Hub().Register(userID, conn)
	defer h.uc.Hub().Unregister(userID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.logger.Debug("notification stream closed",
				zap.String("user_id", userID), zap.Error(err))
			return
		}
	}
}
