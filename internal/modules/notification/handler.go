package notification

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"utilibook/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes mounts the feed on the public group. Every endpoint is keyed
// by the client_number query parameter.
func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	g := public.Group("/notifications")
	{
		g.GET("", h.GetNotifications)
		g.GET("/ws", h.Subscribe)
		g.PATCH("/:id/read", h.MarkAsRead)
		g.PATCH("/read-all", h.MarkAllAsRead)
	}
}

func (h *Handler) clientNumber(c *gin.Context) (string, bool) {
	number := c.Query("client_number")
	if number == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "client_number is required")
		return "", false
	}
	return number, true
}

func (h *Handler) GetNotifications(c *gin.Context) {
	number, ok := h.clientNumber(c)
	if !ok {
		return
	}

	limit := 20
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
			if limit > 100 {
				limit = 100
			}
		}
	}

	list, unread, err := h.service.GetClientNotifications(c.Request.Context(), number, limit)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	number, ok := h.clientNumber(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, number); err != nil {
		switch {
		case errors.Is(err, ErrClientNotFound):
			response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		}
		return
	}

	response.Status(c, http.StatusOK, "read")
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	number, ok := h.clientNumber(c)
	if !ok {
		return
	}

	if err := h.service.MarkAllAsRead(c.Request.Context(), number); err != nil {
		if errors.Is(err, ErrClientNotFound) {
			response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		return
	}

	response.Status(c, http.StatusOK, "all_read")
}

// Subscribe upgrades to a websocket and streams new notifications until the
// client disconnects.
func (h *Handler) Subscribe(c *gin.Context) {
	number, ok := h.clientNumber(c)
	if !ok {
		return
	}

	client, err := h.service.resolveClient(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to resolve client")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(client.ID, conn)
	go h.readLoop(c.Request.Context(), client.ID, conn)
}

// readLoop drains incoming frames so pings are answered; the hub owns writes.
func (h *Handler) readLoop(_ context.Context, clientID int64, conn *websocket.Conn) {
	defer h.hub.Unregister(clientID)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
