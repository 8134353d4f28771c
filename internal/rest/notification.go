package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/rest/request"
	"github.com/Guyuepp/go-social-graph/internal/rest/response"
)

// NotificationHandler represent the httphandler for the activity log
type NotificationHandler struct {
	Service domain.NotificationUsecase
}

func NewNotificationHandler(svc domain.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		Service: svc,
	}
}

// ListUnread returns one page of unread notifications, the next cursor goes to X-Cursor
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	var page request.Page
	if err := c.ShouldBindQuery(&page); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	list, next, err := h.Service.ListUnread(c.Request.Context(), uid, page.Cursor, page.Num)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res := make([]response.Notification, len(list))
	for i := range list {
		res[i] = response.NewNotificationFromDomain(&list[i])
	}
	c.Header("X-Cursor", next)
	c.JSON(http.StatusOK, res)
}

func (h *NotificationHandler) CountUnread(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}

	n, err := h.Service.CountUnread(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": n})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req request.ID
	if err := c.ShouldBindUri(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.Service.MarkRead(c.Request.Context(), uid, req.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: "read"})
}
