package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/rest/request"
	"github.com/Guyuepp/go-social-graph/internal/rest/response"
)

// LikeHandler represent the httphandler for post likes
type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// Like adds a like and answers with the id of the notification sent to the author
func (h *LikeHandler) Like(c *gin.Context) {
	var req request.ID
	if err := c.ShouldBindUri(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	nid, err := h.Service.Like(c.Request.Context(), uid, req.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"notification": nid})
}

// Unlike removes the like of the current user
func (h *LikeHandler) Unlike(c *gin.Context) {
	var req request.ID
	if err := c.ShouldBindUri(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.Service.Unlike(c.Request.Context(), uid, req.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: "unliked"})
}

func (h *LikeHandler) Status(c *gin.Context) {
	var req request.ID
	if err := c.ShouldBindUri(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	st, err := h.Service.Status(c.Request.Context(), uid, req.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewLikeStatusFromDomain(st))
}
