package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/rest/request"
	"github.com/Guyuepp/go-social-graph/internal/rest/response"
)

// FollowHandler represent the httphandler for follow edges
type FollowHandler struct {
	Service domain.FollowUsecase
}

func NewFollowHandler(svc domain.FollowUsecase) *FollowHandler {
	return &FollowHandler{
		Service: svc,
	}
}

// Follow makes the current user follow :id
func (h *FollowHandler) Follow(c *gin.Context) {
	var req request.ID
	if err := c.ShouldBindUri(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.Service.Follow(c.Request.Context(), uid, req.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, Message{Message: "followed"})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	var req request.ID
	if err := c.ShouldBindUri(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.Service.Unfollow(c.Request.Context(), uid, req.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: "unfollowed"})
}

// Status reports the follow edges between the current user and :id
func (h *FollowHandler) Status(c *gin.Context) {
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
	c.JSON(http.StatusOK, response.NewRelationStatusFromDomain(st))
}

func (h *FollowHandler) ListFollowing(c *gin.Context) {
	var req request.ID
	if err := c.ShouldBindUri(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}

	users, err := h.Service.ListFollowing(c.Request.Context(), req.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUsersFromDomain(users))
}

func (h *FollowHandler) ListFollowers(c *gin.Context) {
	var req request.ID
	if err := c.ShouldBindUri(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}

	users, err := h.Service.ListFollowers(c.Request.Context(), req.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUsersFromDomain(users))
}
