package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/rest/request"
	"github.com/Guyuepp/go-social-graph/internal/rest/response"
)

// FeedHandler represent the httphandler for the home feed
type FeedHandler struct {
	Service domain.FeedUsecase
}

func NewFeedHandler(svc domain.FeedUsecase) *FeedHandler {
	return &FeedHandler{
		Service: svc,
	}
}

// Fetch will fetch one page of the feed of the current user
func (h *FeedHandler) Fetch(c *gin.Context) {
	var page request.Page
	if err := c.ShouldBindQuery(&page); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}

	posts, next, err := h.Service.Fetch(c.Request.Context(), uid, page.Cursor, page.Num)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res := make([]response.Post, len(posts))
	for i := range posts {
		res[i] = response.NewPostFromDomain(&posts[i])
	}
	c.Header("X-Cursor", next)
	c.JSON(http.StatusOK, res)
}
