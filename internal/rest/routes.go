package rest

import "github.com/gin-gonic/gin"

// Handlers groups every handler served behind the auth middleware.
type Handlers struct {
	Follow       *FollowHandler
	Like         *LikeHandler
	Notification *NotificationHandler
	Feed         *FeedHandler
}

// Register mounts the authenticated routes on r.
func (h Handlers) Register(r gin.IRouter) {
	r.POST("/users/:id/follow", h.Follow.Follow)
	r.DELETE("/users/:id/follow", h.Follow.Unfollow)
	r.GET("/users/:id/follow", h.Follow.Status)
	r.GET("/users/:id/following", h.Follow.ListFollowing)
	r.GET("/users/:id/followers", h.Follow.ListFollowers)

	r.POST("/posts/:id/like", h.Like.Like)
	r.DELETE("/posts/:id/like", h.Like.Unlike)
	r.GET("/posts/:id/like", h.Like.Status)

	r.GET("/notifications", h.Notification.ListUnread)
	r.GET("/notifications/unread/count", h.Notification.CountUnread)
	r.POST("/notifications/:id/read", h.Notification.MarkRead)

	r.GET("/feed", h.Feed.Fetch)
}
