package response

import (
	"github.com/Guyuepp/go-social-graph/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func NewUserFromDomain(u *domain.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
	}
}

func NewUsersFromDomain(list []domain.User) []User {
	res := make([]User, len(list))
	for i := range list {
		res[i] = NewUserFromDomain(&list[i])
	}
	return res
}

type RelationStatus struct {
	Following  bool `json:"following"`
	FollowedBy bool `json:"followed_by"`
}

func NewRelationStatusFromDomain(s domain.RelationStatus) RelationStatus {
	return RelationStatus{
		Following:  s.IsFollowing,
		FollowedBy: s.IsFollowedBy,
	}
}

type LikeStatus struct {
	PostID    int64 `json:"post_id"`
	LikeCount int64 `json:"like_count"`
	IsLiked   bool  `json:"is_liked"`
}

func NewLikeStatusFromDomain(s domain.LikeStatus) LikeStatus {
	return LikeStatus{
		PostID:    s.PostID,
		LikeCount: s.LikeCount,
		IsLiked:   s.IsLiked,
	}
}

// Notification is one entry of the unread list
type Notification struct {
	ID        int64  `json:"id"`
	Verb      string `json:"verb"`
	CreatedAt string `json:"created_at"`
}

func NewNotificationFromDomain(n *domain.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Verb:      n.Verb,
		CreatedAt: n.CreatedAt.Format(DateTimeFormat),
	}
}

type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    User   `json:"author"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    NewUserFromDomain(&p.User),
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: p.UpdatedAt.Format(DateTimeFormat),
	}
}
