// Package memory is an in-process implementation of the repository ports for
// tests. It enforces the same uniqueness rules as the MySQL schema and is only
// imported from _test.go files; the service itself always runs on MySQL.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/repository"
)

type followKey struct{ follower, followee int64 }

type likeKey struct{ user, post int64 }

// Store holds every table behind one mutex.
type Store struct {
	mu            sync.Mutex
	users         map[int64]domain.User
	posts         map[int64]domain.Post
	follows       map[followKey]domain.Follow
	likes         map[likeKey]domain.Like
	notifications []domain.Notification
	nextID        int64
}

func NewStore() *Store {
	return &Store{
		users:   make(map[int64]domain.User),
		posts:   make(map[int64]domain.Post),
		follows: make(map[followKey]domain.Follow),
		likes:   make(map[likeKey]domain.Like),
	}
}

// AddUser seeds an actor.
func (s *Store) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// AddPost seeds a post. Its author must have been added with AddUser.
func (s *Store) AddPost(p domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = p
}

func (s *Store) Users() domain.UserRepository                 { return userRepo{s} }
func (s *Store) Posts() domain.PostRepository                 { return postRepo{s} }
func (s *Store) Follows() domain.FollowRepository             { return followRepo{s} }
func (s *Store) Likes() domain.LikeRepository                 { return likeRepo{s} }
func (s *Store) Notifications() domain.NotificationRepository { return notificationRepo{s} }

// Snapshot returns a copy of every notification, in insertion order.
func (s *Store) Snapshot() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notifications)
}

type userRepo struct{ s *Store }

func (r userRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r userRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			res = append(res, u)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

type postRepo struct{ s *Store }

func (r postRepo) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return domain.Post{}, domain.ErrNotFound
	}
	return p, nil
}

func (r postRepo) FetchByAuthors(ctx context.Context, authorIDs []int64, cursor string, num int64) ([]domain.Post, error) {
	c, err := repository.DecodeCursor(cursor)
	if err != nil {
		return nil, domain.ErrBadParamInput
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res := make([]domain.Post, 0)
	for _, p := range r.s.posts {
		if slices.Contains(authorIDs, p.User.ID) && before(p.CreatedAt, p.ID, c) {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool { return newer(res[i].CreatedAt, res[i].ID, res[j].CreatedAt, res[j].ID) })
	return limit(res, num), nil
}

type followRepo struct{ s *Store }

func (r followRepo) Store(ctx context.Context, f *domain.Follow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[f.FolloweeID]; !ok {
		return domain.ErrNotFound
	}
	k := followKey{f.FollowerID, f.FolloweeID}
	if _, ok := r.s.follows[k]; ok {
		return domain.ErrAlreadyExists
	}
	r.s.follows[k] = *f
	return nil
}

func (r followRepo) Delete(ctx context.Context, followerID, followeeID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := followKey{followerID, followeeID}
	if _, ok := r.s.follows[k]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.follows, k)
	return nil
}

func (r followRepo) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.follows[followKey{followerID, followeeID}]
	return ok, nil
}

func (r followRepo) FetchFollowingIDs(ctx context.Context, uid int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make([]int64, 0)
	for k := range r.s.follows {
		if k.follower == uid {
			ids = append(ids, k.followee)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r followRepo) FetchFollowerIDs(ctx context.Context, uid int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make([]int64, 0)
	for k := range r.s.follows {
		if k.followee == uid {
			ids = append(ids, k.follower)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

type likeRepo struct{ s *Store }

func (r likeRepo) StoreWithNotification(ctx context.Context, l *domain.Like, n *domain.Notification) error {
	if err := n.Target.Validate(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[l.PostID]; !ok {
		return domain.ErrNotFound
	}
	k := likeKey{l.UserID, l.PostID}
	if _, ok := r.s.likes[k]; ok {
		return domain.ErrAlreadyExists
	}
	r.s.likes[k] = *l
	r.s.nextID++
	n.ID = r.s.nextID
	r.s.notifications = append(r.s.notifications, *n)
	return nil
}

func (r likeRepo) Delete(ctx context.Context, userID, postID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := likeKey{userID, postID}
	if _, ok := r.s.likes[k]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.likes, k)
	return nil
}

func (r likeRepo) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.likes[likeKey{userID, postID}]
	return ok, nil
}

func (r likeRepo) Count(ctx context.Context, postID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for k := range r.s.likes {
		if k.post == postID {
			n++
		}
	}
	return n, nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) FetchUnread(ctx context.Context, recipientID int64, cursor string, num int64) ([]domain.Notification, error) {
	c, err := repository.DecodeCursor(cursor)
	if err != nil {
		return nil, domain.ErrBadParamInput
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res := make([]domain.Notification, 0)
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID && !n.Read && before(n.CreatedAt, n.ID, c) {
			res = append(res, n)
		}
	}
	sort.Slice(res, func(i, j int) bool { return newer(res[i].CreatedAt, res[i].ID, res[j].CreatedAt, res[j].ID) })
	return limit(res, num), nil
}

func (r notificationRepo) MarkRead(ctx context.Context, recipientID, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.notifications {
		n := &r.s.notifications[i]
		if n.ID == id && n.RecipientID == recipientID {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r notificationRepo) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var cnt int64
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID && !n.Read {
			cnt++
		}
	}
	return cnt, nil
}

func newer(t1 time.Time, id1 int64, t2 time.Time, id2 int64) bool {
	if t1.Equal(t2) {
		return id1 > id2
	}
	return t1.After(t2)
}

// before reports whether (t, id) sorts after the cursor in newest-first order.
func before(t time.Time, id int64, c repository.Cursor) bool {
	if c.IsZero() {
		return true
	}
	return newer(c.CreatedAt, c.ID, t, id)
}

func limit[T any](s []T, num int64) []T {
	if num > 0 && int64(len(s)) > num {
		return s[:num]
	}
	return s
}
