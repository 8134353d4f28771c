package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/repository"
	"github.com/Guyuepp/go-social-graph/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var post model.Post
	if err := m.DB.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return domain.Post{}, translate(err)
	}
	return post.ToDomain(), nil
}

func (m *postRepository) FetchByAuthors(ctx context.Context, authorIDs []int64, cursor string, num int64) ([]domain.Post, error) {
	if len(authorIDs) == 0 {
		return []domain.Post{}, nil
	}
	decoded, err := repository.DecodeCursor(cursor)
	if err != nil {
		return nil, domain.ErrBadParamInput
	}
	repository.PageVerify(&num)

	query := m.DB.WithContext(ctx).
		Select("id, title, content, user_id, created_at, updated_at").
		Where("user_id IN ?", authorIDs)
	if !decoded.IsZero() {
		query = query.Where("(created_at < ? OR (created_at = ? AND id < ?))",
			decoded.CreatedAt, decoded.CreatedAt, decoded.ID)
	}

	var posts []model.Post
	err = query.Order("created_at DESC, id DESC").Limit(int(num)).Find(&posts).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}
