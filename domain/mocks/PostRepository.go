package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-social-graph/domain"
)

type PostRepository struct {
	mock.Mock
}

func (_m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Post), ret.Error(1)
}

func (_m *PostRepository) FetchByAuthors(ctx context.Context, authorIDs []int64, cursor string, num int64) ([]domain.Post, error) {
	ret := _m.Called(ctx, authorIDs, cursor, num)
	var posts []domain.Post
	if v := ret.Get(0); v != nil {
		posts = v.([]domain.Post)
	}
	return posts, ret.Error(1)
}

var _ domain.PostRepository = (*PostRepository)(nil)
