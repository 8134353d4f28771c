package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-social-graph/domain"
)

var postColumns = []string{"id", "title", "content", "user_id", "created_at", "updated_at"}

func TestPostGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(10, "hello", "world", 2, now, now))

	p, err := NewPostRepository(db).GetByID(context.TODO(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.User.ID)
	assert.Equal(t, "hello", p.Title)
}

func TestPostGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `posts`").WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := NewPostRepository(db).GetByID(context.TODO(), 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostFetchByAuthors(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery("SELECT id, title, content, user_id, created_at, updated_at FROM `posts` WHERE user_id IN \\(\\?,\\?\\) ORDER BY created_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(12, "b", "", 3, now, now).
			AddRow(11, "a", "", 2, now.Add(-time.Hour), now))

	res, err := NewPostRepository(db).FetchByAuthors(context.TODO(), []int64{2, 3}, "", 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(12), res[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostFetchByAuthorsEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	res, err := NewPostRepository(db).FetchByAuthors(context.TODO(), nil, "", 10)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}
