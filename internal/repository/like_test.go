package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestLikeRepository_Like(t *testing.T) {
	ctx := context.Background()

	t.Run("first like inserts a row", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := repo.Like(ctx, 1, 10)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat like is a no-op, not an error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectCommit()

		err := repo.Like(ctx, 1, 10)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLikeRepository_Unlike(t *testing.T) {
	ctx := context.Background()

	t.Run("existing like is removed", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE user_id = $1 AND post_id = $2`)).
			WithArgs(1, 10).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		removed, err := repo.Unlike(ctx, 1, 10)
		assert.NoError(t, err)
		assert.True(t, removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("never-liked post reports false", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE user_id = $1 AND post_id = $2`)).
			WithArgs(1, 11).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		removed, err := repo.Unlike(ctx, 1, 11)
		assert.NoError(t, err)
		assert.False(t, removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLikeRepository_Likers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "user_id" FROM "likes" WHERE post_id = $1`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1).AddRow(2).AddRow(3))

	ids, err := repo.Likers(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_HasLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE user_id = $1 AND post_id = $2`)).
		WithArgs(1, 10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	liked, err := repo.HasLiked(ctx, 1, 10)
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
