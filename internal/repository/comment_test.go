package repository

import (
	"context"
	"regexp"
	"testing"

	"ripple/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	comment := &models.Comment{Content: "nice", PostID: 10, UserID: 1}
	err := repo.Create(ctx, comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByPost_PaginatesInStore(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE post_id = $1 AND "comments"."deleted_at" IS NULL ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs(10, 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "post_id", "user_id"}).
			AddRow(21, "second page", 10, 2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "bob"))

	comments, err := repo.ListByPost(ctx, 10, 10, 10)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("zero rows affected reported as not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		_, err := repo.Update(ctx, 21, 99, "hijack")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("author update refetches the comment", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE "comments"."id" = $1 AND "comments"."deleted_at" IS NULL ORDER BY "comments"."id" LIMIT $2`)).
			WithArgs(21, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "content", "post_id", "user_id"}).
				AddRow(21, "edited", 10, 2))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "bob"))

		comment, err := repo.Update(ctx, 21, 2, "edited")
		assert.NoError(t, err)
		assert.Equal(t, "edited", comment.Content)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("author delete flips one row", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"=$1 WHERE (id = $2 AND user_id = $3) AND "comments"."deleted_at" IS NULL`)).
			WithArgs(sqlmock.AnyArg(), 21, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		deleted, err := repo.SoftDelete(ctx, 21, 2)
		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign comment flips nothing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"=$1 WHERE (id = $2 AND user_id = $3) AND "comments"."deleted_at" IS NULL`)).
			WithArgs(sqlmock.AnyArg(), 21, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		deleted, err := repo.SoftDelete(ctx, 21, 99)
		assert.NoError(t, err)
		assert.False(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
