package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]*models.Comment, error)
	updateFn     func(context.Context, uint, uint, string) (*models.Comment, error)
	softDeleteFn func(context.Context, uint, uint) (bool, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, id, authorID uint, content string) (*models.Comment, error) {
	return s.updateFn(ctx, id, authorID, content)
}
func (s *commentRepoStub) SoftDelete(ctx context.Context, id, authorID uint) (bool, error) {
	return s.softDeleteFn(ctx, id, authorID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		updateFn: func(_ context.Context, _, _ uint, _ string) (*models.Comment, error) {
			return &models.Comment{}, nil
		},
		softDeleteFn: func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
	}
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 1})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID:  1,
			PostID:  1,
			Content: strings.Repeat("x", 10001),
		})
		assertValidationError(t, err)
	})

	t.Run("missing post id", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, Content: "hi"})
		assertValidationError(t, err)
	})

	t.Run("store error propagates", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("insert failed")
		repo := noopCommentRepo()
		repo.createFn = func(_ context.Context, _ *models.Comment) error { return repoErr }
		svc2 := NewCommentService(repo)
		_, err := svc2.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 1, Content: "hi"})
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	t.Parallel()

	repo := noopCommentRepo()
	repo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 42
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Content: "hello", UserID: 1, PostID: 1}, nil
	}

	svc := NewCommentService(repo)
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  1,
		Content: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), comment.ID)
	assert.Equal(t, "hello", comment.Content)
}

func TestCommentService_UpdateComment(t *testing.T) {
	t.Parallel()

	t.Run("empty content is invalid", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo())
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1})
		assertValidationError(t, err)
	})

	t.Run("non-author reported as not found", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.updateFn = func(_ context.Context, _, _ uint, _ string) (*models.Comment, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewCommentService(repo)
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 2, CommentID: 1, Content: "new"})
		assertNotFoundError(t, err)
	})

	t.Run("author can update content", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.updateFn = func(_ context.Context, id, authorID uint, content string) (*models.Comment, error) {
			assert.Equal(t, uint(1), authorID)
			return &models.Comment{ID: id, UserID: authorID, Content: content}, nil
		}
		svc := NewCommentService(repo)
		comment, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1, Content: "updated"})
		require.NoError(t, err)
		assert.Equal(t, "updated", comment.Content)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()

	t.Run("author can delete", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo())
		err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 1, CommentID: 1})
		require.NoError(t, err)
	})

	t.Run("missing or foreign comment reported as not found", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.softDeleteFn = func(_ context.Context, _, _ uint) (bool, error) { return false, nil }
		svc := NewCommentService(repo)
		err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 1, CommentID: 1})
		assertNotFoundError(t, err)
	})
}
