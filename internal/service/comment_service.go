package service

import (
	"context"
	"errors"

	"ripple/internal/models"
	"ripple/internal/repository"

	"gorm.io/gorm"
)

// CommentService owns comment lifecycle. Comments are validated against their
// own content only; the target post is not checked for existence or for its
// comments_enabled flag, matching the store's referential-integrity contract.
type CommentService struct {
	commentRepo repository.CommentRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}
	if in.PostID == 0 {
		return nil, models.NewValidationError("post_id is required")
	}

	comment := &models.Comment{
		Content: in.Content,
		PostID:  in.PostID,
		UserID:  in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.GetComment(ctx, comment.ID)
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Comment")
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListPostComments pages through a post's comments newest first. An unknown
// post id yields an empty page, indistinguishable from a post with no comments.
func (s *CommentService) ListPostComments(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}

	comment, err := s.commentRepo.Update(ctx, in.CommentID, in.UserID, in.Content)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Comment")
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	deleted, err := s.commentRepo.SoftDelete(ctx, in.CommentID, in.UserID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Comment")
	}
	return nil
}
