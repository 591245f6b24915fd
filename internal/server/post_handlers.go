package server

import (
	"time"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Content         string     `json:"content"`
	MediaURL        string     `json:"media_url"`
	CommentsEnabled *bool      `json:"comments_enabled"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
}

func (r createPostRequest) toInput(userID uint) service.CreatePostInput {
	commentsEnabled := true
	if r.CommentsEnabled != nil {
		commentsEnabled = *r.CommentsEnabled
	}
	return service.CreatePostInput{
		UserID:          userID,
		Content:         r.Content,
		MediaURL:        r.MediaURL,
		CommentsEnabled: commentsEnabled,
		ScheduledAt:     r.ScheduledAt,
	}
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), req.toInput(userID))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// SchedulePost handles POST /api/posts/schedule. Identical to CreatePost
// except that scheduled_at is mandatory.
func (s *Server) SchedulePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ScheduledAt == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("scheduled_at is required"))
	}

	post, err := s.postService.CreatePost(c.Context(), req.toInput(userID))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetMyPosts handles GET /api/posts/my
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	posts, err := s.postService.ListUserPosts(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":      posts,
		"pagination": page.Meta(len(posts)),
	})
}

// GetFeed handles GET /api/posts/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	posts, err := s.postService.Feed(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":      posts,
		"pagination": page.Meta(len(posts)),
	})
}

// SearchPosts handles GET /api/posts/search?q=...
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	q := c.Query("q")
	page := parsePagination(c, 20)

	posts, err := s.postService.SearchPosts(c.Context(), q, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":      posts,
		"pagination": page.Meta(len(posts)),
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// GetUserPosts handles GET /api/posts/user/:id
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userIDParam, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	posts, err := s.postService.ListUserPosts(c.Context(), userIDParam, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":      posts,
		"pagination": page.Meta(len(posts)),
	})
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch models.PostPatch
	if parseErr := c.BodyParser(&patch); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID: userID,
		PostID: postID,
		Patch:  patch,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
