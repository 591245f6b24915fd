package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/likes
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		PostID uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.likeService.Like(c.Context(), userID, req.PostID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Post liked successfully"})
}

// UnlikePost handles DELETE /api/likes/:postId
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.likeService.Unlike(c.Context(), userID, postID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post unliked successfully"})
}

// GetPostLikes handles GET /api/likes/post/:postId
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	ids, err := s.likeService.Likers(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user_ids": ids,
		"count":    len(ids),
	})
}

// GetUserLikes handles GET /api/likes/user/:userId
func (s *Server) GetUserLikes(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	ids, err := s.likeService.LikedPosts(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post_ids": ids,
		"count":    len(ids),
	})
}

// CheckLike handles GET /api/likes/check/:postId
func (s *Server) CheckLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	liked, err := s.likeService.HasLiked(c.Context(), userID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"liked": liked})
}
