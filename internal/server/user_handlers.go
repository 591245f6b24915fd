package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		FollowingID uint `json:"following_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.followService.Follow(c.Context(), userID, req.FollowingID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User followed successfully"})
}

// UnfollowUser handles DELETE /api/users/unfollow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		FollowingID uint `json:"following_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.followService.Unfollow(c.Context(), userID, req.FollowingID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User unfollowed successfully"})
}

// GetFollowing handles GET /api/users/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	ids, err := s.followService.Following(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": ids})
}

// GetFollowers handles GET /api/users/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	ids, err := s.followService.Followers(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"followers": ids})
}

// GetUserStats handles GET /api/users/stats
func (s *Server) GetUserStats(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	counts, err := s.followService.Counts(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"followers_count": counts.Followers,
		"following_count": counts.Following,
	})
}

// SearchUsers handles POST /api/users/search. No auth: people search is
// reachable before signup.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	page := parsePagination(c, 20)

	users, err := s.userService.SearchUsers(c.Context(), req.Name, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users":      users,
		"pagination": page.Meta(len(users)),
	})
}

// GetProfile handles GET /api/users/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.userService.Profile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}
