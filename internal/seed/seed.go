package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Seed populates the database with demo data: users, a follow graph, posts
// (including a handful of scheduled ones), comments, and likes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	// Each user follows a few random others.
	for _, follower := range users {
		for i := 0; i < 3 && i < len(users)-1; i++ {
			target := users[f.rand.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			if err := f.CreateFollow(follower, target); err != nil {
				// Duplicate edges from the random picks are fine.
				continue
			}
		}
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rand.Intn(len(users))]
		var (
			post *models.Post
			err  error
		)
		if i%10 == 0 {
			post, err = f.CreateScheduledPost(author)
		} else {
			post, err = f.CreatePost(author)
		}
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d posts", len(posts))

	for _, post := range posts {
		for i := 0; i < f.rand.Intn(4); i++ {
			commenter := users[f.rand.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
		}
		for i := 0; i < f.rand.Intn(6); i++ {
			liker := users[f.rand.Intn(len(users))]
			if err := f.CreateLike(liker, post); err != nil {
				// Duplicate likes from the random picks are fine.
				continue
			}
		}
	}

	log.Println("Seeding complete")
	return nil
}
