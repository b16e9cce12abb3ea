// Package users provides the read model for registered accounts: the public
// listing of users together with the blog entries each one owns. Accounts
// are created through the auth package and never updated or deleted here.
package users

import (
	"context"
	"database/sql"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/db"
)

// Service reads user profiles.
type Service struct {
	db *db.DB
}

// NewService creates the user read service.
func NewService(database *db.DB) *Service {
	return &Service{db: database}
}

// ListUsers returns every user with their blogs, in registration order. The
// LEFT JOIN keeps users that own no blogs; their blog columns come back NULL
// and the summary list stays empty.
func (s *Service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	const q = `
SELECT u.user_id, u.username, u.name,
       b.blog_id, b.title, b.url, b.likes
FROM users u
LEFT JOIN blogs b ON b.owner_id = u.user_id
ORDER BY u.user_id, b.blog_id`
	rows, err := s.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	summaries := []UserSummary{}
	index := map[int64]int{}
	for rows.Next() {
		var (
			userID   int64
			username string
			name     string
			blogID   sql.NullInt64
			title    sql.NullString
			url      sql.NullString
			likes    sql.NullInt32
		)
		if err := rows.Scan(&userID, &username, &name, &blogID, &title, &url, &likes); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user row", err)
		}

		i, seen := index[userID]
		if !seen {
			summaries = append(summaries, UserSummary{
				ID:       userID,
				Username: username,
				Name:     name,
				Blogs:    []BlogSummary{},
			})
			i = len(summaries) - 1
			index[userID] = i
		}
		if blogID.Valid {
			summaries[i].Blogs = append(summaries[i].Blogs, BlogSummary{
				ID:    blogID.Int64,
				Title: title.String,
				URL:   url.String,
				Likes: int(likes.Int32),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to iterate user rows", err)
	}
	return summaries, nil
}
