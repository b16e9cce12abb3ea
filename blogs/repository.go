package blogs

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/db"
)

// Repository persists blog entries. Reads expand the owner foreign key into
// a minimal profile; the conditional writes require the owner to match so a
// concurrent deletion between fetch and write cannot mutate someone else's
// row.
type Repository interface {
	// Insert persists a new entry (owner taken from b.Owner.ID) and fills in
	// the assigned ID.
	Insert(ctx context.Context, b *Blog) error
	// List returns all entries with owners expanded, in insertion order.
	List(ctx context.Context) ([]Blog, error)
	// GetByID returns the entry with the given id, or a NotFoundError.
	GetByID(ctx context.Context, id int64) (*Blog, error)
	// Update writes b's fields to the row matching both its id and owner.
	// A NotFoundError means the row no longer exists for that owner.
	Update(ctx context.Context, b *Blog) error
	// Delete removes the row matching both id and owner, or returns a
	// NotFoundError.
	Delete(ctx context.Context, id, ownerID int64) error
}

// PostgresRepository implements Repository over pgx.
type PostgresRepository struct {
	db *db.DB
}

// NewPostgresRepository constructs a blog repository.
func NewPostgresRepository(database *db.DB) *PostgresRepository {
	return &PostgresRepository{db: database}
}

var _ Repository = (*PostgresRepository)(nil)

// Insert persists a new blog row.
func (r *PostgresRepository) Insert(ctx context.Context, b *Blog) error {
	const q = `
INSERT INTO blogs (title, author, url, likes, owner_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING blog_id`
	err := r.db.Pool.QueryRow(ctx, q, b.Title, b.Author, b.URL, b.Likes, b.Owner.ID).Scan(&b.ID)
	if err != nil {
		return apperror.NewDatabaseError("failed to create blog", err)
	}
	return nil
}

// List returns every blog with its owner expanded. Insertion order follows
// the serial key; no other ordering is promised.
func (r *PostgresRepository) List(ctx context.Context) ([]Blog, error) {
	const q = `
SELECT b.blog_id, b.title, b.author, b.url, b.likes,
       u.user_id, u.username, u.name
FROM blogs b
JOIN users u ON b.owner_id = u.user_id
ORDER BY b.blog_id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list blogs", err)
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		var b Blog
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes,
			&b.Owner.ID, &b.Owner.Username, &b.Owner.Name,
		); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan blog row", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to iterate blog rows", err)
	}
	return blogs, nil
}

// GetByID returns a single blog with its owner expanded.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Blog, error) {
	const q = `
SELECT b.blog_id, b.title, b.author, b.url, b.likes,
       u.user_id, u.username, u.name
FROM blogs b
JOIN users u ON b.owner_id = u.user_id
WHERE b.blog_id = $1`
	var b Blog
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes,
		&b.Owner.ID, &b.Owner.Username, &b.Owner.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("blog not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get blog", err)
	}
	return &b, nil
}

// Update writes the entry conditionally on id and owner both matching.
func (r *PostgresRepository) Update(ctx context.Context, b *Blog) error {
	const q = `
UPDATE blogs SET title = $3, author = $4, url = $5, likes = $6
WHERE blog_id = $1 AND owner_id = $2`
	tag, err := r.db.Pool.Exec(ctx, q, b.ID, b.Owner.ID, b.Title, b.Author, b.URL, b.Likes)
	if err != nil {
		return apperror.NewDatabaseError("failed to update blog", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("blog not found", nil)
	}
	return nil
}

// Delete removes the entry conditionally on id and owner both matching.
func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	const q = `DELETE FROM blogs WHERE blog_id = $1 AND owner_id = $2`
	tag, err := r.db.Pool.Exec(ctx, q, id, ownerID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete blog", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("blog not found", nil)
	}
	return nil
}
