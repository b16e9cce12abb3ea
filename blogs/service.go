package blogs

import (
	"context"

	"go.uber.org/zap"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/auth"
)

// Service defines the blog operations exposed to the handlers. Mutations
// take the authenticated caller and enforce ownership after the target has
// been fetched and before any write is issued.
type Service interface {
	Create(ctx context.Context, req CreateRequest, identity auth.Identity) (*Blog, error)
	List(ctx context.Context) ([]Blog, error)
	Update(ctx context.Context, id int64, req UpdateRequest, identity auth.Identity) (*Blog, error)
	Delete(ctx context.Context, id int64, identity auth.Identity) error
}

type serviceImpl struct {
	repo Repository
	log  *zap.Logger
}

// NewService constructs the blog service.
func NewService(repo Repository, log *zap.Logger) Service {
	return &serviceImpl{repo: repo, log: log}
}

var _ Service = (*serviceImpl)(nil)

// Create validates the input, persists the entry with the caller as owner,
// and returns it with the owner expanded.
func (s *serviceImpl) Create(ctx context.Context, req CreateRequest, identity auth.Identity) (*Blog, error) {
	if req.Title == "" {
		return nil, apperror.NewValidationError("title is required", nil)
	}
	if req.URL == "" {
		return nil, apperror.NewValidationError("url is required", nil)
	}
	likes := 0
	if req.Likes != nil {
		if *req.Likes < 0 {
			return nil, apperror.NewValidationError("likes must not be negative", nil)
		}
		likes = *req.Likes
	}

	b := &Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		Owner:  UserRef{ID: identity.ID},
	}
	if err := s.repo.Insert(ctx, b); err != nil {
		s.log.Error("blog insert failed", zap.Int64("owner_id", identity.ID), zap.Error(err))
		return nil, err
	}

	// Re-read to expand the owner profile; the insert only knows the id.
	created, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		s.log.Error("created blog re-read failed", zap.Int64("blog_id", b.ID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// List returns all entries in insertion order.
func (s *serviceImpl) List(ctx context.Context) ([]Blog, error) {
	return s.repo.List(ctx)
}

// authorizeMutation confirms the caller owns the fetched entry. It runs
// after the existence check so a missing blog reports 404, and before any
// write so an unauthorized caller never observes a partial mutation.
func authorizeMutation(identity auth.Identity, b *Blog) error {
	if b.Owner.ID != identity.ID {
		return apperror.NewForbiddenError("operation not authorized", nil)
	}
	return nil
}

// Update fetches the entry, enforces ownership, applies the present patch
// fields, and persists. The write is conditional on the owner still matching.
func (s *serviceImpl) Update(ctx context.Context, id int64, req UpdateRequest, identity auth.Identity) (*Blog, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeMutation(identity, b); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperror.NewValidationError("title is required", nil)
		}
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.URL != nil {
		if *req.URL == "" {
			return nil, apperror.NewValidationError("url is required", nil)
		}
		b.URL = *req.URL
	}
	if req.Likes != nil {
		if *req.Likes < 0 {
			return nil, apperror.NewValidationError("likes must not be negative", nil)
		}
		b.Likes = *req.Likes
	}

	if err := s.repo.Update(ctx, b); err != nil {
		if !apperror.IsNotFound(err) {
			s.log.Error("blog update failed", zap.Int64("blog_id", id), zap.Error(err))
		}
		return nil, err
	}
	return b, nil
}

// Delete fetches the entry, enforces ownership, and removes it. The delete
// is conditional on the owner still matching.
func (s *serviceImpl) Delete(ctx context.Context, id int64, identity auth.Identity) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeMutation(identity, b); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, identity.ID); err != nil {
		if !apperror.IsNotFound(err) {
			s.log.Error("blog delete failed", zap.Int64("blog_id", id), zap.Error(err))
		}
		return err
	}
	return nil
}
