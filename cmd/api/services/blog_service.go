package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-nest/cmd/api/auth"
	"blog-nest/models"
	"blog-nest/repositories"
)

// BlogService maps the blog endpoints onto single store calls.
type BlogService struct {
	repo BlogStore
}

func NewBlogService(repo BlogStore) *BlogService {
	return &BlogService{repo: repo}
}

type ListBlogsInput struct {
	Search   string
	Category string
}

func (s *BlogService) List(ctx context.Context, in ListBlogsInput) ([]models.Blog, error) {
	return s.repo.List(ctx, repositories.ListBlogsOptions{
		Search:   strings.TrimSpace(in.Search),
		Category: strings.TrimSpace(in.Category),
	})
}

// Create stores b. A blog posted without an owner email belongs to the caller.
func (s *BlogService) Create(ctx context.Context, b models.Blog, caller auth.Identity) (string, error) {
	b.ID = primitive.NilObjectID
	if b.Email == "" {
		b.Email = caller.Email
	}
	id, err := s.repo.Insert(ctx, &b)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *BlogService) GetByID(ctx context.Context, hexID string) (*models.Blog, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return b, nil
}

// Update merges fields into the blog, creating it when the id is unknown.
func (s *BlogService) Update(ctx context.Context, hexID string, fields map[string]interface{}) (repositories.UpdateOutcome, error) {
	id, err := parseID(hexID)
	if err != nil {
		return repositories.UpdateOutcome{}, err
	}
	return s.repo.UpsertFields(ctx, id, fields)
}

func (s *BlogService) Delete(ctx context.Context, hexID string) (int64, error) {
	id, err := parseID(hexID)
	if err != nil {
		return 0, err
	}
	return s.repo.DeleteByID(ctx, id)
}

func parseID(hexID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(hexID))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
