package services

import (
	"context"

	"blog-nest/models"
)

type CommentService struct {
	repo CommentStore
}

func NewCommentService(repo CommentStore) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) ListByBlog(ctx context.Context, blogID string) ([]models.Comment, error) {
	return s.repo.ListByBlog(ctx, blogID)
}

func (s *CommentService) Create(ctx context.Context, c models.Comment) (string, error) {
	id, err := s.repo.Insert(ctx, &c)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}
