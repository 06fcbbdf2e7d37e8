package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-nest/models"
	"blog-nest/repositories"
)

// The services depend on these interfaces rather than on the Mongo repositories
// directly, so tests can run against in-memory stores.

type BlogStore interface {
	List(ctx context.Context, opt repositories.ListBlogsOptions) ([]models.Blog, error)
	Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	UpsertFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (repositories.UpdateOutcome, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type WishlistStore interface {
	FindByBlogAndOwner(ctx context.Context, blogID, ownerEmail string) (*models.WishlistEntry, error)
	Insert(ctx context.Context, e *models.WishlistEntry) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.WishlistEntry, error)
}

type CommentStore interface {
	ListByBlog(ctx context.Context, blogID string) ([]models.Comment, error)
	Insert(ctx context.Context, c *models.Comment) (primitive.ObjectID, error)
}
