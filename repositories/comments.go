package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-nest/db"
	"blog-nest/models"
)

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(d *mongo.Database) *CommentRepository {
	return &CommentRepository{col: d.Collection(db.CollectionComments)}
}

// ListByBlog returns the comments of a blog.
func (r *CommentRepository) ListByBlog(ctx context.Context, blogID string) ([]models.Comment, error) {
	cur, err := r.col.Find(ctx, bson.M{"blogId": blogID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := []models.Comment{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Insert stores c, stamping its ID and commentedAt when missing.
func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) (primitive.ObjectID, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CommentedAt.IsZero() {
		c.CommentedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return primitive.NilObjectID, translate(err)
	}
	return c.ID, nil
}
