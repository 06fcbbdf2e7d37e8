package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-nest/db"
	"blog-nest/models"
)

type WishlistRepository struct {
	col *mongo.Collection
}

func NewWishlistRepository(d *mongo.Database) *WishlistRepository {
	return &WishlistRepository{col: d.Collection(db.CollectionWishlists)}
}

// FindByBlogAndOwner returns ErrNotFound when the user has not saved the blog.
func (r *WishlistRepository) FindByBlogAndOwner(ctx context.Context, blogID, ownerEmail string) (*models.WishlistEntry, error) {
	var e models.WishlistEntry
	filter := bson.M{"blogId": blogID, "wishListUserEmail": ownerEmail}
	if err := r.col.FindOne(ctx, filter).Decode(&e); err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

// Insert stores e and sets its generated ID. A violation of the unique
// (blogId, wishListUserEmail) index is reported as ErrDuplicateKey.
func (r *WishlistRepository) Insert(ctx context.Context, e *models.WishlistEntry) (primitive.ObjectID, error) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return primitive.NilObjectID, translate(err)
	}
	return e.ID, nil
}

// DeleteByID returns the number of removed entries.
func (r *WishlistRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByOwner returns every entry saved by ownerEmail.
func (r *WishlistRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]models.WishlistEntry, error) {
	cur, err := r.col.Find(ctx, bson.M{"wishListUserEmail": ownerEmail})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := []models.WishlistEntry{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
