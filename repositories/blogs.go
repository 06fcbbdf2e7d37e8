package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-nest/db"
	"blog-nest/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(d *mongo.Database) *BlogRepository {
	return &BlogRepository{col: d.Collection(db.CollectionBlogs)}
}

type ListBlogsOptions struct {
	// Search is matched case-insensitively anywhere in the title.
	Search string
	// Category must match exactly when set.
	Category string
}

// Filter builds the query document for opt. An empty option set matches everything.
func (opt ListBlogsOptions) Filter() bson.M {
	filter := bson.M{}
	if opt.Search != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(opt.Search), Options: "i"}
	}
	if opt.Category != "" {
		filter["category"] = opt.Category
	}
	return filter
}

// List returns the blogs matching opt in storage order.
func (r *BlogRepository) List(ctx context.Context, opt ListBlogsOptions) ([]models.Blog, error) {
	cur, err := r.col.Find(ctx, opt.Filter())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := []models.Blog{}
	for cur.Next(ctx) {
		var b models.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		results = append(results, b)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Insert stores b and sets its generated ID.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, b); err != nil {
		return primitive.NilObjectID, translate(err)
	}
	return b.ID, nil
}

// FindByID returns ErrNotFound when no blog has the given ID.
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// UpsertFields $sets the given fields on the blog, creating it when missing.
func (r *BlogRepository) UpsertFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (UpdateOutcome, error) {
	set := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		// $set with an empty document is rejected by the server
		set["_id"] = id
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return UpdateOutcome{}, translate(err)
	}
	return UpdateOutcome{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    insertedHex(res.UpsertedID),
	}, nil
}

// DeleteByID returns the number of removed documents.
func (r *BlogRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
