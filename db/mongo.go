package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blog-nest/internal/logger"
	"blog-nest/config"
)

const (
	CollectionBlogs     = "blogs"
	CollectionWishlists = "wishlists"
	CollectionComments  = "comments"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
	initErr    error
)

// Init opens the process-wide Mongo client, pings it and ensures indexes.
// Repositories receive Database() through their constructors. A failed Init
// keeps failing with the same error.
func Init(ctx context.Context, cfg config.MongoConfig) error {
	clientOnce.Do(func() {
		timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		opts := options.Client().
			ApplyURI(cfg.URI).
			SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true))
		cl, err := mongo.Connect(ctx, opts)
		if err != nil {
			initErr = err
			return
		}
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			_ = cl.Disconnect(context.Background())
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.Database)

		if err := EnsureIndexes(ctx, db, cfg.EnforceWishlistUnique); err != nil {
			initErr = err
			return
		}
		logger.InfoWithFields("mongodb connected and indexes ensured", logger.Fields{
			"database":                cfg.Database,
			"enforce_wishlist_unique": cfg.EnforceWishlistUnique,
		})
	})
	return initErr
}

func Database() *mongo.Database { return db }

// Ping is used by the health endpoint.
func Ping(ctx context.Context) error {
	if db == nil {
		return mongo.ErrClientDisconnected
	}
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes every collection relies on.
//
// With uniqueWishlist the (blogId, wishListUserEmail) index is unique, which closes
// the window between the wishlist existence check and the insert. Without it the
// service keeps the check-then-insert behaviour and concurrent duplicates are possible.
func EnsureIndexes(ctx context.Context, d *mongo.Database, uniqueWishlist bool) error {
	// blogs: category filter
	if _, err := d.Collection(CollectionBlogs).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("idx_category"),
	}); err != nil {
		return err
	}

	// wishlists: (blogId, owner) lookup, and listing by owner
	{
		idx := options.Index().SetName("idx_blog_owner")
		if uniqueWishlist {
			idx = options.Index().SetName("uniq_blog_owner").SetUnique(true)
		}
		if _, err := d.Collection(CollectionWishlists).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "blogId", Value: 1}, {Key: "wishListUserEmail", Value: 1}},
			Options: idx,
		}); err != nil {
			return err
		}
		if _, err := d.Collection(CollectionWishlists).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "wishListUserEmail", Value: 1}},
			Options: options.Index().SetName("idx_owner"),
		}); err != nil {
			return err
		}
	}

	// comments: listing by blog
	if _, err := d.Collection(CollectionComments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "blogId", Value: 1}},
		Options: options.Index().SetName("idx_blog_id"),
	}); err != nil {
		return err
	}
	return nil
}
