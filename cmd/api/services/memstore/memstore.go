// Package memstore holds in-memory implementations of the service stores.
package memstore

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-nest/models"
	"blog-nest/repositories"
)

// Blogs stores blogs by id. List matches Search as a case-insensitive title
// substring, like the title regex on Mongo. A non-nil Err is returned from List, Insert and FindByID.
type Blogs struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]models.Blog
	Err   error
}

func NewBlogs(blogs ...models.Blog) *Blogs {
	s := &Blogs{items: map[primitive.ObjectID]models.Blog{}}
	for _, b := range blogs {
		s.items[b.ID] = b
	}
	return s
}

func (s *Blogs) List(ctx context.Context, opt repositories.ListBlogsOptions) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Blog{}
	for _, b := range s.items {
		if opt.Category != "" && b.Category != opt.Category {
			continue
		}
		if opt.Search != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(opt.Search)) {
			continue
		}
		out = append(out, b)
	}
	return out, s.Err
}

func (s *Blogs) Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error) {
	if s.Err != nil {
		return primitive.NilObjectID, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = primitive.NewObjectID()
	s.items[b.ID] = *b
	return b.ID, nil
}

func (s *Blogs) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &b, nil
}

func (s *Blogs) UpsertFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (repositories.UpdateOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.items[id]
	if !ok {
		b = models.Blog{ID: id}
	}
	if v, ok := fields["title"].(string); ok {
		b.Title = v
	}
	if v, ok := fields["category"].(string); ok {
		b.Category = v
	}
	s.items[id] = b
	if !ok {
		return repositories.UpdateOutcome{UpsertedID: id.Hex()}, nil
	}
	return repositories.UpdateOutcome{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *Blogs) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return 0, nil
	}
	delete(s.items, id)
	return 1, nil
}

type Wishlists struct {
	mu    sync.Mutex
	items []models.WishlistEntry

	// Unique mirrors the unique (blogId, wishListUserEmail) index.
	Unique bool
	// Inserts counts Insert calls, including rejected ones.
	Inserts int
	// AfterFind runs once the FindByBlogAndOwner lookup is done.
	AfterFind func()
}

// Seed stores entries as they are, ids included.
func (s *Wishlists) Seed(entries ...models.WishlistEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, entries...)
}

func (s *Wishlists) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Wishlists) FindByBlogAndOwner(ctx context.Context, blogID, ownerEmail string) (*models.WishlistEntry, error) {
	found := s.find(blogID, ownerEmail)
	if s.AfterFind != nil {
		s.AfterFind()
	}
	if found == nil {
		return nil, repositories.ErrNotFound
	}
	return found, nil
}

func (s *Wishlists) find(blogID, ownerEmail string) *models.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.items {
		if e.BlogID == blogID && e.WishListUserEmail == ownerEmail {
			e := e
			return &e
		}
	}
	return nil
}

func (s *Wishlists) Insert(ctx context.Context, e *models.WishlistEntry) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Inserts++
	if s.Unique {
		for _, existing := range s.items {
			if existing.BlogID == e.BlogID && existing.WishListUserEmail == e.WishListUserEmail {
				return primitive.NilObjectID, repositories.ErrDuplicateKey
			}
		}
	}
	e.ID = primitive.NewObjectID()
	s.items = append(s.items, *e)
	return e.ID, nil
}

func (s *Wishlists) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *Wishlists) ListByOwner(ctx context.Context, ownerEmail string) ([]models.WishlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.WishlistEntry{}
	for _, e := range s.items {
		if e.WishListUserEmail == ownerEmail {
			out = append(out, e)
		}
	}
	return out, nil
}

type Comments struct {
	mu    sync.Mutex
	items []models.Comment
}

func (s *Comments) ListByBlog(ctx context.Context, blogID string) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Comment{}
	for _, c := range s.items {
		if c.BlogID == blogID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Comments) Insert(ctx context.Context, c *models.Comment) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = primitive.NewObjectID()
	s.items = append(s.items, *c)
	return c.ID, nil
}
