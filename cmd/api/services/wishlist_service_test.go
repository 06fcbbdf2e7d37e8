package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-nest/cmd/api/auth"
	"blog-nest/cmd/api/services/memstore"
	"blog-nest/models"
)

func sampleBlog() models.Blog {
	return models.Blog{
		ID:               primitive.NewObjectID(),
		Title:            "Hello",
		Category:         "Tech",
		ShortDescription: "short",
		LongDescription:  "long",
		Photo:            "https://img/1.png",
		PostedDate:       "2024-01-01",
		Author:           &models.Author{Name: "Ann", Photo: "https://img/ann.png"},
	}
}

func TestWishlistAddCopiesBlogFields(t *testing.T) {
	blog := sampleBlog()
	wishlists := &memstore.Wishlists{}
	svc := NewWishlistService(memstore.NewBlogs(blog), wishlists)

	entry, err := svc.Add(context.Background(), AddToWishlistInput{
		BlogID:       blog.ID.Hex(),
		OwnerEmail:   "a@x.com",
		WishlistDate: "2024-02-02",
	})
	require.NoError(t, err)

	assert.False(t, entry.ID.IsZero())
	assert.Equal(t, blog.ID.Hex(), entry.BlogID)
	assert.Equal(t, "a@x.com", entry.WishListUserEmail)
	assert.Equal(t, "2024-02-02", entry.WishlistDate)
	assert.Equal(t, "Hello", entry.Title)
	assert.Equal(t, "Tech", entry.Category)
	assert.Equal(t, "short", entry.ShortDescription)
	assert.Equal(t, "long", entry.LongDescription)
	assert.Equal(t, "https://img/1.png", entry.Photo)
	assert.Equal(t, "2024-01-01", entry.PostedDate)
	assert.Equal(t, models.Author{Name: "Ann", Photo: "https://img/ann.png"}, entry.Author)
	assert.Equal(t, 1, wishlists.Len())
}

func TestWishlistAddDefaultsAuthor(t *testing.T) {
	tests := []struct {
		name   string
		author *models.Author
		want   models.Author
	}{
		{"no author", nil, models.Author{Name: UnknownAuthorName, Photo: DefaultAuthorPhoto}},
		{"name only", &models.Author{Name: "Bo"}, models.Author{Name: "Bo", Photo: DefaultAuthorPhoto}},
		{"photo only", &models.Author{Photo: "p.png"}, models.Author{Name: UnknownAuthorName, Photo: "p.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blog := sampleBlog()
			blog.Author = tt.author
			svc := NewWishlistService(memstore.NewBlogs(blog), &memstore.Wishlists{})

			entry, err := svc.Add(context.Background(), AddToWishlistInput{BlogID: blog.ID.Hex(), OwnerEmail: "a@x.com"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, entry.Author)
		})
	}
}

func TestWishlistAddRejectsDuplicate(t *testing.T) {
	blog := sampleBlog()
	wishlists := &memstore.Wishlists{}
	svc := NewWishlistService(memstore.NewBlogs(blog), wishlists)
	in := AddToWishlistInput{BlogID: blog.ID.Hex(), OwnerEmail: "a@x.com"}

	_, err := svc.Add(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), in)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	assert.Equal(t, 1, wishlists.Len())
	assert.Equal(t, 1, wishlists.Inserts)

	// another owner may save the same blog
	_, err = svc.Add(context.Background(), AddToWishlistInput{BlogID: blog.ID.Hex(), OwnerEmail: "b@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, wishlists.Len())
}

func TestWishlistAddMapsDuplicateKeyFromInsert(t *testing.T) {
	blog := sampleBlog()
	wishlists := &memstore.Wishlists{Unique: true}
	svc := NewWishlistService(memstore.NewBlogs(blog), wishlists)

	// a concurrent add lands between the existence check and the insert
	wishlists.AfterFind = func() {
		wishlists.AfterFind = nil
		wishlists.Seed(models.WishlistEntry{
			ID:                primitive.NewObjectID(),
			BlogID:            blog.ID.Hex(),
			WishListUserEmail: "a@x.com",
		})
	}

	_, err := svc.Add(context.Background(), AddToWishlistInput{BlogID: blog.ID.Hex(), OwnerEmail: "a@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	assert.Equal(t, 1, wishlists.Len())
}

func TestWishlistAddUnknownBlog(t *testing.T) {
	wishlists := &memstore.Wishlists{}
	svc := NewWishlistService(memstore.NewBlogs(), wishlists)

	_, err := svc.Add(context.Background(), AddToWishlistInput{BlogID: primitive.NewObjectID().Hex(), OwnerEmail: "a@x.com"})
	assert.ErrorIs(t, err, ErrBlogNotFound)

	_, err = svc.Add(context.Background(), AddToWishlistInput{BlogID: "not-an-id", OwnerEmail: "a@x.com"})
	assert.ErrorIs(t, err, ErrBlogNotFound)

	assert.Zero(t, wishlists.Inserts)
}

func TestWishlistAddRequiresOwner(t *testing.T) {
	blog := sampleBlog()
	wishlists := &memstore.Wishlists{}
	svc := NewWishlistService(memstore.NewBlogs(blog), wishlists)

	_, err := svc.Add(context.Background(), AddToWishlistInput{BlogID: blog.ID.Hex(), OwnerEmail: "  "})
	assert.ErrorIs(t, err, ErrSignInRequired)
	assert.Zero(t, wishlists.Inserts)
}

func TestWishlistAddWrapsStoreErrors(t *testing.T) {
	blogs := memstore.NewBlogs()
	blogs.Err = errors.New("connection reset")
	svc := NewWishlistService(blogs, &memstore.Wishlists{})

	_, err := svc.Add(context.Background(), AddToWishlistInput{BlogID: primitive.NewObjectID().Hex(), OwnerEmail: "a@x.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBlogNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestWishlistListOwnOnly(t *testing.T) {
	blog := sampleBlog()
	wishlists := &memstore.Wishlists{}
	svc := NewWishlistService(memstore.NewBlogs(blog), wishlists)
	_, err := svc.Add(context.Background(), AddToWishlistInput{BlogID: blog.ID.Hex(), OwnerEmail: "a@x.com"})
	require.NoError(t, err)

	entries, err := svc.List(context.Background(), "a@x.com", auth.Identity{Email: "a@x.com"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Hello", entries[0].Title)

	_, err = svc.List(context.Background(), "a@x.com", auth.Identity{Email: "b@x.com"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.List(context.Background(), "", auth.Identity{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrMissingEmail)

	entries, err = svc.List(context.Background(), "b@x.com", auth.Identity{Email: "b@x.com"})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWishlistRemove(t *testing.T) {
	blog := sampleBlog()
	wishlists := &memstore.Wishlists{}
	svc := NewWishlistService(memstore.NewBlogs(blog), wishlists)
	entry, err := svc.Add(context.Background(), AddToWishlistInput{BlogID: blog.ID.Hex(), OwnerEmail: "a@x.com"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Remove(context.Background(), "bad", auth.Identity{Email: "a@x.com"}), ErrInvalidID)

	require.NoError(t, svc.Remove(context.Background(), entry.ID.Hex(), auth.Identity{Email: "a@x.com"}))
	assert.Zero(t, wishlists.Len())

	err = svc.Remove(context.Background(), entry.ID.Hex(), auth.Identity{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

// Removal is keyed by entry id only. This pins the current behaviour: a
// signed-in caller can delete an entry owned by someone else.
func TestWishlistRemoveDoesNotCheckOwner(t *testing.T) {
	blog := sampleBlog()
	wishlists := &memstore.Wishlists{}
	svc := NewWishlistService(memstore.NewBlogs(blog), wishlists)
	entry, err := svc.Add(context.Background(), AddToWishlistInput{BlogID: blog.ID.Hex(), OwnerEmail: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), entry.ID.Hex(), auth.Identity{Email: "mallory@x.com"}))
	assert.Zero(t, wishlists.Len())
}
