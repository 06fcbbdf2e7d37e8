package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-nest/cmd/api/auth"
	"blog-nest/internal/logger"
	"blog-nest/models"
	"blog-nest/repositories"
)

const (
	UnknownAuthorName  = "Unknown Author"
	DefaultAuthorPhoto = "https://i.ibb.co/2kR5zq0/default-avatar.png"
)

// WishlistService adds, removes and lists the blogs a user saved.
type WishlistService struct {
	blogs     BlogStore
	wishlists WishlistStore
}

func NewWishlistService(blogs BlogStore, wishlists WishlistStore) *WishlistService {
	return &WishlistService{
		blogs:     blogs,
		wishlists: wishlists,
	}
}

type AddToWishlistInput struct {
	BlogID       string
	OwnerEmail   string
	WishlistDate string
}

// Add saves a snapshot of the blog into the owner's wishlist.
//
// The existence check and the insert are two separate store calls. When the
// wishlists collection carries the unique (blogId, wishListUserEmail) index a
// concurrent duplicate fails at insert time and is reported as ErrDuplicateEntry
// as well; without the index both inserts can succeed.
func (s *WishlistService) Add(ctx context.Context, in AddToWishlistInput) (*models.WishlistEntry, error) {
	owner := strings.TrimSpace(in.OwnerEmail)
	if owner == "" {
		return nil, ErrSignInRequired
	}

	blogID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.BlogID))
	if err != nil {
		return nil, ErrBlogNotFound
	}
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}

	_, err = s.wishlists.FindByBlogAndOwner(ctx, blogID.Hex(), owner)
	switch {
	case err == nil:
		return nil, ErrDuplicateEntry
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("find wishlist entry: %w", err)
	}

	entry := newWishlistEntry(blog, owner, in.WishlistDate)
	if _, err := s.wishlists.Insert(ctx, entry); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert wishlist entry: %w", err)
	}
	return entry, nil
}

func newWishlistEntry(blog *models.Blog, owner, wishlistDate string) *models.WishlistEntry {
	author := models.Author{Name: UnknownAuthorName, Photo: DefaultAuthorPhoto}
	if blog.Author != nil {
		if blog.Author.Name != "" {
			author.Name = blog.Author.Name
		}
		if blog.Author.Photo != "" {
			author.Photo = blog.Author.Photo
		}
	}

	return &models.WishlistEntry{
		BlogID:            blog.ID.Hex(),
		WishListUserEmail: owner,
		WishlistDate:      wishlistDate,
		Title:             blog.Title,
		Photo:             blog.Photo,
		Category:          blog.Category,
		ShortDescription:  blog.ShortDescription,
		LongDescription:   blog.LongDescription,
		PostedDate:        blog.PostedDate,
		Author:            author,
	}
}

// Remove deletes a wishlist entry by its own id. Any signed-in caller may
// remove any entry; ownership is not checked here.
func (s *WishlistService) Remove(ctx context.Context, entryID string, caller auth.Identity) error {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(entryID))
	if err != nil {
		return ErrInvalidID
	}

	deleted, err := s.wishlists.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete wishlist entry: %w", err)
	}
	if deleted == 0 {
		return ErrEntryNotFound
	}

	logger.DebugWithFields("wishlist entry removed", logger.Fields{
		"entry_id": id.Hex(),
		"caller":   caller.Email,
	})
	return nil
}

// List returns ownerEmail's wishlist. Callers may only read their own.
func (s *WishlistService) List(ctx context.Context, ownerEmail string, caller auth.Identity) ([]models.WishlistEntry, error) {
	if ownerEmail == "" {
		return nil, ErrMissingEmail
	}
	if caller.Email != ownerEmail {
		return nil, ErrForbidden
	}

	entries, err := s.wishlists.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return entries, nil
}
