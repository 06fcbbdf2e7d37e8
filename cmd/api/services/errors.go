package services

import "errors"

var (
	ErrInvalidID      = errors.New("invalid_id")
	ErrMissingEmail   = errors.New("missing_email")
	ErrSignInRequired = errors.New("sign_in_required")
	ErrForbidden      = errors.New("forbidden_access")
	ErrBlogNotFound   = errors.New("blog_not_found")
	ErrEntryNotFound  = errors.New("wishlist_entry_not_found")
	ErrDuplicateEntry = errors.New("blog_already_in_wishlist")
)
