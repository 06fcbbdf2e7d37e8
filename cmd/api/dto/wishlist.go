package dto

// AddWishlistRequest is the body of POST /wishlist.
type AddWishlistRequest struct {
	BlogID            string `json:"blogId" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	WishListUserEmail string `json:"wishListUserEmail" example:"a@x.com"`
	WishlistDate      string `json:"wishlistDate" example:"2024-01-01"`
}
