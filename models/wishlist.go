package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistEntry records that a user saved a blog. The blog fields are a snapshot
// taken when the entry was created, so listing never reads the blogs collection.
// Collection: wishlists
type WishlistEntry struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BlogID            string             `bson:"blogId" json:"blogId"`
	WishListUserEmail string             `bson:"wishListUserEmail" json:"wishListUserEmail"`
	WishlistDate      string             `bson:"wishlistDate" json:"wishlistDate"`

	Title            string `bson:"title" json:"title"`
	Photo            string `bson:"photo" json:"photo"`
	Category         string `bson:"category" json:"category"`
	ShortDescription string `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string `bson:"longDescription" json:"longDescription"`
	PostedDate       string `bson:"postedDate" json:"postedDate"`
	Author           Author `bson:"author" json:"author"`
}
