package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the display identity embedded in blogs, wishlist snapshots and comments.
type Author struct {
	Name  string `bson:"name" json:"name"`
	Photo string `bson:"photo" json:"photo"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Blog is a post written by a signed-in user.
// Collection: blogs
//
// Field names follow the browser client, which reads the documents as stored.
type Blog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	Category         string             `bson:"category" json:"category"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	Photo            string             `bson:"photo" json:"photo"`
	PostedDate       string             `bson:"postedDate" json:"postedDate"`
	Author           *Author            `bson:"author,omitempty" json:"author,omitempty"`
	Email            string             `bson:"email" json:"email"`
}
