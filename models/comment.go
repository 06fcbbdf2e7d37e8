package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a reader comment on a blog.
// Collection: comments
type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BlogID      string             `bson:"blogId" json:"blogId"`
	Text        string             `bson:"text" json:"text"`
	Author      Author             `bson:"author" json:"author"`
	CommentedAt time.Time          `bson:"commentedAt" json:"commentedAt"`
}
