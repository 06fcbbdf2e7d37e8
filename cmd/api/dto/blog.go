package dto

import "blog-nest/models"

// BlogRequest is the body of POST /blog.
type BlogRequest struct {
	Title            string         `json:"title"`
	Category         string         `json:"category"`
	ShortDescription string         `json:"shortDescription"`
	LongDescription  string         `json:"longDescription"`
	Photo            string         `json:"photo"`
	PostedDate       string         `json:"postedDate"`
	Author           *models.Author `json:"author,omitempty"`
	Email            string         `json:"email"`
}

func (r BlogRequest) ToModel() models.Blog {
	return models.Blog{
		Title:            r.Title,
		Category:         r.Category,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		Photo:            r.Photo,
		PostedDate:       r.PostedDate,
		Author:           r.Author,
		Email:            r.Email,
	}
}

// CommentRequest is the body of POST /comment.
type CommentRequest struct {
	BlogID string        `json:"blogId"`
	Text   string        `json:"text"`
	Author models.Author `json:"author"`
}

func (r CommentRequest) ToModel() models.Comment {
	return models.Comment{
		BlogID: r.BlogID,
		Text:   r.Text,
		Author: r.Author,
	}
}
