package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-nest/cmd/api/dto"
	"blog-nest/cmd/api/services"
)

// ListCommentsHandler godoc
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        blogId  query  string  true  "Blog id"
// @Success      200  {array}  models.Comment
// @Router       /comments [get]
func ListCommentsHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := svc.ListByBlog(c.Request.Context(), c.Query("blogId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

// CreateCommentHandler godoc
// @Summary      Create comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CommentRequest  true  "Comment"
// @Success      201   {object}  dto.WriteResultDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /comment [post]
func CreateCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid_request_body")
			return
		}

		id, err := svc.Create(c.Request.Context(), req.ToModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.InsertResult(id))
	}
}
