package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-nest/cmd/api/auth"
	"blog-nest/cmd/api/dto"
	"blog-nest/cmd/api/services"
)

// ListBlogsHandler godoc
// @Summary      List blogs
// @Description  List every blog
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  models.Blog
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := svc.List(c.Request.Context(), services.ListBlogsInput{})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

// SearchBlogsHandler godoc
// @Summary      Search blogs
// @Description  Filter blogs by a case-insensitive title match and an exact category
// @Tags         blogs
// @Produce      json
// @Param        search  query  string  false  "Title contains (case-insensitive)"
// @Param        filter  query  string  false  "Category"
// @Success      200  {array}  models.Blog
// @Router       /all-blogs [get]
func SearchBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := svc.List(c.Request.Context(), services.ListBlogsInput{
			Search:   c.Query("search"),
			Category: c.Query("filter"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

// CreateBlogHandler godoc
// @Summary      Create blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        body  body      dto.BlogRequest  true  "Blog"
// @Success      201   {object}  dto.WriteResultDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /blog [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.BlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid_request_body")
			return
		}
		caller, _ := auth.CurrentIdentity(c)

		id, err := svc.Create(c.Request.Context(), req.ToModel(), caller)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.InsertResult(id))
	}
}

// GetBlogHandler godoc
// @Summary      Get blog by id
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "ObjectID"
// @Success      200  {object}  models.Blog
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// UpdateBlogHandler godoc
// @Summary      Update blog
// @Description  Sets the posted fields on the blog, creating it when the id is unknown
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "ObjectID"
// @Param        body  body      object  true  "Fields to set"
// @Success      200   {object}  dto.WriteResultDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /blog/{id} [put]
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			respondBadRequest(c, "invalid_request_body")
			return
		}

		out, err := svc.Update(c.Request.Context(), c.Param("id"), fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.UpdateResult(out.MatchedCount, out.ModifiedCount, out.UpsertedID))
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete blog
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "ObjectID"
// @Success      200  {object}  dto.WriteResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /blog/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.DeleteResult(n))
	}
}
