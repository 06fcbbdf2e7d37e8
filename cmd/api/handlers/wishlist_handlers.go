package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-nest/cmd/api/auth"
	"blog-nest/cmd/api/dto"
	"blog-nest/cmd/api/services"
)

// AddWishlistHandler godoc
// @Summary      Add blog to wishlist
// @Description  Saves a snapshot of the blog for wishListUserEmail. The same blog can be saved once per user.
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddWishlistRequest  true  "Wishlist entry"
// @Success      201   {object}  models.WishlistEntry
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Router       /wishlist [post]
func AddWishlistHandler(svc *services.WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AddWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid_request_body")
			return
		}

		// the owner comes from the body; it is not compared with the session identity
		entry, err := svc.Add(c.Request.Context(), services.AddToWishlistInput{
			BlogID:       req.BlogID,
			OwnerEmail:   req.WishListUserEmail,
			WishlistDate: req.WishlistDate,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// RemoveWishlistHandler godoc
// @Summary      Remove wishlist entry
// @Tags         wishlist
// @Produce      json
// @Param        id   path      string  true  "Wishlist entry ObjectID"
// @Success      200  {object}  dto.WriteResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /wishlist/{id} [delete]
func RemoveWishlistHandler(svc *services.WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := auth.CurrentIdentity(c)
		if err := svc.Remove(c.Request.Context(), c.Param("id"), caller); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.DeleteResult(1))
	}
}

// ListWishlistHandler godoc
// @Summary      List wishlist
// @Description  Returns the caller's own wishlist; asking for another user's is forbidden
// @Tags         wishlist
// @Produce      json
// @Param        email  query     string  true  "Owner email"
// @Success      200    {array}   models.WishlistEntry
// @Failure      400    {object}  dto.ErrorResponseDTO
// @Failure      401    {object}  dto.ErrorResponseDTO
// @Failure      403    {object}  dto.ErrorResponseDTO
// @Router       /wishlist [get]
func ListWishlistHandler(svc *services.WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := auth.CurrentIdentity(c)
		entries, err := svc.List(c.Request.Context(), c.Query("email"), caller)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
