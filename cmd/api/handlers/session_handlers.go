package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-nest/cmd/api/auth"
	"blog-nest/cmd/api/dto"
	"blog-nest/cmd/api/services"
)

// IssueSessionHandler godoc
// @Summary      Issue session
// @Description  Signs the posted identity claim and sets it as the HTTP-only session cookie
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      dto.IdentityClaimRequest  true  "Identity claim"
// @Success      200   {object}  dto.SuccessResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /jwt [post]
func IssueSessionHandler(svc *services.SessionService, cookie auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.IdentityClaimRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid_request_body")
			return
		}

		token, _, err := svc.Issue(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}

		cookie.Set(c, token)
		c.JSON(http.StatusOK, dto.SuccessResponseDTO{Success: true})
	}
}

// LogoutHandler godoc
// @Summary      Logout
// @Description  Expires the session cookie. The token itself stays valid until it expires.
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SuccessResponseDTO
// @Router       /logout [get]
func LogoutHandler(cookie auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie.Clear(c)
		c.JSON(http.StatusOK, dto.SuccessResponseDTO{Success: true})
	}
}
