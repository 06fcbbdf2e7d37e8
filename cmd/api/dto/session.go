package dto

// IdentityClaimRequest is the body of POST /jwt.
type IdentityClaimRequest struct {
	Email string `json:"email" example:"a@x.com"`
}
