package dto

// LoginReq represents the request body for the /api/auth/login endpoint.
// The email field accepts either an email address or an opaque handle;
// classification happens in the domain layer, so only presence is enforced
// here.
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
