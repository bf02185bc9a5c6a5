package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// From is the screen that bounced the user to login; echoed back so the
	// client can resume where it left off.
	From string `json:"from,omitempty"`
}
