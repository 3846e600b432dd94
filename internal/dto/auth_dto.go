package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	// Messages the assistant appended on login, e.g. the access message of
	// a service the user asked about before authenticating.
	Messages []ChatMessageResponse `json:"messages,omitempty"`
}
