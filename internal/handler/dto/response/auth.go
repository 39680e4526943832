package response

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Token string `json:"token,omitempty"`
}
