package dto

// TelegramLoginRequest carries the Telegram Login Widget payload
type TelegramLoginRequest struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date"`
	Hash      string `json:"hash"`
}

// LoginResponse is the session user record returned to the client
type LoginResponse struct {
	UserID     uint   `json:"user_id"`
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	PhotoURL   string `json:"photo_url"`
	IsAdmin    bool   `json:"is_admin"`
}

// RequestAdminCodeRequest asks for a one-time elevation code
type RequestAdminCodeRequest struct {
	TelegramID int64 `json:"telegram_id"`
}

// RequestAdminCodeResponse confirms the code was sent out-of-band
type RequestAdminCodeResponse struct {
	Sent bool `json:"sent"`
}

// VerifyAdminCodeRequest exchanges a code for elevation
type VerifyAdminCodeRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Code       string `json:"code"`
	UserID     uint   `json:"user_id"`
}

// VerifyAdminCodeResponse reports resulting admin state
type VerifyAdminCodeResponse struct {
	IsAdmin bool `json:"is_admin"`
}
