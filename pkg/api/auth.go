package api

// RegisterRequest представляет запрос на регистрацию нового аккаунта
type RegisterRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	UserType    UserType `json:"user_type"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	Pseudo      string   `json:"pseudo,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	City        string   `json:"city,omitempty"`
	CompanyName string   `json:"company_name,omitempty"`
	Siret       string   `json:"siret,omitempty"`
	BirthDate   string   `json:"birth_date,omitempty"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/// AuthResponse — ответ login/register: пара токенов и профиль
type AuthResponse struct {
	Message      string `json:"message"`
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse — ответ POST /api/auth/refresh.
// Бэкенд выдает только новый access token, refresh token остается прежним.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// MeResponse — ответ GET /api/auth/me
type MeResponse struct {
	User User `json:"user"`
}

// ChangePasswordRequest — тело POST /api/auth/change-password
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// CheckEmailRequest — тело POST /api/auth/check-email
type CheckEmailRequest struct {
	Email string `json:"email"`
}

// CheckPseudoRequest — тело POST /api/auth/check-pseudo
type CheckPseudoRequest struct {
	Pseudo string `json:"pseudo"`
}

// AvailabilityResponse — ответ проверок check-email / check-pseudo
type AvailabilityResponse struct {
	Available bool    `json:"available"`
	Reason    *string `json:"reason"`
}
