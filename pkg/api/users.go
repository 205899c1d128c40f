package api

// UserType определяет тип аккаунта
type UserType string

const (
	UserTypePerson UserType = "person" // частное лицо
	UserTypePro    UserType = "pro"    // профессионал / компания
	UserTypeAsso   UserType = "asso"   // ассоциация
)

// User представляет полный профиль текущего пользователя.
// Поля повторяют ответ бэкенда один в один.
type User struct {
	ID            int64    `json:"id"`
	Email         string   `json:"email"`
	UserType      UserType `json:"user_type"`
	FirstName     *string  `json:"first_name"`
	LastName      *string  `json:"last_name"`
	Pseudo        *string  `json:"pseudo"`
	Phone         *string  `json:"phone"`
	BirthDate     *string  `json:"birth_date"`
	Gender        *string  `json:"gender"`
	CompanyName   *string  `json:"company_name"`
	Siret         *string  `json:"siret"`
	Description   *string  `json:"description"`
	Website       *string  `json:"website"`
	City          *string  `json:"city"`
	Address       *string  `json:"address"`
	PostalCode    *string  `json:"postal_code"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	AvatarURL     *string  `json:"avatar_url"`
	CoverURL      *string  `json:"cover_url"`
	Bio           *string  `json:"bio"`
	Instagram     *string  `json:"instagram"`
	Facebook      *string  `json:"facebook"`
	TikTok        *string  `json:"tiktok"`
	Snapchat      *string  `json:"snapchat"`
	IsVerified    bool     `json:"is_verified"`
	IsActive      bool     `json:"is_active"`
	IsPremium     bool     `json:"is_premium"`
	PremiumType   *string  `json:"premium_type"`
	IsGhostMode   bool     `json:"is_ghost_mode"`
	GirlsOnlyMode bool     `json:"girls_only_mode"`
	DarkMode      bool     `json:"dark_mode"`
	Language      string   `json:"language"`
	Age           *int     `json:"age"`
	CreatedAt     string   `json:"created_at"`
	LastSeen      *string  `json:"last_seen"`
}

// UserPublic представляет публичную проекцию чужого профиля
type UserPublic struct {
	ID         int64    `json:"id"`
	Pseudo     *string  `json:"pseudo"`
	FirstName  *string  `json:"first_name"`
	AvatarURL  *string  `json:"avatar_url"`
	City       *string  `json:"city"`
	IsVerified bool     `json:"is_verified"`
	UserType   UserType `json:"user_type"`
}

// UserPatch — частичное обновление профиля. nil-поля не сериализуются
// и не затрагиваются при локальном merge. Одно и то же значение
// используется и для тела PUT /api/users/profile, и для оптимистичного
// обновления user в сессии.
type UserPatch struct {
	FirstName     *string  `json:"first_name,omitempty"`
	LastName      *string  `json:"last_name,omitempty"`
	Pseudo        *string  `json:"pseudo,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Website       *string  `json:"website,omitempty"`
	City          *string  `json:"city,omitempty"`
	Address       *string  `json:"address,omitempty"`
	PostalCode    *string  `json:"postal_code,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Bio           *string  `json:"bio,omitempty"`
	Instagram     *string  `json:"instagram,omitempty"`
	Facebook      *string  `json:"facebook,omitempty"`
	TikTok        *string  `json:"tiktok,omitempty"`
	Snapchat      *string  `json:"snapchat,omitempty"`
	IsGhostMode   *bool    `json:"is_ghost_mode,omitempty"`
	GirlsOnlyMode *bool    `json:"girls_only_mode,omitempty"`
	DarkMode      *bool    `json:"dark_mode,omitempty"`
	Language      *string  `json:"language,omitempty"`
}

// Apply накладывает заполненные поля patch на user (локальный merge)
func (p UserPatch) Apply(u *User) {
	if u == nil {
		return
	}
	if p.FirstName != nil {
		u.FirstName = p.FirstName
	}
	if p.LastName != nil {
		u.LastName = p.LastName
	}
	if p.Pseudo != nil {
		u.Pseudo = p.Pseudo
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
	if p.Gender != nil {
		u.Gender = p.Gender
	}
	if p.Description != nil {
		u.Description = p.Description
	}
	if p.Website != nil {
		u.Website = p.Website
	}
	if p.City != nil {
		u.City = p.City
	}
	if p.Address != nil {
		u.Address = p.Address
	}
	if p.PostalCode != nil {
		u.PostalCode = p.PostalCode
	}
	if p.Latitude != nil {
		u.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		u.Longitude = p.Longitude
	}
	if p.Bio != nil {
		u.Bio = p.Bio
	}
	if p.Instagram != nil {
		u.Instagram = p.Instagram
	}
	if p.Facebook != nil {
		u.Facebook = p.Facebook
	}
	if p.TikTok != nil {
		u.TikTok = p.TikTok
	}
	if p.Snapchat != nil {
		u.Snapchat = p.Snapchat
	}
	if p.IsGhostMode != nil {
		u.IsGhostMode = *p.IsGhostMode
	}
	if p.GirlsOnlyMode != nil {
		u.GirlsOnlyMode = *p.GirlsOnlyMode
	}
	if p.DarkMode != nil {
		u.DarkMode = *p.DarkMode
	}
	if p.Language != nil {
		u.Language = *p.Language
	}
}

// GetUserResponse — ответ GET /api/users/{id}
type GetUserResponse struct {
	User             User    `json:"user"`
	FriendshipStatus *string `json:"friendship_status,omitempty"`
	FriendshipID     *int64  `json:"friendship_id,omitempty"`
}

// UpdateProfileResponse — ответ PUT /api/users/profile
type UpdateProfileResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UploadAvatarResponse — ответ POST /api/users/profile/avatar
type UploadAvatarResponse struct {
	Message   string `json:"message"`
	AvatarURL string `json:"avatar_url"`
}

// SearchUsersResponse — ответ GET /api/users/search
type SearchUsersResponse struct {
	Users       []User `json:"users"`
	Total       int    `json:"total"`
	Pages       int    `json:"pages"`
	CurrentPage int    `json:"current_page"`
	HasNext     bool   `json:"has_next"`
}

// UserActivitiesResponse — ответ GET /api/users/{id}/activities
type UserActivitiesResponse struct {
	Activities  []Activity `json:"activities"`
	Total       int        `json:"total"`
	Pages       int        `json:"pages"`
	CurrentPage int        `json:"current_page"`
}

// DeactivateAccountRequest — тело POST /api/users/deactivate
type DeactivateAccountRequest struct {
	Password string `json:"password"`
}

// DeleteAccountRequest — тело DELETE /api/users/delete
type DeleteAccountRequest struct {
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// MessageResponse — общий ответ мутирующих эндпоинтов
type MessageResponse struct {
	Message string `json:"message"`
}
