package api

// ActivityType определяет формат активности
type ActivityType string

const (
	ActivityReal  ActivityType = "real"  // очная встреча
	ActivityVisio ActivityType = "visio" // онлайн
)

// ActivityHost — сокращенный профиль организатора в карточке активности
type ActivityHost struct {
	ID         int64   `json:"id"`
	Pseudo     *string `json:"pseudo"`
	FirstName  *string `json:"first_name"`
	AvatarURL  *string `json:"avatar_url"`
	IsVerified bool    `json:"is_verified"`
	UserType   string  `json:"user_type"`
}

// ViewerInfo — что текущий пользователь может делать с активностью
type ViewerInfo struct {
	IsHost bool `json:"is_host"`
}

// MyParticipation — статус заявки текущего пользователя на участие
type MyParticipation struct {
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at"`
}

// Activity представляет карточку активности.
// Клиент мутирует только is_liked/likes_count (оптимистично),
// остальное принадлежит серверу.
type Activity struct {
	ID                  int64            `json:"id"`
	Title               string           `json:"title"`
	Description         *string          `json:"description"`
	ActivityType        ActivityType     `json:"activity_type"`
	Category            *string          `json:"category"`
	Subcategory         *string          `json:"subcategory"`
	Date                string           `json:"date"`
	EndDate             *string          `json:"end_date"`
	City                *string          `json:"city"`
	Address             *string          `json:"address"`
	MeetingPoint        *string          `json:"meeting_point"`
	Latitude            *float64         `json:"latitude"`
	Longitude           *float64         `json:"longitude"`
	MinParticipants     int              `json:"min_participants"`
	MaxParticipants     int              `json:"max_participants"`
	CurrentParticipants int              `json:"current_participants"`
	SpotsLeft           int              `json:"spots_left"`
	MinAge              int              `json:"min_age"`
	MaxAge              int              `json:"max_age"`
	GenderRestriction   string           `json:"gender_restriction"`
	ValidationType      string           `json:"validation_type"`
	Visibility          string           `json:"visibility"`
	ImageURL            *string          `json:"image_url"`
	LikesCount          int              `json:"likes_count"`
	IsLiked             bool             `json:"is_liked"`
	Status              string           `json:"status"`
	IsFull              bool             `json:"is_full"`
	IsPast              bool             `json:"is_past"`
	CreatedAt           string           `json:"created_at"`
	Host                *ActivityHost    `json:"host,omitempty"`
	VisioURL            string           `json:"visio_url,omitempty"`
	VisioPlatform       string           `json:"visio_platform,omitempty"`
	DistanceKm          *float64         `json:"distance_km,omitempty"`
	ViewerInfo          *ViewerInfo      `json:"viewer_info,omitempty"`
	MyParticipation     *MyParticipation `json:"my_participation,omitempty"`
}

// ActivitiesResponse — страница списка активностей
type ActivitiesResponse struct {
	Activities  []Activity `json:"activities"`
	Total       int        `json:"total"`
	Pages       int        `json:"pages"`
	CurrentPage int        `json:"current_page"`
	HasNext     bool       `json:"has_next"`
}

// CreateActivityRequest — тело POST /api/activities/.
// Используется и для PUT (частичное обновление): незаполненные поля
// не сериализуются.
type CreateActivityRequest struct {
	Title           string       `json:"title,omitempty"`
	ActivityType    ActivityType `json:"activity_type,omitempty"`
	Date            string       `json:"date,omitempty"`
	Description     string       `json:"description,omitempty"`
	Category        string       `json:"category,omitempty"`
	MaxParticipants int          `json:"max_participants,omitempty"`
	Price           float64      `json:"price,omitempty"`
	Visibility      string       `json:"visibility,omitempty"`
	IsGirlsOnly     bool         `json:"is_girls_only,omitempty"`
	RequireApproval bool         `json:"require_approval,omitempty"`
	Address         string       `json:"address,omitempty"`
	City            string       `json:"city,omitempty"`
	PostalCode      string       `json:"postal_code,omitempty"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	VisioLink       string       `json:"visio_link,omitempty"`
}

// ActivityResponse — ответ create/update активности
type ActivityResponse struct {
	Message  string   `json:"message"`
	Activity Activity `json:"activity"`
}

// ParticipateRequest — тело POST /api/activities/{id}/participate
type ParticipateRequest struct {
	Message string `json:"message,omitempty"`
}

// ParticipateResponse — ответ на заявку участия
type ParticipateResponse struct {
	Message         string `json:"message"`
	Status          string `json:"status"`
	ParticipationID int64  `json:"participation_id"`
}

// HandleParticipationRequest — тело PUT /api/activities/{id}/participants/{userID}
type HandleParticipationRequest struct {
	Action string `json:"action"` // accept | reject
}

// Participant — запись в списке участников активности
type Participant struct {
	User        UserPublic `json:"user"`
	Message     string     `json:"message"`
	RequestedAt string     `json:"requested_at"`
	ValidatedAt *string    `json:"validated_at"`
}

// ParticipantsResponse — ответ GET /api/activities/{id}/participants
type ParticipantsResponse struct {
	Validated []Participant `json:"validated"`
	Pending   []Participant `json:"pending"`
	Rejected  []Participant `json:"rejected"`
}
