package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iudanet/gocial-client/internal/client/transport"
	"github.com/iudanet/gocial-client/pkg/api"
)

// ActivitiesService оборачивает эндпоинты /api/activities
type ActivitiesService struct {
	client *transport.Client
}

// ActivityFilters — фильтры списка активностей. Отсутствующие и ложные
// значения не попадают в query string: бэкенд трактует "false" как
// истину, а пустую строку как фильтр.
type ActivityFilters struct {
	Type      api.ActivityType
	Category  string
	Date      string
	Lat       *float64
	Lng       *float64
	Radius    float64
	GirlsOnly bool
	FreeOnly  bool
	Page      int
	PerPage   int
}

// Values строит query string, опуская незаполненные параметры
func (f ActivityFilters) Values() url.Values {
	params := url.Values{}
	if f.Type != "" {
		params.Set("type", string(f.Type))
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Date != "" {
		params.Set("date", f.Date)
	}
	if f.Lat != nil {
		params.Set("lat", strconv.FormatFloat(*f.Lat, 'f', -1, 64))
	}
	if f.Lng != nil {
		params.Set("lng", strconv.FormatFloat(*f.Lng, 'f', -1, 64))
	}
	if f.Radius != 0 {
		params.Set("radius", strconv.FormatFloat(f.Radius, 'f', -1, 64))
	}
	if f.GirlsOnly {
		params.Set("girls_only", "true")
	}
	if f.FreeOnly {
		params.Set("free_only", "true")
	}
	if f.Page != 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage != 0 {
		params.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return params
}

// List возвращает страницу активностей по фильтрам
func (s *ActivitiesService) List(ctx context.Context, filters ActivityFilters) (*api.ActivitiesResponse, error) {
	var resp api.ActivitiesResponse
	if err := s.client.Get(ctx, "/api/activities/", filters.Values(), &resp); err != nil {
		return nil, fmt.Errorf("list activities request failed: %w", err)
	}
	return &resp, nil
}

// Get возвращает одну активность
func (s *ActivitiesService) Get(ctx context.Context, id int64) (*api.Activity, error) {
	var resp api.Activity
	if err := s.client.Get(ctx, fmt.Sprintf("/api/activities/%d", id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get activity request failed: %w", err)
	}
	return &resp, nil
}

// Create создает активность
func (s *ActivitiesService) Create(ctx context.Context, req api.CreateActivityRequest) (*api.ActivityResponse, error) {
	var resp api.ActivityResponse
	if err := s.client.Post(ctx, "/api/activities/", req, &resp); err != nil {
		return nil, fmt.Errorf("create activity request failed: %w", err)
	}
	return &resp, nil
}

// Update частично обновляет активность (нулевые поля не отправляются)
func (s *ActivitiesService) Update(ctx context.Context, id int64, req api.CreateActivityRequest) (*api.ActivityResponse, error) {
	var resp api.ActivityResponse
	if err := s.client.Put(ctx, fmt.Sprintf("/api/activities/%d", id), req, &resp); err != nil {
		return nil, fmt.Errorf("update activity request failed: %w", err)
	}
	return &resp, nil
}

// Delete удаляет активность
func (s *ActivitiesService) Delete(ctx context.Context, id int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Delete(ctx, fmt.Sprintf("/api/activities/%d", id), nil, &resp); err != nil {
		return nil, fmt.Errorf("delete activity request failed: %w", err)
	}
	return &resp, nil
}

// RequestParticipation отправляет заявку на участие
func (s *ActivitiesService) RequestParticipation(ctx context.Context, activityID int64, message string) (*api.ParticipateResponse, error) {
	var resp api.ParticipateResponse
	path := fmt.Sprintf("/api/activities/%d/participate", activityID)
	if err := s.client.Post(ctx, path, api.ParticipateRequest{Message: message}, &resp); err != nil {
		return nil, fmt.Errorf("participate request failed: %w", err)
	}
	return &resp, nil
}

// CancelParticipation отменяет заявку или участие
func (s *ActivitiesService) CancelParticipation(ctx context.Context, activityID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	path := fmt.Sprintf("/api/activities/%d/participate", activityID)
	if err := s.client.Delete(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("cancel participation request failed: %w", err)
	}
	return &resp, nil
}

// HandleParticipation принимает или отклоняет заявку участника
// (только для организатора). action: accept | reject.
func (s *ActivitiesService) HandleParticipation(ctx context.Context, activityID, userID int64, action string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	path := fmt.Sprintf("/api/activities/%d/participants/%d", activityID, userID)
	if err := s.client.Put(ctx, path, api.HandleParticipationRequest{Action: action}, &resp); err != nil {
		return nil, fmt.Errorf("handle participation request failed: %w", err)
	}
	return &resp, nil
}

// Participants возвращает участников активности по статусам
func (s *ActivitiesService) Participants(ctx context.Context, activityID int64) (*api.ParticipantsResponse, error) {
	var resp api.ParticipantsResponse
	path := fmt.Sprintf("/api/activities/%d/participants", activityID)
	if err := s.client.Get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("participants request failed: %w", err)
	}
	return &resp, nil
}

// Like ставит лайк активности
func (s *ActivitiesService) Like(ctx context.Context, activityID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/api/activities/%d/like", activityID), nil, &resp); err != nil {
		return nil, fmt.Errorf("like request failed: %w", err)
	}
	return &resp, nil
}

// Unlike снимает лайк
func (s *ActivitiesService) Unlike(ctx context.Context, activityID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Delete(ctx, fmt.Sprintf("/api/activities/%d/like", activityID), nil, &resp); err != nil {
		return nil, fmt.Errorf("unlike request failed: %w", err)
	}
	return &resp, nil
}

// Liked возвращает страницу лайкнутых активностей
func (s *ActivitiesService) Liked(ctx context.Context, page int) (*api.ActivitiesResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var resp api.ActivitiesResponse
	if err := s.client.Get(ctx, "/api/activities/liked", params, &resp); err != nil {
		return nil, fmt.Errorf("liked activities request failed: %w", err)
	}
	return &resp, nil
}

// Hosting возвращает активности, которые организует текущий пользователь
func (s *ActivitiesService) Hosting(ctx context.Context, page int, includePast bool) (*api.ActivitiesResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("include_past", strconv.FormatBool(includePast))

	var resp api.ActivitiesResponse
	if err := s.client.Get(ctx, "/api/activities/hosting", params, &resp); err != nil {
		return nil, fmt.Errorf("hosting activities request failed: %w", err)
	}
	return &resp, nil
}

// Participating возвращает активности, в которых пользователь участвует.
// status: pending | validated | rejected | cancelled.
func (s *ActivitiesService) Participating(ctx context.Context, page int, status string, includePast bool) (*api.ActivitiesResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("status", status)
	params.Set("include_past", strconv.FormatBool(includePast))

	var resp api.ActivitiesResponse
	if err := s.client.Get(ctx, "/api/activities/participating", params, &resp); err != nil {
		return nil, fmt.Errorf("participating activities request failed: %w", err)
	}
	return &resp, nil
}
