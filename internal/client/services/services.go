// Package services содержит stateless обертки над REST ресурсами Gocial.
// Каждый сервис только формирует запрос (метод, путь, query, тело) и
// типизирует ответ. Никаких повторов и обработки 401 здесь нет — это
// целиком делегировано transport.Client.
package services

import "github.com/iudanet/gocial-client/internal/client/transport"

// Services агрегирует все ресурсные сервисы поверх одного клиента
type Services struct {
	Auth          *AuthService
	Activities    *ActivitiesService
	Friends       *FriendsService
	Messages      *MessagesService
	Notifications *NotificationsService
	Users         *UsersService
}

// New создает набор сервисов
func New(client *transport.Client) *Services {
	return &Services{
		Auth:          &AuthService{client: client},
		Activities:    &ActivitiesService{client: client},
		Friends:       &FriendsService{client: client},
		Messages:      &MessagesService{client: client},
		Notifications: &NotificationsService{client: client},
		Users:         &UsersService{client: client},
	}
}
