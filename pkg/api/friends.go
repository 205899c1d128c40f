package api

// FriendEntry — запись в списке друзей
type FriendEntry struct {
	FriendshipID int64      `json:"friendship_id"`
	User         UserPublic `json:"user"`
	Since        string     `json:"since"`
}

// FriendsResponse — страница списка друзей
type FriendsResponse struct {
	Friends     []FriendEntry `json:"friends"`
	Total       int           `json:"total"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"current_page"`
}

// FriendRequestEntry — входящая или исходящая заявка в друзья
type FriendRequestEntry struct {
	FriendshipID int64      `json:"friendship_id"`
	User         UserPublic `json:"user"`
	RequestedAt  string     `json:"requested_at"`
}

// FriendRequestsResponse — ответ GET /api/friends/requests
type FriendRequestsResponse struct {
	Received []FriendRequestEntry `json:"received"`
	Sent     []FriendRequestEntry `json:"sent"`
}

// SendFriendRequestResponse — ответ POST /api/friends/request/{userID}
type SendFriendRequestResponse struct {
	Message      string `json:"message"`
	FriendshipID int64  `json:"friendship_id"`
}

// BlockedEntry — запись в черном списке
type BlockedEntry struct {
	User      UserPublic `json:"user"`
	BlockedAt string     `json:"blocked_at"`
}

// BlockedResponse — ответ GET /api/friends/blocked
type BlockedResponse struct {
	Blocked []BlockedEntry `json:"blocked"`
}

// FriendStatusResponse — ответ GET /api/friends/status/{userID}
type FriendStatusResponse struct {
	Status       string `json:"status"`
	FriendshipID *int64 `json:"friendship_id"`
}
