package storage

import "errors"

// ErrNotFound возвращается, когда запрошенный ключ отсутствует в хранилище
var ErrNotFound = errors.New("credential not found")
