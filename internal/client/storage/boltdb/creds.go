package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gocial-client/internal/client/storage"
	"github.com/iudanet/gocial-client/pkg/api"
)

var (
	// Три ключа сессии внутри bucket credentials
	keyAccessToken  = []byte("access_token")
	keyRefreshToken = []byte("refresh_token")
	keyUser         = []byte("user")

	// Ключ постоянного идентификатора установки внутри bucket meta
	keyClientID = []byte("client_id")
)

// Compile-time check that Storage implements CredentialStore
var _ storage.CredentialStore = (*Storage)(nil)

// SetAccessToken stores the access token
func (s *Storage) SetAccessToken(ctx context.Context, token string) error {
	return s.putString(keyAccessToken, token)
}

// AccessToken returns the stored access token
func (s *Storage) AccessToken(ctx context.Context) (string, error) {
	return s.getString(keyAccessToken)
}

// RefreshToken returns the stored refresh token
func (s *Storage) RefreshToken(ctx context.Context) (string, error) {
	return s.getString(keyRefreshToken)
}

// SetUser overwrites the cached user record
func (s *Storage) SetUser(ctx context.Context, user *api.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}
		return bucket.Put(keyUser, data)
	})
}

// User returns the cached user record
func (s *Storage) User(ctx context.Context) (*api.User, error) {
	var user *api.User

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		data := bucket.Get(keyUser)
		if data == nil {
			return storage.ErrNotFound
		}

		user = &api.User{}
		if err := json.Unmarshal(data, user); err != nil {
			return fmt.Errorf("failed to unmarshal user: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SaveSession stores all three session keys in one transaction
func (s *Storage) SaveSession(
	ctx context.Context,
	accessToken, refreshToken string,
	user *api.User,
) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		if err := bucket.Put(keyAccessToken, []byte(accessToken)); err != nil {
			return fmt.Errorf("failed to save access token: %w", err)
		}
		if err := bucket.Put(keyRefreshToken, []byte(refreshToken)); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		if err := bucket.Put(keyUser, userData); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}

		return nil
	})
}

// Clear removes all session keys atomically
func (s *Storage) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		for _, key := range [][]byte{keyAccessToken, keyRefreshToken, keyUser} {
			if err := bucket.Delete(key); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}

		return nil
	})
}

// ClientID returns a stable install identifier, generating one on first use.
// Идентификатор переживает logout: Clear его не трогает.
func (s *Storage) ClientID(ctx context.Context) (string, error) {
	var id string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMeta)
		if bucket == nil {
			return fmt.Errorf("meta bucket not found")
		}

		if data := bucket.Get(keyClientID); data != nil {
			id = string(data)
			return nil
		}

		id = uuid.New().String()
		if err := bucket.Put(keyClientID, []byte(id)); err != nil {
			return fmt.Errorf("failed to save client id: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// putString сохраняет строковое значение в bucket credentials
func (s *Storage) putString(key []byte, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}
		return bucket.Put(key, []byte(value))
	})
}

// getString читает строковое значение из bucket credentials
func (s *Storage) getString(key []byte) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		data := bucket.Get(key)
		if data == nil {
			return storage.ErrNotFound
		}

		value = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}
