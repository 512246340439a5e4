package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// CodeStore keeps confirmation codes as short-lived single-use credentials.
// Only a hash of the code is ever stored.
type CodeStore interface {
	Save(ctx context.Context, username, code string, ttl time.Duration) error
	Verify(ctx context.Context, username, code string) error
	Delete(ctx context.Context, username string) error
}

type redisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(client *redis.Client) CodeStore {
	return &redisCodeStore{client: client}
}

func codeKey(username string) string {
	return "confirmation_code:" + username
}

// Save overwrites any previous code for the user, so re-signup semantics are
// "latest code wins".
func (s *redisCodeStore) Save(ctx context.Context, username, code string, ttl time.Duration) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash confirmation code: %w", err)
	}
	if err := s.client.Set(ctx, codeKey(username), hash, ttl).Err(); err != nil {
		return fmt.Errorf("store confirmation code: %w", err)
	}
	return nil
}

// Verify returns ErrInvalidCode when the code is missing, expired, or does
// not match the stored hash.
func (s *redisCodeStore) Verify(ctx context.Context, username, code string) error {
	hash, err := s.client.Get(ctx, codeKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrInvalidCode
	}
	if err != nil {
		return fmt.Errorf("load confirmation code: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) != nil {
		return ErrInvalidCode
	}
	return nil
}

func (s *redisCodeStore) Delete(ctx context.Context, username string) error {
	return s.client.Del(ctx, codeKey(username)).Err()
}
