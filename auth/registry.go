package auth

import (
	"time"

	"atrium/rdx"
)

const sessionTTL = 12 * time.Hour

const sessionKeyPrefix = "session:"

// sessionRegistry holds the single live token per account. Tests
// substitute an in-memory fake.
type sessionRegistry interface {
	Set(userID, token string) error
	Get(userID string) (string, error)
	Del(userID string) error
}

// redisRegistry keys tokens by account id with the session TTL, so an
// abandoned session expires server-side without a logout.
type redisRegistry struct{}

func (redisRegistry) Set(userID, token string) error {
	return rdx.SetWithExpiry(sessionKeyPrefix+userID, token, sessionTTL)
}

func (redisRegistry) Get(userID string) (string, error) {
	return rdx.RdxGet(sessionKeyPrefix + userID)
}

func (redisRegistry) Del(userID string) error {
	_, err := rdx.RdxDel(sessionKeyPrefix + userID)
	return err
}

var sessions sessionRegistry = redisRegistry{}
