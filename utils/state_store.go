package utils

import (
	"context"
	"sync"
	"time"
)

// OAuth state tokens are single-use CSRF guards. Redis is preferred so a
// restart or second instance honors tokens issued elsewhere; the in-memory
// map is the single-instance fallback.

var (
	memStates   = map[string]time.Time{}
	memStatesMu sync.Mutex
)

// SaveState stores an OAuth state token with a TTL.
func SaveState(state string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Set(ctx, "oauth:state:"+state, "1", ttl).Err(); err == nil {
			return
		}
	}
	memStatesMu.Lock()
	memStates[state] = time.Now().Add(ttl)
	memStatesMu.Unlock()
}

// ConsumeState validates and removes a state token, returning whether it
// was known and unexpired.
func ConsumeState(state string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if v, err := rc.GetDel(ctx, "oauth:state:"+state).Result(); err == nil {
			return v != ""
		}
	}
	memStatesMu.Lock()
	expiresAt, ok := memStates[state]
	if ok {
		delete(memStates, state)
	}
	memStatesMu.Unlock()
	return ok && time.Now().Before(expiresAt)
}
