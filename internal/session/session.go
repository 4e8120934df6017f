// Package session provides the durable per-browser session store: one
// opaque upstream token and one serialized user record per session,
// persisted in SQLite so sessions survive an application restart.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"

	"inhome/internal/domain"
)

// Session keys for the persisted credential pair.
const (
	keyToken = "token"
	keyUser  = "user"
)

// OpenDB opens the SQLite database backing the session store and ensures
// the schema sqlite3store expects.
func OpenDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create session db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	stmts := []string{
		"CREATE TABLE IF NOT EXISTS sessions (token TEXT PRIMARY KEY, data BLOB NOT NULL, expiry REAL NOT NULL);",
		"CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);",
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return db, nil
}

// NewManager creates a session manager backed by the SQLite store.
func NewManager(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev
	return sm
}

// Store adapts the session manager to the domain.SessionStore port.
type Store struct {
	sm *scs.SessionManager
}

// NewStore creates a Store over the given session manager.
func NewStore(sm *scs.SessionManager) *Store {
	return &Store{sm: sm}
}

var _ domain.SessionStore = (*Store)(nil)

// Load returns the persisted token and cached user. A corrupt cached user
// record loads as absent rather than failing; the caller then treats the
// session as token-only and re-fetches the profile.
func (s *Store) Load(ctx context.Context) (string, *domain.User) {
	token := s.sm.GetString(ctx, keyToken)
	raw := s.sm.GetBytes(ctx, keyUser)
	if len(raw) == 0 {
		return token, nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return token, nil
	}
	return token, &user
}

// Save persists the token and cached user together.
func (s *Store) Save(ctx context.Context, token string, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode cached user: %w", err)
	}
	s.sm.Put(ctx, keyToken, token)
	s.sm.Put(ctx, keyUser, raw)
	return nil
}

// Clear removes the credential pair by destroying the session.
func (s *Store) Clear(ctx context.Context) error {
	return s.sm.Destroy(ctx)
}
