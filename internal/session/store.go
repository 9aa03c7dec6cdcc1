// Package session is the single read/write surface for the persisted
// auth state. Everything else treats the session as read-only; only the
// login, logout and 401 paths mutate it.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// Storage keys. Read with string fallbacks when absent.
const (
	keyToken  = "token"
	keyRole   = "user_role"
	keyUserID = "user_id"
	keyName   = "user_name"
	keyEmail  = "user_email"
	keyImage  = "user_image"
)

// Session is the authenticated identity carried across commands.
// An empty Token means unauthenticated.
type Session struct {
	Token     string
	Role      string
	UserID    int
	Name      string
	Email     string
	AvatarURL string
}

func (s Session) Authenticated() bool { return s.Token != "" }

// Partial names the fields a Set call wants to write; nil fields are
// left untouched.
type Partial struct {
	Token     *string
	Role      *string
	UserID    *int
	Name      *string
	Email     *string
	AvatarURL *string
}

// Store mirrors the persisted session in memory. Safe for concurrent
// readers; writes happen only on login/logout/401.
type Store struct {
	mu  sync.Mutex
	cur *Session
}

func NewStore() *Store { return &Store{} }

// Get returns the current session. A token whose embedded expiry has
// passed is treated as absent so the caller falls through to the login
// redirect instead of burning a request on a guaranteed 401.
func (st *Store) Get() Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.cur == nil {
		st.cur = &Session{
			Token:     viper.GetString(keyToken),
			Role:      viper.GetString(keyRole),
			UserID:    viper.GetInt(keyUserID),
			Name:      viper.GetString(keyName),
			Email:     viper.GetString(keyEmail),
			AvatarURL: viper.GetString(keyImage),
		}
	}
	s := *st.cur
	if s.Token != "" && tokenExpired(s.Token) {
		s.Token = ""
	}
	return s
}

// Set writes the given fields to persistent storage and updates the
// in-memory mirror.
func (st *Store) Set(p Partial) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	cur := st.cur
	if cur == nil {
		cur = &Session{}
	}
	if p.Token != nil {
		cur.Token = *p.Token
		viper.Set(keyToken, *p.Token)
	}
	if p.Role != nil {
		cur.Role = *p.Role
		viper.Set(keyRole, *p.Role)
	}
	if p.UserID != nil {
		cur.UserID = *p.UserID
		viper.Set(keyUserID, *p.UserID)
	}
	if p.Name != nil {
		cur.Name = *p.Name
		viper.Set(keyName, *p.Name)
	}
	if p.Email != nil {
		cur.Email = *p.Email
		viper.Set(keyEmail, *p.Email)
	}
	if p.AvatarURL != nil {
		cur.AvatarURL = *p.AvatarURL
		viper.Set(keyImage, *p.AvatarURL)
	}
	st.cur = cur
	return save()
}

// Clear removes the token and role; used on logout or when a request
// fails with an authentication error.
func (st *Store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	viper.Set(keyToken, "")
	viper.Set(keyRole, "")
	st.cur = &Session{}
	return save()
}

// save persists the viper state, creating the config file on first use.
func save() error {
	if err := viper.WriteConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return viper.SafeWriteConfig()
		}
		// If it exists but failed to write, try the default path.
		home, herr := os.UserHomeDir()
		if herr != nil {
			return err
		}
		return viper.WriteConfigAs(filepath.Join(home, ".smch-cli.yaml"))
	}
	return nil
}

// tokenExpired reports whether tok is a JWT with an exp claim in the
// past. Opaque (non-JWT) tokens are never considered expired locally;
// the server decides via 401.
func tokenExpired(tok string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
