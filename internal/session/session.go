package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession = errors.New("no session")
	ErrExpired   = errors.New("session expired")
)

// Provider is the single place the rest of the portal reads auth state
// from. The stored session (token, user, theme) is persisted to a JSON
// file so a restart picks up where the last run left off; everything else
// in the portal is memory-only.
type Provider struct {
	mu   sync.Mutex
	path string
	data sessionData
}

type sessionData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
	Theme string      `json:"theme,omitempty"`
}

func NewProvider(path string) (*Provider, error) {
	p := &Provider{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &p.data); err != nil {
		// a corrupt session file means logged out, not a fatal start
		p.data = sessionData{}
	}
	return p, nil
}

// Token returns the bearer token, refusing one whose JWT exp claim has
// passed so callers fail fast instead of sending a doomed request. The
// signature is not checked here; the backend owns verification.
func (p *Provider) Token() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.data.Token == "" {
		return "", ErrNoSession
	}
	if expired(p.data.Token, time.Now()) {
		return "", ErrExpired
	}
	return p.data.Token, nil
}

func (p *Provider) UserID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.User.UserID
}

func (p *Provider) User() models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.User
}

func (p *Provider) Set(token string, user models.User) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Token = token
	p.data.User = user
	return p.persist()
}

func (p *Provider) SetTheme(theme string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.Theme = theme
	return p.persist()
}

func (p *Provider) Theme() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Theme
}

// Clear logs out: state and file both go away.
func (p *Provider) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = sessionData{}
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (p *Provider) persist() error {
	raw, err := json.Marshal(p.data)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(p.path, raw, 0o600)
}

func expired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// opaque tokens carry no expiry we can read
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
