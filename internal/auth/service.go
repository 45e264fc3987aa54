// Package auth keeps the user directory and the signed-in session. The
// directory starts with two demo accounts; registrations live in memory.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"roomdesigner/internal/metrics"
	"roomdesigner/internal/model"
	"roomdesigner/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidAccount     = errors.New("name, email and password are required")
)

type seedAccount struct {
	user     model.User
	password string
}

var demoAccounts = []seedAccount{
	{model.User{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: model.RoleAdmin}, "admin123"},
	{model.User{ID: "2", Name: "Regular User", Email: "user@example.com", Role: model.RoleUser}, "user123"},
}

type account struct {
	user model.User
	hash []byte
}

// Session is the persisted sign-in record.
type Session struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

type Service struct {
	mu       sync.RWMutex
	kv       storage.KV
	log      logrus.FieldLogger
	cost     int
	accounts []account
	session  Session
}

type Option func(*Service)

// WithBcryptCost sets the hashing cost; tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

// NewService builds the directory with the demo accounts.
func NewService(kv storage.KV, opts ...Option) (*Service, error) {
	s := &Service{
		kv:   kv,
		log:  logrus.StandardLogger(),
		cost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, a := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), s.cost)
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		s.accounts = append(s.accounts, account{user: a.user, hash: hash})
	}
	return s, nil
}

// Load restores the persisted session, if any.
func (s *Service) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, storage.AuthKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	if sess.User == nil {
		sess.IsAuthenticated = false
	}
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
	return nil
}

// Authenticate checks credentials without touching the session.
func (s *Service) Authenticate(email, password string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := s.findByEmail(email)
	if a == nil || bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
		metrics.ObserveLogin(false)
		return model.User{}, ErrInvalidCredentials
	}
	metrics.ObserveLogin(true)
	return a.user, nil
}

// CreateAccount adds a user with id len(users)+1. Duplicate emails fail
// without changing anything.
func (s *Service) CreateAccount(name, email, password string, role model.Role) (model.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return model.User{}, ErrInvalidAccount
	}
	if role != model.RoleAdmin {
		role = model.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findByEmail(email) != nil {
		return model.User{}, ErrEmailTaken
	}
	u := model.User{
		ID:    strconv.Itoa(len(s.accounts) + 1),
		Name:  name,
		Email: email,
		Role:  role,
	}
	s.accounts = append(s.accounts, account{user: u, hash: hash})
	s.log.WithField("user", u.ID).Info("Registered user")
	return u, nil
}

// Login authenticates and stores the signed-in session.
func (s *Service) Login(ctx context.Context, email, password string) (model.User, error) {
	u, err := s.Authenticate(email, password)
	if err != nil {
		return model.User{}, err
	}
	return u, s.setSession(ctx, &u)
}

// Register creates an account and signs it in.
func (s *Service) Register(ctx context.Context, name, email, password string, role model.Role) (model.User, error) {
	u, err := s.CreateAccount(name, email, password, role)
	if err != nil {
		return model.User{}, err
	}
	return u, s.setSession(ctx, &u)
}

func (s *Service) Logout(ctx context.Context) error {
	return s.setSession(ctx, nil)
}

// Current returns the signed-in user.
func (s *Service) Current() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.IsAuthenticated || s.session.User == nil {
		return model.User{}, false
	}
	return *s.session.User, true
}

// Lookup finds a user by id.
func (s *Service) Lookup(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.user.ID == id {
			return a.user, true
		}
	}
	return model.User{}, false
}

func (s *Service) findByEmail(email string) *account {
	for i := range s.accounts {
		if s.accounts[i].user.Email == email {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *Service) setSession(ctx context.Context, u *model.User) error {
	sess := Session{User: u, IsAuthenticated: u != nil}
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Put(ctx, storage.AuthKey, data); err != nil {
		s.log.WithError(err).Error("Failed to persist session")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
