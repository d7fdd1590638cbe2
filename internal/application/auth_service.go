package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
	"github.com/founditapp/foundit-backend/pkg/helpers"
	"github.com/founditapp/foundit-backend/pkg/mailer"
)

// AuthService implements signup, login, logout and session refresh over the
// durable store. Credentials are bcrypt-hashed; a login failure is reported
// as ErrInvalidCredentials without distinguishing unknown users from wrong
// passwords.
type AuthService struct {
	Users    repository.UserRepository
	Sessions repository.SessionStore
	JWT      *helpers.JWTManager
	Rabbit   *helpers.RabbitPublisher
	Logger   *logrus.Logger
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionStore, jwt *helpers.JWTManager, rabbit *helpers.RabbitPublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, JWT: jwt, Rabbit: rabbit, Logger: logger}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// Signup creates the account, establishes a session and returns tokens.
// A duplicate username fails with ErrUsernameTaken and leaves both the
// users collection and the session state untouched.
func (s *AuthService) Signup(ctx context.Context, username, password, email string) (*entity.Session, TokenPair, error) {
	existing, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if existing != nil {
		return nil, TokenPair{}, ErrUsernameTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	u := entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, TokenPair{}, err
	}

	sess, pair, err := s.establishSession(ctx, &u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	s.queueWelcomeEmail(ctx, &u)
	return sess, pair, nil
}

// Login verifies the claimed identity and establishes a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.Session, TokenPair, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if u == nil || !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	return s.establishSession(ctx, u)
}

func (s *AuthService) establishSession(ctx context.Context, u *entity.User) (*entity.Session, TokenPair, error) {
	sess := entity.Session{
		UserID:    u.ID,
		Username:  u.Username,
		SID:       uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Sessions.Put(ctx, sess); err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.issueTokens(&sess)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return &sess, pair, nil
}

func (s *AuthService) issueTokens(sess *entity.Session) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(sess.UserID, sess.SID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", sess.UserID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(sess.UserID, sess.SID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", sess.UserID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh validates a refresh token against the stored session, rotates the
// session id and returns a fresh token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*entity.Session, TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	sess, err := s.Sessions.Get(ctx, claims.UserID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if sess == nil || sess.SID != claims.SessionID {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	sess.SID = uuid.NewString()
	if err := s.Sessions.Put(ctx, *sess); err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.issueTokens(sess)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return sess, pair, nil
}

// Logout deletes the session record only; the user record is untouched.
func (s *AuthService) Logout(ctx context.Context, sess *entity.Session) error {
	if sess == nil {
		return ErrNoSession
	}
	return s.Sessions.Delete(ctx, sess.UserID)
}

// CurrentUser resolves a session's user. Nil session or missing user
// resolves to ErrUserNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *AuthService) queueWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Rabbit == nil || u.Email == "" {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Username": u.Username},
	}
	if err := s.Rabbit.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("queue welcome email failed")
	}
}
