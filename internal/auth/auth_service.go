package auth

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/employee"
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserStore is the slice of the employee store that auth needs.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	FindByEmail(ctx context.Context, email string) (*employee.Employee, error)
	Update(ctx context.Context, e *employee.Employee) error
}

type Config struct {
	Secret     []byte
	SessionTTL time.Duration
}

type Claims struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken string, resp AuthResponse, err error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, sessionID string) (AuthResponse, error)
	Verify(ctx context.Context, token string) (middleware.Principal, error)
	Navigation(role string) []NavItem
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	users    UserStore
	sessions SessionStore
	cfg      Config
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(users UserStore, sessions SessionStore, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return &service{users: users, sessions: sessions, cfg: cfg, now: time.Now, logger: l}
}

// Login checks demo accounts against the demo password. Any other known
// user logs in when the stored password is empty or matches.
func (s *service) Login(ctx context.Context, email, password string) (string, AuthResponse, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Info("login rejected", zap.String("reason", "unknown email"))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if user.Deleted() {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	_, demo := DemoAccounts[strings.ToLower(email)]
	switch {
	case demo && password != DemoPassword:
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	case !demo && user.Password != "" && user.Password != password:
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	now := s.now()
	session := Session{
		ID:        uuid.NewString(),
		User:      newSessionUser(*user),
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("save session failed", zap.Error(err))
		return "", AuthResponse{}, err
	}

	token, err := s.generateToken(session, now)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return token, toAuthResponse(session.User), nil
}

func (s *service) generateToken(session Session, now time.Time) (string, error) {
	claims := Claims{
		UserID:    session.User.ID,
		Role:      session.User.Role,
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// Me answers from the employee store, so profile and role changes show
// without logging in again.
func (s *service) Me(ctx context.Context, sessionID string) (AuthResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return AuthResponse{}, err
	}
	user, err := s.activeUser(ctx, session.User.ID)
	if err != nil {
		return AuthResponse{}, err
	}
	return toAuthResponse(newSessionUser(*user)), nil
}

func (s *service) activeUser(ctx context.Context, id string) (*employee.Employee, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil || user.Deleted() {
		return nil, autherrors.ErrInvalidToken
	}
	return user, nil
}

// Verify accepts a token only while its session is still stored, so
// Logout invalidates tokens that have not expired yet. The role comes
// from the employee store, not from the session snapshot.
func (s *service) Verify(ctx context.Context, token string) (middleware.Principal, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid || claims.SessionID == "" {
		return middleware.Principal{}, autherrors.ErrInvalidToken
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, autherrors.ErrSessionNotFound) {
			return middleware.Principal{}, err
		}
		s.logger.Error("load session failed", zap.Error(err))
		return middleware.Principal{}, err
	}
	if session.User.ID != claims.UserID {
		return middleware.Principal{}, autherrors.ErrInvalidToken
	}
	user, err := s.activeUser(ctx, session.User.ID)
	if err != nil {
		return middleware.Principal{}, err
	}

	return middleware.Principal{
		UserID:    user.ID,
		Role:      user.Role,
		SessionID: session.ID,
	}, nil
}

var navigation = []struct {
	item     NavItem
	resource rbac.Resource
	roles    []rbac.Role
}{
	{item: NavItem{Name: "Dashboard", Href: "/dashboard"}},
	{item: NavItem{Name: "Attendance", Href: "/attendance"}, resource: rbac.ResourceAttendance},
	{item: NavItem{Name: "Leaves", Href: "/leaves"}, resource: rbac.ResourceLeaves},
	{item: NavItem{Name: "Shifts", Href: "/shifts"}, resource: rbac.ResourceShifts},
	{item: NavItem{Name: "Payroll", Href: "/payroll"}, resource: rbac.ResourcePayroll},
	{item: NavItem{Name: "Employees", Href: "/employees"}, resource: rbac.ResourceUsers},
	{item: NavItem{Name: "Reports", Href: "/reports"}, roles: []rbac.Role{rbac.RoleSuperAdmin, rbac.RoleAdmin, rbac.RoleFinance}},
	{item: NavItem{Name: "Settings", Href: "/settings"}, roles: []rbac.Role{rbac.RoleSuperAdmin, rbac.RoleAdmin}},
}

func (s *service) Navigation(role string) []NavItem {
	out := make([]NavItem, 0, len(navigation))
	for _, n := range navigation {
		switch {
		case n.resource != "":
			if !rbac.Allowed(role, string(n.resource), string(rbac.ActionRead)) {
				continue
			}
		case n.roles != nil:
			if !slices.Contains(n.roles, rbac.Role(role)) {
				continue
			}
		}
		out = append(out, n.item)
	}
	return out
}
