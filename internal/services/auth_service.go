package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/quickbite/internal/models"
	"github.com/example/quickbite/internal/store"
	"github.com/example/quickbite/internal/utils"
)

// Principal is the authenticated caller, rebuilt from the user directory on
// every request so role and activation changes are seen immediately.
type Principal struct {
	ID               uint
	PhoneNumber      string
	Role             models.Role
	ActivationStatus bool
	Token            string

	otp string
}

// IsAdmin reports whether the caller holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// AuthConfig tunes token issuance and OTP delivery.
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	DeliverOTP bool
}

// AuthService handles signup, OTP verification, login, logout and the
// per-request token gate.
type AuthService struct {
	users   store.UserStore
	revoked RevocationStore
	sender  OTPSender
	cfg     AuthConfig
	logger  *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(users store.UserStore, revoked RevocationStore, sender OTPSender, cfg AuthConfig, logger *zap.Logger) *AuthService {
	if sender == nil {
		sender = NoopSender{}
	}
	return &AuthService{
		users:   users,
		revoked: revoked,
		sender:  sender,
		cfg:     cfg,
		logger:  logger,
	}
}

// SignUpInput carries the fields of a new account.
type SignUpInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	Password    string
}

// SignUp registers an unverified customer and returns a session token.
// The OTP is echoed in the view only when SMS delivery is disabled.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (string, models.UserView, error) {
	if _, err := s.users.FindUserByPhone(ctx, in.PhoneNumber); err == nil {
		return "", models.UserView{}, newError(KindConflict, MsgSignupConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", models.UserView{}, internal(err)
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", models.UserView{}, internal(fmt.Errorf("hash password: %w", err))
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return "", models.UserView{}, internal(err)
	}

	user := &models.User{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		PhoneNumber:      in.PhoneNumber,
		Address:          in.Address,
		PasswordHash:     passwordHash,
		OTP:              code,
		ActivationStatus: false,
		Role:             models.RoleCustomer,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", models.UserView{}, newError(KindConflict, MsgSignupConflict)
		}
		return "", models.UserView{}, internal(err)
	}

	s.dispatchOTP(ctx, user.PhoneNumber, code)

	token, err := utils.GenerateToken(s.cfg.JWTSecret, utils.TokenClaims{
		UserID:           user.ID,
		PhoneNumber:      user.PhoneNumber,
		ActivationStatus: user.ActivationStatus,
	}, s.cfg.TokenTTL)
	if err != nil {
		return "", models.UserView{}, internal(fmt.Errorf("sign token: %w", err))
	}

	view := user.View()
	if !s.cfg.DeliverOTP {
		view.OTP = code
	}
	return token, view, nil
}

// Verify activates the caller's account when otp matches the stored code.
func (s *AuthService) Verify(ctx context.Context, p *Principal, otp string) (models.UserView, error) {
	if otp != p.otp {
		return models.UserView{}, newError(KindForbidden, MsgWrongOTP)
	}

	user, err := s.users.UpdateUser(ctx, p.ID, map[string]interface{}{"status": true})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.UserView{}, newError(KindNotFound, MsgUserNotFound)
		}
		return models.UserView{}, internal(err)
	}

	return user.View(), nil
}

// ResendOTP replaces the caller's code and sends the new one.
func (s *AuthService) ResendOTP(ctx context.Context, p *Principal) error {
	code, err := utils.GenerateOTP()
	if err != nil {
		return internal(err)
	}

	if _, err := s.users.UpdateUser(ctx, p.ID, map[string]interface{}{"otp": code}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return newError(KindNotFound, MsgUserNotFound)
		}
		return internal(err)
	}

	s.dispatchOTP(ctx, p.PhoneNumber, code)
	return nil
}

// Login checks credentials and issues a token that carries the user's role.
func (s *AuthService) Login(ctx context.Context, phoneNumber, password string) (string, models.UserView, error) {
	user, err := s.users.FindUserByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", models.UserView{}, newError(KindNotFound, MsgUserNotFound)
		}
		return "", models.UserView{}, internal(err)
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return "", models.UserView{}, newError(KindUnauthorized, MsgWrongCredentials)
	}

	token, err := utils.GenerateToken(s.cfg.JWTSecret, utils.TokenClaims{
		UserID:           user.ID,
		PhoneNumber:      user.PhoneNumber,
		ActivationStatus: user.ActivationStatus,
		Role:             string(user.Role),
	}, s.cfg.TokenTTL)
	if err != nil {
		return "", models.UserView{}, internal(fmt.Errorf("sign token: %w", err))
	}

	return token, user.View(), nil
}

// Logout revokes token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return newError(KindUnauthorized, MsgMissingToken)
	}

	claims, err := utils.ParseToken(s.cfg.JWTSecret, token)
	if err != nil {
		return newError(KindUnauthorized, MsgInvalidToken)
	}

	if err := s.revoked.Add(ctx, token, claims.RemainingLifetime()); err != nil {
		return internal(fmt.Errorf("revoke token: %w", err))
	}
	return nil
}

// Authenticate is the gate in front of every protected route. It verifies
// the bearer token, reloads the user and rejects revoked tokens.
func (s *AuthService) Authenticate(ctx context.Context, authorization string) (*Principal, error) {
	token := BearerToken(authorization)
	if token == "" {
		return nil, newError(KindValidation, MsgInvalidRequest)
	}

	claims, err := utils.ParseToken(s.cfg.JWTSecret, token)
	if err != nil {
		return nil, newError(KindValidation, MsgInvalidToken)
	}

	user, err := s.users.FindUserByPhone(ctx, claims.PhoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindUnauthorized, MsgInvalidToken)
		}
		return nil, internal(err)
	}

	revoked, err := s.revoked.Contains(ctx, token)
	if err != nil {
		return nil, internal(fmt.Errorf("check revocation: %w", err))
	}
	if revoked {
		return nil, newError(KindUnauthorized, MsgInvalidToken)
	}

	return &Principal{
		ID:               user.ID,
		PhoneNumber:      user.PhoneNumber,
		Role:             user.Role,
		ActivationStatus: user.ActivationStatus,
		Token:            token,
		otp:              user.OTP,
	}, nil
}

// RequireAdmin fails unless the caller is an admin.
func (s *AuthService) RequireAdmin(p *Principal) error {
	if p == nil || !p.IsAdmin() {
		return newError(KindUnauthorized, MsgAdminOnly)
	}
	return nil
}

// BearerToken extracts the token from an Authorization header value. The
// scheme is optional; the last field is taken as the token.
func BearerToken(authorization string) string {
	fields := strings.Fields(authorization)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func (s *AuthService) dispatchOTP(ctx context.Context, phoneNumber, code string) {
	if !s.cfg.DeliverOTP {
		return
	}

	message := fmt.Sprintf("%s %s", OTPMessage, code)
	if err := s.sender.Send(ctx, phoneNumber, message); err != nil {
		s.logger.Warn("otp delivery failed", zap.String("phone", phoneNumber), zap.Error(err))
	}
}
