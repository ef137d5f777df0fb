package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/quickbite/internal/models"
	"github.com/example/quickbite/internal/store"
	"github.com/example/quickbite/internal/utils"
)

const testSecret = "test-secret"

type sentMessage struct {
	phone   string
	message string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeSender) Send(_ context.Context, phone, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{phone: phone, message: message})
	return f.err
}

func (f *fakeSender) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

type authFixture struct {
	svc     *AuthService
	store   *store.MemoryStore
	revoked *MemoryRevocationStore
	sender  *fakeSender
}

func newAuthFixture(t *testing.T, deliverOTP bool) *authFixture {
	t.Helper()

	f := &authFixture{
		store:   store.NewMemoryStore(),
		revoked: NewMemoryRevocationStore(),
		sender:  &fakeSender{},
	}
	f.svc = NewAuthService(f.store, f.revoked, f.sender, AuthConfig{
		JWTSecret:  testSecret,
		TokenTTL:   time.Hour,
		DeliverOTP: deliverOTP,
	}, zap.NewNop())
	return f
}

func validSignUp() SignUpInput {
	return SignUpInput{
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+2348012345678",
		Address:     "12 Main St",
		Password:    "secret!1",
	}
}

// signUpAndLogin registers a customer and returns a principal for them.
func (f *authFixture) signUpAndLogin(t *testing.T, in SignUpInput) *Principal {
	t.Helper()
	ctx := context.Background()

	_, _, err := f.svc.SignUp(ctx, in)
	require.NoError(t, err)

	token, _, err := f.svc.Login(ctx, in.PhoneNumber, in.Password)
	require.NoError(t, err)

	p, err := f.svc.Authenticate(ctx, "Bearer "+token)
	require.NoError(t, err)
	return p
}

// seedAdmin stores an activated admin and returns a bearer token for them.
func (f *authFixture) seedAdmin(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	hash, err := utils.HashPassword("admin!pass")
	require.NoError(t, err)

	require.NoError(t, f.store.CreateUser(ctx, &models.User{
		FirstName:        "Admin",
		LastName:         "User",
		PhoneNumber:      "+2348000000000",
		PasswordHash:     hash,
		ActivationStatus: true,
		Role:             models.RoleAdmin,
	}))

	token, _, err := f.svc.Login(ctx, "+2348000000000", "admin!pass")
	require.NoError(t, err)
	return token
}
