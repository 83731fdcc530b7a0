package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/micronlogivdev/iftaway/internal/model"
	"github.com/micronlogivdev/iftaway/internal/store"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockStore(t)
	svc := NewAuthService(mockStore, "secret", time.Hour)

	mockStore.EXPECT().GetUserByEmail(ctx, "driver@example.com").Return(nil, store.ErrNotFound)
	mockStore.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
		u.ID = 12
		return nil
	})

	user, err := svc.Register(ctx, "  Driver@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, 12, user.ID)
	assert.Equal(t, "driver@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestAuthService_RegisterEmailTaken(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockStore(t)
	svc := NewAuthService(mockStore, "secret", time.Hour)

	mockStore.EXPECT().GetUserByEmail(ctx, "driver@example.com").Return(&model.User{ID: 1}, nil)

	_, err := svc.Register(ctx, "driver@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &model.User{ID: 5, Email: "demo@iftaway.com", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		email    string
		password string
		found    bool
		wantErr  error
	}{
		{"valid", "demo@iftaway.com", "password123", true, nil},
		{"wrong password", "demo@iftaway.com", "nope", true, ErrInvalidCredentials},
		{"unknown email", "ghost@iftaway.com", "password123", false, ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := newMockStore(t)
			svc := NewAuthService(mockStore, "secret", time.Hour)
			if tt.found {
				mockStore.EXPECT().GetUserByEmail(ctx, tt.email).Return(stored, nil)
			} else {
				mockStore.EXPECT().GetUserByEmail(ctx, tt.email).Return(nil, store.ErrNotFound)
			}

			resp, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, resp.User.ID)

			userID, err := svc.ParseToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, 5, userID)
		})
	}
}

func TestAuthService_ParseToken(t *testing.T) {
	svc := NewAuthService(newMockStore(t), "secret", time.Hour)
	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueToken(3)
	require.NoError(t, err)

	id, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService(newMockStore(t), "other-secret", time.Hour)
	other.now = func() time.Time { return issuedAt }
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_EnsureDemoUser(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockStore(t)
	svc := NewAuthService(mockStore, "secret", time.Hour)

	mockStore.EXPECT().GetUserByEmail(ctx, "demo@iftaway.com").Return(&model.User{ID: 1}, nil)

	assert.NoError(t, svc.EnsureDemoUser(ctx, "demo@iftaway.com", "password123"))
}
