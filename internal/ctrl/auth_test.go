package ctrl

import (
	"context"
	"testing"

	"github.com/JMURv/device-sessions/internal/auth"
	"github.com/JMURv/device-sessions/internal/auth/jwt"
	"github.com/JMURv/device-sessions/internal/config"
	"github.com/JMURv/device-sessions/internal/dto"
	"github.com/JMURv/device-sessions/internal/geo"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/JMURv/device-sessions/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthTestController(t *testing.T) (*Controller, *mocks.MockAppRepo, *mocks.MockCacheService, *mocks.MockSessionStore, *mocks.MockGeoResolver) {
	ctrlMock := gomock.NewController(t)
	t.Cleanup(ctrlMock.Finish)

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockStore := mocks.NewMockSessionStore(ctrlMock)
	mockGeo := mocks.NewMockGeoResolver(ctrlMock)

	core := jwt.New(config.AuthConfig{
		Secret:        "test-secret",
		RefreshSecret: "test-refresh-secret",
		Issuer:        "test",
	})

	c := New(mockRepo, mockCache, core, auth.NewPassword(), mockStore, mockGeo, nil, nil)

	return c, mockRepo, mockCache, mockStore, mockGeo
}

func TestController_Authenticate(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	hashed, err := auth.NewPassword().Hash("s3cret")
	require.NoError(t, err)

	user := &md.User{
		ID:          uid,
		Name:        "alice",
		Email:       "alice@example.com",
		Password:    hashed,
		AccountType: md.AccountInternal,
	}

	device := &dto.DeviceRequest{UA: testUA, IP: "203.0.113.7"}

	t.Run("Success", func(t *testing.T) {
		c, mockRepo, mockCache, mockStore, mockGeo := newAuthTestController(t)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().
			DeviceLogExists(gomock.Any(), gomock.Any(), uid).
			Return(false, nil)
		mockGeo.EXPECT().Lookup(gomock.Any(), device.IP).Return(geo.Info{})
		mockRepo.EXPECT().InsertDeviceLog(gomock.Any(), gomock.Any()).Return(uint64(1), nil)
		mockCache.EXPECT().InvalidateKeysByPattern(gomock.Any(), devicePattern)

		pair, s, err := c.Authenticate(
			ctx,
			&dto.EmailAndPasswordRequest{Email: user.Email, Password: "s3cret"},
			device,
		)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, "Bearer", pair.TokenType)
		assert.Equal(t, uid, s.UID)
		assert.NotEmpty(t, s.SID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		c, mockRepo, _, _, _ := newAuthTestController(t)

		mockRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, repo.ErrNotFound)

		pair, s, err := c.Authenticate(
			ctx,
			&dto.EmailAndPasswordRequest{Email: "nobody@example.com", Password: "s3cret"},
			device,
		)
		assert.Nil(t, pair)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		c, mockRepo, _, _, _ := newAuthTestController(t)

		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		pair, _, err := c.Authenticate(
			ctx,
			&dto.EmailAndPasswordRequest{Email: user.Email, Password: "wrong"},
			device,
		)
		assert.Nil(t, pair)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestController_Refresh(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	user := internalUser(uid)

	core := jwt.New(config.AuthConfig{
		Secret:        "test-secret",
		RefreshSecret: "test-refresh-secret",
		Issuer:        "test",
	})

	access, refresh, err := core.GenPair(ctx, uid, user.Name)
	require.NoError(t, err)

	t.Run("ReissuesAccessOnly", func(t *testing.T) {
		c, mockRepo, _, _, _ := newAuthTestController(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), uid).Return(user, nil)

		res, err := c.Refresh(ctx, &dto.RefreshRequest{Token: refresh})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.Equal(t, "Bearer", res.TokenType)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		c, _, _, _, _ := newAuthTestController(t)

		res, err := c.Refresh(ctx, &dto.RefreshRequest{Token: access})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		c, _, _, _, _ := newAuthTestController(t)

		res, err := c.Refresh(ctx, &dto.RefreshRequest{Token: "not-a-token"})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		c, mockRepo, _, _, _ := newAuthTestController(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), uid).Return(nil, repo.ErrNotFound)

		res, err := c.Refresh(ctx, &dto.RefreshRequest{Token: refresh})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
