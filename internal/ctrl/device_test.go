package ctrl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JMURv/device-sessions/internal/dto"
	"github.com/JMURv/device-sessions/internal/geo"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/JMURv/device-sessions/internal/session"
	"github.com/JMURv/device-sessions/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

func newTestController(t *testing.T) (
	*Controller,
	*mocks.MockAppRepo,
	*mocks.MockCacheService,
	*mocks.MockSessionStore,
	*mocks.MockGeoResolver,
	*mocks.MockIdentityService,
) {
	ctrlMock := gomock.NewController(t)
	t.Cleanup(ctrlMock.Finish)

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockStore := mocks.NewMockSessionStore(ctrlMock)
	mockGeo := mocks.NewMockGeoResolver(ctrlMock)
	mockIdentity := mocks.NewMockIdentityService(ctrlMock)

	c := New(mockRepo, mockCache, nil, nil, mockStore, mockGeo, mockIdentity, nil)

	return c, mockRepo, mockCache, mockStore, mockGeo, mockIdentity
}

func TestController_RecordActivity(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	sid := strings.Repeat("a", 50)

	tests := []struct {
		name  string
		req   *dto.DeviceRequest
		setup func(*mocks.MockAppRepo, *mocks.MockCacheService, *mocks.MockSessionStore, *mocks.MockGeoResolver)
	}{
		{
			name: "NoMetadataSkipsSilently",
			req:  &dto.DeviceRequest{},
			setup: func(*mocks.MockAppRepo, *mocks.MockCacheService, *mocks.MockSessionStore, *mocks.MockGeoResolver) {
			},
		},
		{
			name: "NewDeviceInserted",
			req:  &dto.DeviceRequest{UA: testUA, IP: "203.0.113.7"},
			setup: func(r *mocks.MockAppRepo, c *mocks.MockCacheService, s *mocks.MockSessionStore, g *mocks.MockGeoResolver) {
				s.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().
					DeviceLogExists(gomock.Any(), session.Identifier(sid), uid).
					Return(false, nil)
				g.EXPECT().
					Lookup(gomock.Any(), "203.0.113.7").
					Return(geo.Info{Country: "France", City: "Paris"})
				r.EXPECT().
					InsertDeviceLog(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *md.DeviceLog) (uint64, error) {
						assert.Equal(t, session.Identifier(sid), d.SessionIdentifier)
						assert.Equal(t, uid, d.UserID)
						assert.Equal(t, "203.0.113.7", d.IPAddress)
						assert.NotEmpty(t, d.Platform)
						assert.NotEmpty(t, d.Browser)
						assert.Equal(t, "France", *d.Country)
						assert.Equal(t, "Paris", *d.City)
						assert.False(t, d.FirstActivity.IsZero())
						return 1, nil
					})
				c.EXPECT().InvalidateKeysByPattern(gomock.Any(), devicePattern)
			},
		},
		{
			name: "ExistingSessionSkipped",
			req:  &dto.DeviceRequest{UA: testUA, IP: "203.0.113.7"},
			setup: func(r *mocks.MockAppRepo, _ *mocks.MockCacheService, s *mocks.MockSessionStore, _ *mocks.MockGeoResolver) {
				s.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().
					DeviceLogExists(gomock.Any(), session.Identifier(sid), uid).
					Return(true, nil)
			},
		},
		{
			// The exists check is session-granular: a changed fingerprint
			// under a known session does not produce a new row, even though
			// the sweeps group on the finer fingerprint key.
			name: "SameSessionNewFingerprintStillSkipped",
			req:  &dto.DeviceRequest{UA: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15", IP: "198.51.100.9"},
			setup: func(r *mocks.MockAppRepo, _ *mocks.MockCacheService, s *mocks.MockSessionStore, _ *mocks.MockGeoResolver) {
				s.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().
					DeviceLogExists(gomock.Any(), session.Identifier(sid), uid).
					Return(true, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mockRepo, mockCache, mockStore, mockGeo, _ := newTestController(t)
			tt.setup(mockRepo, mockCache, mockStore, mockGeo)

			s := session.New(sid, uid)
			err := c.RecordActivity(ctx, s, tt.req)
			assert.NoError(t, err)
		})
	}
}

func TestController_ListCurrentDevices(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	sid := strings.Repeat("b", 50)
	identifier := session.Identifier(sid)

	paginated := &dto.PaginatedDeviceResponse{
		Data: []md.CurrentDevice{
			{DeviceLog: md.DeviceLog{ID: 1, SessionIdentifier: identifier, UserID: uid}},
			{DeviceLog: md.DeviceLog{ID: 2, SessionIdentifier: strings.Repeat("c", 42), UserID: uid}},
		},
		Count: 2,
	}

	t.Run("CacheMissMarksCurrent", func(t *testing.T) {
		c, mockRepo, mockCache, _, _, _ := newTestController(t)

		mockCache.EXPECT().
			GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("miss"))
		mockRepo.EXPECT().
			ListCurrentDevices(gomock.Any(), 1, 10, gomock.Any()).
			Return(paginated, nil)
		mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		res, err := c.ListCurrentDevices(ctx, sid, 1, 10, nil)
		assert.NoError(t, err)
		assert.True(t, res.Data[0].IsCurrent)
		assert.False(t, res.Data[1].IsCurrent)
	})

	t.Run("AnonymousCallerMarksNothing", func(t *testing.T) {
		c, mockRepo, mockCache, _, _, _ := newTestController(t)

		mockCache.EXPECT().
			GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("miss"))
		mockRepo.EXPECT().
			ListCurrentDevices(gomock.Any(), 1, 10, gomock.Any()).
			Return(paginated, nil)
		mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		res, err := c.ListCurrentDevices(ctx, "", 1, 10, nil)
		assert.NoError(t, err)
		for i := range res.Data {
			assert.False(t, res.Data[i].IsCurrent)
		}
	})

	t.Run("RepoError", func(t *testing.T) {
		c, mockRepo, mockCache, _, _, _ := newTestController(t)

		mockCache.EXPECT().
			GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("miss"))
		mockRepo.EXPECT().
			ListCurrentDevices(gomock.Any(), 1, 10, gomock.Any()).
			Return(nil, errors.New("db down"))

		res, err := c.ListCurrentDevices(ctx, sid, 1, 10, nil)
		assert.Nil(t, res)
		assert.Error(t, err)
	})
}

func TestController_LinkedIPAddresses(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		c, mockRepo, _, _, _, _ := newTestController(t)

		device := &md.CurrentDevice{DeviceLog: md.DeviceLog{ID: 7, SessionIdentifier: "abc"}}
		mockRepo.EXPECT().GetCurrentDevice(gomock.Any(), uint64(7)).Return(device, nil)
		mockRepo.EXPECT().
			LinkedIPAddresses(gomock.Any(), &device.DeviceLog).
			Return("10.0.0.1\n10.0.0.2", nil)

		res, err := c.LinkedIPAddresses(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "10.0.0.1\n10.0.0.2", res.IPAddresses)
	})

	t.Run("NotFound", func(t *testing.T) {
		c, mockRepo, _, _, _, _ := newTestController(t)

		mockRepo.EXPECT().
			GetCurrentDevice(gomock.Any(), uint64(404)).
			Return(nil, repo.ErrNotFound)

		res, err := c.LinkedIPAddresses(ctx, 404)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestController_PurgeStale(t *testing.T) {
	ctx := context.Background()

	t.Run("BothSweepsRun", func(t *testing.T) {
		c, mockRepo, mockCache, _, _, _ := newTestController(t)

		mockRepo.EXPECT().PurgeSuperseded(gomock.Any()).Return(int64(3), nil)
		mockRepo.EXPECT().PurgeOlderThan(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		mockCache.EXPECT().InvalidateKeysByPattern(gomock.Any(), devicePattern)

		total, err := c.PurgeStale(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), total)
	})

	t.Run("NothingToPurge", func(t *testing.T) {
		c, mockRepo, _, _, _, _ := newTestController(t)

		mockRepo.EXPECT().PurgeSuperseded(gomock.Any()).Return(int64(0), nil)
		mockRepo.EXPECT().PurgeOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		total, err := c.PurgeStale(ctx)
		assert.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestController_DeleteLogsForUser(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	c, mockRepo, mockCache, mockStore, _, _ := newTestController(t)

	identifiers := []string{"sess-a", "sess-b"}
	mockRepo.EXPECT().IdentifiersForUser(gomock.Any(), uid).Return(identifiers, nil)
	mockRepo.EXPECT().DeleteLogsForUser(gomock.Any(), uid).Return(int64(4), nil)
	mockStore.EXPECT().DeleteFromIdentifiers(gomock.Any(), identifiers).Return(2)
	mockCache.EXPECT().InvalidateKeysByPattern(gomock.Any(), devicePattern)

	deleted, err := c.DeleteLogsForUser(ctx, uid)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
