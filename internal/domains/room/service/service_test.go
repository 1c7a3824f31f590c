package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
)

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	repo := roomMocks.NewMockRoom(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, cfg, cache, mocks.NewOtel()), repo, cache
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{Number: "101", Category: "deluxe", RateCents: 10000}

	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "room created",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate room number",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newRoomService(t)
			tt.setupMock(repo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "test-staff-id")
			err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		room      model.Room
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, room model.Room)
		wantErr   bool
	}{
		{
			name: "room found",
			room: model.Room{ID: "room-1", Number: "101", Category: "deluxe", RateCents: 10000, Status: model.StatusAvailable},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, room model.Room) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			room: model.Room{},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, room model.Room) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newRoomService(t)
			tt.setupMock(repo, cache, tt.room)

			res, err := svc.Get(context.Background(), "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.room.ID, res.ID)
				assert.Equal(t, "100.00", res.Rate)
			}
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	svc, repo, cache := newRoomService(t)

	rooms := []model.Room{
		{ID: "room-1", Number: "101", Category: "deluxe", RateCents: 10000, Status: model.StatusAvailable},
		{ID: "room-2", Number: "102", Category: "suite", RateCents: 25000, Status: model.StatusOccupied},
	}

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}
