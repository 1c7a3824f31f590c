package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	ledgerMocks "lodge/internal/domains/ledger/mocks"
	"lodge/internal/domains/ledger/model"
	"lodge/internal/domains/ledger/service"
	cacheMocks "lodge/shared/cache/mocks"
)

func newLedgerService(t *testing.T) (service.Ledger, *ledgerMocks.MockLedger, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	repo := ledgerMocks.NewMockLedger(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, cfg, cache, mocks.NewOtel()), repo, cache
}

func TestLedgerService_GetRange(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	svc, repo, cache := newLedgerService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().GetRange(gomock.Any(), "room-1", from, to).Return([]model.Entry{
		{RoomID: "room-1", EntryDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), RoomRevenueCents: 20000, IncidentalRevenueCents: 4200, OccupiedNights: 2},
		{RoomID: "room-1", EntryDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), RoomRevenueCents: 18100, OccupiedNights: 1},
	}, nil)

	res, err := svc.GetRange(context.Background(), "room-1", from, to)

	assert.NoError(t, err)
	assert.Len(t, res.Entries, 2)
	assert.Equal(t, int64(38100), res.RoomRevenueCents)
	assert.Equal(t, int64(4200), res.IncidentalRevenueCents)
	assert.Equal(t, 3, res.OccupiedNights)
	assert.Equal(t, int64(42300), res.TotalCents)
	assert.Equal(t, "423.00", res.Total)
	assert.Equal(t, "2026-03-02", res.Entries[0].EntryDate)
}

func TestLedgerService_GetRangeInvertedDates(t *testing.T) {
	from := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	svc, _, _ := newLedgerService(t)

	_, err := svc.GetRange(context.Background(), "room-1", from, to)

	assert.Error(t, err)
}

func TestLedgerService_GetRangeRepositoryError(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	svc, repo, cache := newLedgerService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().GetRange(gomock.Any(), "room-1", from, to).Return(nil, errors.New("database error"))

	_, err := svc.GetRange(context.Background(), "room-1", from, to)

	assert.Error(t, err)
}
