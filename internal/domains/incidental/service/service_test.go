package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	incidentalMocks "lodge/internal/domains/incidental/mocks"
	"lodge/internal/domains/incidental/model"
	"lodge/internal/domains/incidental/model/dto"
	"lodge/internal/domains/incidental/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
)

func newChargeService(t *testing.T) (service.Charge, *incidentalMocks.MockCharge, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	repo := incidentalMocks.NewMockCharge(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, bookings, cfg, cache, mocks.NewOtel()), repo, bookings, cache
}

func TestChargeService_Create(t *testing.T) {
	req := dto.CreateChargeRequest{Description: "room service", AmountCents: 2000}

	tests := []struct {
		name      string
		booking   bookingModel.Booking
		setupMock func(repo *incidentalMocks.MockCharge, bookings *bookingMocks.MockBooking, booking bookingModel.Booking)
		wantErr   bool
	}{
		{
			name:    "charge accrues against occupied booking",
			booking: bookingModel.Booking{ID: "booking-1", RoomID: "room-1", Status: bookingModel.StatusOccupied},
			setupMock: func(repo *incidentalMocks.MockCharge, bookings *bookingMocks.MockBooking, booking bookingModel.Booking) {
				bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name:    "reserved booking rejects charges",
			booking: bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusReserved},
			setupMock: func(repo *incidentalMocks.MockCharge, bookings *bookingMocks.MockBooking, booking bookingModel.Booking) {
				bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name:    "settled booking rejects charges",
			booking: bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusSettled},
			setupMock: func(repo *incidentalMocks.MockCharge, bookings *bookingMocks.MockBooking, booking bookingModel.Booking) {
				bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name:    "booking not found",
			booking: bookingModel.Booking{},
			setupMock: func(repo *incidentalMocks.MockCharge, bookings *bookingMocks.MockBooking, booking bookingModel.Booking) {
				bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name:    "insert error",
			booking: bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusOccupied},
			setupMock: func(repo *incidentalMocks.MockCharge, bookings *bookingMocks.MockBooking, booking bookingModel.Booking) {
				bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, bookings, _ := newChargeService(t)
			tt.setupMock(repo, bookings, tt.booking)

			ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "test-staff-id")
			res, err := svc.Create(ctx, "booking-1", req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.Equal(t, req.AmountCents, res.AmountCents)
			}
		})
	}
}

func TestChargeService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		charge    model.Charge
		setupMock func(repo *incidentalMocks.MockCharge, charge model.Charge)
		wantErr   bool
	}{
		{
			name:   "pending charge cancels",
			charge: model.Charge{ID: "charge-1", Status: model.StatusPending},
			setupMock: func(repo *incidentalMocks.MockCharge, charge model.Charge) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(charge, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "billed charge is immutable",
			charge: model.Charge{ID: "charge-1", Status: model.StatusBilled},
			setupMock: func(repo *incidentalMocks.MockCharge, charge model.Charge) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(charge, nil)
			},
			wantErr: true,
		},
		{
			name:   "charge not found",
			charge: model.Charge{},
			setupMock: func(repo *incidentalMocks.MockCharge, charge model.Charge) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(charge, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newChargeService(t)
			tt.setupMock(repo, tt.charge)

			ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "test-staff-id")
			err := svc.Cancel(ctx, "charge-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChargeService_GetForBooking(t *testing.T) {
	svc, repo, _, cache := newChargeService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Charge{
		{ID: "charge-1", BookingID: "booking-1", AmountCents: 2000, Status: model.StatusPending},
		{ID: "charge-2", BookingID: "booking-1", AmountCents: 1500, Status: model.StatusPending},
	}, nil)

	res, err := svc.GetForBooking(context.Background(), "booking-1")

	assert.NoError(t, err)
	assert.Len(t, res.Charges, 2)
	assert.Equal(t, int64(3500), res.TotalCents)
}
