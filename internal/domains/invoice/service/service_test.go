package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	invoiceMocks "lodge/internal/domains/invoice/mocks"
	"lodge/internal/domains/invoice/model"
	"lodge/internal/domains/invoice/service"
	cacheMocks "lodge/shared/cache/mocks"
)

func newInvoiceService(t *testing.T) (service.Invoice, *invoiceMocks.MockInvoice, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	repo := invoiceMocks.NewMockInvoice(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, cfg, cache, mocks.NewOtel()), repo, cache
}

func settledInvoice() model.Invoice {
	return model.Invoice{
		ID:            "invoice-1",
		BookingID:     "booking-1",
		RoomID:        "room-1",
		Nights:        2,
		SubtotalCents: 22000,
		TaxCents:      2200,
		TotalCents:    24200,
		BalanceCents:  24200,
		Currency:      "USD",
		PaymentMethod: "card",
		PaymentStatus: "paid",
		PaymentRef:    "txn-1",
	}
}

func invoiceLines() []model.Line {
	return []model.Line{
		{ID: "line-1", InvoiceID: "invoice-1", Kind: model.LineKindRoom, Description: "room 101, 2 night(s)", AmountCents: 20000, Position: 0},
		{ID: "line-2", InvoiceID: "invoice-1", Kind: model.LineKindIncidental, Description: "room service", AmountCents: 2000, Position: 1},
		{ID: "line-3", InvoiceID: "invoice-1", Kind: model.LineKindTax, Description: "tax (10.00%)", AmountCents: 2200, Position: 2},
	}
}

func TestInvoiceService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "invoice found with lines",
			setupMock: func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(settledInvoice(), nil)
				repo.EXPECT().GetLines(gomock.Any(), "invoice-1").Return(invoiceLines(), nil)
			},
			wantErr: false,
		},
		{
			name: "invoice not found",
			setupMock: func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Invoice{}, nil)
			},
			wantErr: true,
		},
		{
			name: "lines query error",
			setupMock: func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(settledInvoice(), nil)
				repo.EXPECT().GetLines(gomock.Any(), "invoice-1").Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newInvoiceService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Get(context.Background(), "invoice-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "invoice-1", res.ID)
				assert.Equal(t, "242.00", res.Total)
				assert.Len(t, res.Lines, 3)
				assert.Equal(t, model.LineKindRoom, res.Lines[0].Kind)
			}
		})
	}
}

func TestInvoiceService_GetByBooking(t *testing.T) {
	svc, repo, cache := newInvoiceService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(settledInvoice(), nil)
	repo.EXPECT().GetLines(gomock.Any(), "invoice-1").Return(invoiceLines(), nil)

	res, err := svc.GetByBooking(context.Background(), "booking-1")

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", res.BookingID)
	assert.Equal(t, "txn-1", res.PaymentRef)
}

func TestInvoiceService_GetCacheHit(t *testing.T) {
	svc, _, cache := newInvoiceService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Get(context.Background(), "invoice-1")

	assert.NoError(t, err)
}
