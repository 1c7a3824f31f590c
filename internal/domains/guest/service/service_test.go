package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	guestMocks "lodge/internal/domains/guest/mocks"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	"lodge/shared/constant"
)

func newGuestService(t *testing.T) (service.Guest, *guestMocks.MockGuest) {
	ctrl := gomock.NewController(t)
	repo := guestMocks.NewMockGuest(ctrl)

	return service.New(repo, mocks.NewOtel()), repo
}

func TestGuestService_Create(t *testing.T) {
	req := dto.CreateGuestRequest{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+44123456"}

	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantErr   bool
	}{
		{
			name: "guest created",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "insert error",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newGuestService(t)
			tt.setupMock(repo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "test-staff-id")
			res, err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, req.Name, res.Name)
			}
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	tests := []struct {
		name    string
		guest   model.Guest
		wantErr bool
	}{
		{
			name:    "guest found",
			guest:   model.Guest{ID: "guest-1", Name: "Ada Lovelace", Email: "ada@example.com"},
			wantErr: false,
		},
		{
			name:    "guest not found",
			guest:   model.Guest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newGuestService(t)
			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.guest, nil)

			res, err := svc.Get(context.Background(), "guest-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.guest.ID, res.ID)
			}
		})
	}
}
