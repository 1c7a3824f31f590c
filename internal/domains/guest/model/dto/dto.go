package dto

import (
	"lodge/internal/domains/guest/model"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:    uuid.NewString(),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type GuestResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(guest model.Guest) {
	g.ID = guest.ID
	g.Name = guest.Name
	g.Email = guest.Email
	g.Phone = guest.Phone
	g.Metadata.FromModel(guest.Metadata)
}
