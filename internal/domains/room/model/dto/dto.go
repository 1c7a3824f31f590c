package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/money"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number    string `json:"number"     validate:"required,max=20"`
	Category  string `json:"category"   validate:"required,max=50"`
	RateCents int64  `json:"rate_cents" validate:"required,gt=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:        uuid.NewString(),
		Number:    c.Number,
		Category:  c.Category,
		RateCents: money.Cents(c.RateCents),
		Status:    model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RoomResponse struct {
	ID        string `json:"id"`
	Number    string `json:"number"`
	Category  string `json:"category"`
	RateCents int64  `json:"rate_cents"`
	Rate      string `json:"rate"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Number = room.Number
	r.Category = room.Category
	r.RateCents = int64(room.RateCents)
	r.Rate = money.Format(room.RateCents)
	r.Status = room.Status
	r.Metadata.FromModel(room.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
	TotalPage int            `json:"total_page"`
}

func (g *GetRoomsResponse) FromModels(models []model.Room, total, limit int) {
	g.Rooms = make([]RoomResponse, 0, len(models))

	for _, m := range models {
		res := RoomResponse{}
		res.FromModel(m)
		g.Rooms = append(g.Rooms, res)
	}

	g.TotalData = total
	g.TotalPage = shared.CalculateTotalPage(total, limit)
}
