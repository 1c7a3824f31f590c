package dto

import (
	"lodge/internal/domains/incidental/model"
	gModel "lodge/shared/model"
	"lodge/shared/money"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateChargeRequest struct {
	Description string `json:"description"  validate:"required,max=200"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
}

func (c *CreateChargeRequest) ToModel(bookingID, roomID, user string) model.Charge {
	return model.Charge{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		RoomID:      roomID,
		Description: c.Description,
		AmountCents: money.Cents(c.AmountCents),
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ChargeResponse struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"booking_id"`
	RoomID      string  `json:"room_id"`
	Description string  `json:"description"`
	AmountCents int64   `json:"amount_cents"`
	Amount      string  `json:"amount"`
	Status      string  `json:"status"`
	InvoiceID   *string `json:"invoice_id,omitempty"`
}

func (c *ChargeResponse) FromModel(charge model.Charge) {
	c.ID = charge.ID
	c.BookingID = charge.BookingID
	c.RoomID = charge.RoomID
	c.Description = charge.Description
	c.AmountCents = int64(charge.AmountCents)
	c.Amount = money.Format(charge.AmountCents)
	c.Status = charge.Status
	c.InvoiceID = charge.InvoiceID
}

type GetChargesResponse struct {
	Charges    []ChargeResponse `json:"charges"`
	TotalCents int64            `json:"total_cents"`
}

func (g *GetChargesResponse) FromModels(models []model.Charge) {
	g.Charges = make([]ChargeResponse, 0, len(models))

	var total money.Cents

	for _, m := range models {
		res := ChargeResponse{}
		res.FromModel(m)
		g.Charges = append(g.Charges, res)
		total += m.AmountCents
	}

	g.TotalCents = int64(total)
}
