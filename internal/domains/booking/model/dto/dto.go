package dto

import (
	"lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/money"
	"lodge/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type ReserveBookingRequest struct {
	RoomID           string `json:"room_id"            validate:"required"`
	GuestID          string `json:"guest_id"           validate:"required"`
	CheckIn          string `json:"check_in"           validate:"required"`
	ExpectedCheckOut string `json:"expected_check_out" validate:"required"`
	PaymentMethod    string `json:"payment_method"     validate:"omitempty,oneof=cash card"`
	DepositCents     int64  `json:"deposit_cents"      validate:"omitempty,gte=0"`
	CheckInNow       bool   `json:"check_in_now"`
}

func (r *ReserveBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateFormat, r.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.Parse(constant.DateFormat, r.ExpectedCheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusReserved
	if r.CheckInNow {
		status = model.StatusOccupied
	}

	method := r.PaymentMethod
	if method == "" {
		method = "cash"
	}

	return model.Booking{
		ID:               uuid.NewString(),
		RoomID:           r.RoomID,
		GuestID:          r.GuestID,
		CheckIn:          checkIn,
		ExpectedCheckOut: checkOut,
		Status:           status,
		PaymentMethod:    method,
		PaymentStatus:    model.PaymentStatusUnpaid,
		DepositCents:     money.Cents(r.DepositCents),
		AmountPaidCents:  money.Cents(r.DepositCents),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type AddOnRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	CostCents int64  `json:"cost_cents" validate:"required,gt=0"`
}

func (a *AddOnRequest) ToModel(bookingID, user string) model.AddOn {
	return model.AddOn{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Name:      a.Name,
		CostCents: money.Cents(a.CostCents),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID               string  `json:"id"`
	RoomID           string  `json:"room_id"`
	GuestID          string  `json:"guest_id"`
	CheckIn          string  `json:"check_in"`
	ExpectedCheckOut string  `json:"expected_check_out"`
	ActualCheckOut   *string `json:"actual_check_out,omitempty"`
	Status           string  `json:"status"`
	PaymentMethod    string  `json:"payment_method"`
	PaymentStatus    string  `json:"payment_status"`
	DepositCents     int64   `json:"deposit_cents"`
	AmountPaidCents  int64   `json:"amount_paid_cents"`
	PaymentRef       string  `json:"payment_ref,omitempty"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.ID = booking.ID
	b.RoomID = booking.RoomID
	b.GuestID = booking.GuestID
	b.CheckIn = timezone.Format(booking.CheckIn, constant.DateFormat)
	b.ExpectedCheckOut = timezone.Format(booking.ExpectedCheckOut, constant.DateFormat)
	b.Status = booking.Status
	b.PaymentMethod = booking.PaymentMethod
	b.PaymentStatus = booking.PaymentStatus
	b.DepositCents = int64(booking.DepositCents)
	b.AmountPaidCents = int64(booking.AmountPaidCents)
	b.PaymentRef = booking.PaymentRef
	b.Metadata.FromModel(booking.Metadata)

	if booking.ActualCheckOut != nil {
		formatted := timezone.Format(*booking.ActualCheckOut, constant.DateFormat)
		b.ActualCheckOut = &formatted
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
	TotalPage int               `json:"total_page"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, total, limit int) {
	g.Bookings = make([]BookingResponse, 0, len(models))

	for _, m := range models {
		res := BookingResponse{}
		res.FromModel(m)
		g.Bookings = append(g.Bookings, res)
	}

	g.TotalData = total
	g.TotalPage = shared.CalculateTotalPage(total, limit)
}

type AvailabilityResponse struct {
	RoomID string `json:"room_id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Free   bool   `json:"free"`
}

func NewAvailabilityResponse(roomID string, from, to time.Time, free bool) AvailabilityResponse {
	return AvailabilityResponse{
		RoomID: roomID,
		From:   timezone.Format(from, constant.DateFormat),
		To:     timezone.Format(to, constant.DateFormat),
		Free:   free,
	}
}
