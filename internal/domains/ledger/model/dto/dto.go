package dto

import (
	"lodge/internal/domains/ledger/model"
	"lodge/shared/constant"
	"lodge/shared/money"
	"lodge/shared/timezone"
)

type EntryResponse struct {
	RoomID                 string `json:"room_id"`
	EntryDate              string `json:"entry_date"`
	RoomRevenueCents       int64  `json:"room_revenue_cents"`
	IncidentalRevenueCents int64  `json:"incidental_revenue_cents"`
	OccupiedNights         int    `json:"occupied_nights"`
	TotalCents             int64  `json:"total_cents"`
	Total                  string `json:"total"`
}

type GetLedgerResponse struct {
	RoomID                 string          `json:"room_id"`
	From                   string          `json:"from"`
	To                     string          `json:"to"`
	Entries                []EntryResponse `json:"entries"`
	RoomRevenueCents       int64           `json:"room_revenue_cents"`
	IncidentalRevenueCents int64           `json:"incidental_revenue_cents"`
	OccupiedNights         int             `json:"occupied_nights"`
	TotalCents             int64           `json:"total_cents"`
	Total                  string          `json:"total"`
}

func (g *GetLedgerResponse) FromModels(roomID, from, to string, models []model.Entry) {
	g.RoomID = roomID
	g.From = from
	g.To = to
	g.Entries = make([]EntryResponse, 0, len(models))

	var sum model.Entry

	for _, m := range models {
		g.Entries = append(g.Entries, EntryResponse{
			RoomID:                 m.RoomID,
			EntryDate:              timezone.Format(m.EntryDate, constant.CalendarFormat),
			RoomRevenueCents:       int64(m.RoomRevenueCents),
			IncidentalRevenueCents: int64(m.IncidentalRevenueCents),
			OccupiedNights:         m.OccupiedNights,
			TotalCents:             int64(m.TotalCents()),
			Total:                  money.Format(m.TotalCents()),
		})
		sum.Accumulate(m)
	}

	g.RoomRevenueCents = int64(sum.RoomRevenueCents)
	g.IncidentalRevenueCents = int64(sum.IncidentalRevenueCents)
	g.OccupiedNights = sum.OccupiedNights
	g.TotalCents = int64(sum.TotalCents())
	g.Total = money.Format(sum.TotalCents())
}
