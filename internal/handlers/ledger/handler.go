package ledger

import (
	"net/http"
	"lodge/infras/otel"
	"lodge/internal/domains/ledger/service"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms/{id}/ledger", handler.GetLedger)
}

// GetLedger retrieves a room's recognized revenue over a date range.
// @Summary Get a room's revenue ledger
// @Description Retrieve per-date recognized revenue for a room over an inclusive calendar range.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.GetLedgerResponse "Revenue entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/ledger [get]
func (handler *Handler) GetLedger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLedger")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamID)

	from, err := timezone.Parse(constant.CalendarFormat, r.URL.Query().Get(constant.RequestParamFrom))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("from must be a calendar date (YYYY-MM-DD)"))

		return
	}

	to, err := timezone.Parse(constant.CalendarFormat, r.URL.Query().Get(constant.RequestParamTo))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("to must be a calendar date (YYYY-MM-DD)"))

		return
	}

	ledger, err := handler.service.GetRange(ctx, roomID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue ledger")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue ledger retrieved successfully")

	response.WithJSON(w, http.StatusOK, ledger)
}
