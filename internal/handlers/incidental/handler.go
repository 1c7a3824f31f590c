package incidental

import (
	"net/http"
	"lodge/infras/otel"
	"lodge/internal/domains/incidental/model/dto"
	"lodge/internal/domains/incidental/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Charge
	otel    otel.Otel
}

func New(service service.Charge, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings/{id}/charges", handler.CreateCharge)
	router.Get("/bookings/{id}/charges", handler.GetCharges)
	router.Delete("/charges/{id}", handler.CancelCharge)
}

// CreateCharge accrues an incidental charge against an occupied booking.
// @Summary Create an incidental charge
// @Description Accrue a charge (minibar, room service, laundry) against an occupied booking.
// @Tags Incidental
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CreateChargeRequest true "Create Charge Request"
// @Success 201 {object} dto.ChargeResponse "Charge created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [post]
func (handler *Handler) CreateCharge(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCharge")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	req := dto.CreateChargeRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	charge, err := handler.service.Create(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create incidental charge")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Incidental charge created successfully")

	response.WithJSON(writer, http.StatusCreated, charge)
}

// GetCharges lists the charges accrued against a booking.
// @Summary Get a booking's incidental charges
// @Description Retrieve all incidental charges for a booking with their running total.
// @Tags Incidental
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.GetChargesResponse "List of charges"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [get]
func (handler *Handler) GetCharges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharges")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamID)

	charges, err := handler.service.GetForBooking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get incidental charges")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Incidental charges retrieved successfully")

	response.WithJSON(w, http.StatusOK, charges)
}

// CancelCharge voids a pending incidental charge.
// @Summary Cancel an incidental charge
// @Description Void a pending charge. Billed charges are immutable.
// @Tags Incidental
// @Accept json
// @Produce json
// @Param id path string true "Charge ID"
// @Success 200 {object} response.Message "Charge cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/charges/{id} [delete]
func (handler *Handler) CancelCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelCharge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel incidental charge")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Incidental charge cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Charge cancelled successfully")
}
