package checkout

import (
	"net/http"
	"lodge/infras/otel"
	"lodge/internal/domains/checkout/model/dto"
	"lodge/internal/domains/checkout/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Checkout
	otel    otel.Otel
}

func New(service service.Checkout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings/{id}/checkout", handler.Checkout)
}

// Checkout settles an occupied booking atomically.
// @Summary Check a booking out
// @Description Price the stay, authorize payment, and settle the booking, invoice, charges, room, and revenue ledger in one transaction.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckoutRequest false "Checkout Request"
// @Success 200 {object} dto.CheckoutResponse "Checkout settled successfully"
// @Failure 402 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/checkout [post]
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	// The body is optional; checkout without payment details is valid for
	// cash settlements.
	req := dto.CheckoutRequest{}
	if request.ContentLength > 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	res, err := handler.service.Checkout(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to check out booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Checkout settled successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
