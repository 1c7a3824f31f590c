package invoice

import (
	"net/http"
	"lodge/infras/otel"
	"lodge/internal/domains/invoice/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invoice
	otel    otel.Otel
}

func New(service service.Invoice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/invoices/{id}", handler.GetInvoiceByID)
	router.Get("/bookings/{id}/invoice", handler.GetInvoiceByBooking)
}

// GetInvoiceByID retrieves an invoice by its ID.
// @Summary Get an invoice by ID
// @Description Retrieve an invoice with its lines by its unique identifier.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse "Invoice details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id} [get]
func (handler *Handler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	invoice, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoice)
}

// GetInvoiceByBooking retrieves the invoice settled for a booking.
// @Summary Get a booking's invoice
// @Description Retrieve the invoice produced when the booking was checked out.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.InvoiceResponse "Invoice details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/invoice [get]
func (handler *Handler) GetInvoiceByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByBooking")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamID)

	invoice, err := handler.service.GetByBooking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice by booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoice)
}
