package service

import (
	"context"
	"errors"
	"fmt"
	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/payment"
	"lodge/infras/postgres"
	"lodge/internal/domains/billing"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/checkout/model/dto"
	incidentalModel "lodge/internal/domains/incidental/model"
	incidentalRepo "lodge/internal/domains/incidental/repository"
	invoiceModel "lodge/internal/domains/invoice/model"
	invoiceRepo "lodge/internal/domains/invoice/repository"
	ledgerModel "lodge/internal/domains/ledger/model"
	ledgerRepo "lodge/internal/domains/ledger/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/money"
	"lodge/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Checkout interface {
	Checkout(ctx context.Context, bookingID string, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
}

type serviceImpl struct {
	bookings   bookingRepo.Booking
	rooms      roomRepo.Room
	charges    incidentalRepo.Charge
	invoices   invoiceRepo.Invoice
	ledger     ledgerRepo.Ledger
	gateway    payment.Gateway
	transactor postgres.Transactor
	producer   kafka.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	bookings bookingRepo.Booking,
	rooms roomRepo.Room,
	charges incidentalRepo.Charge,
	invoices invoiceRepo.Invoice,
	ledger ledgerRepo.Ledger,
	gateway payment.Gateway,
	transactor postgres.Transactor,
	producer kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Checkout {
	return &serviceImpl{
		bookings:   bookings,
		rooms:      rooms,
		charges:    charges,
		invoices:   invoices,
		ledger:     ledger,
		gateway:    gateway,
		transactor: transactor,
		producer:   producer,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Checkout settles an occupied booking. Payment authorization happens before
// the database transaction; a declined or timed-out authorization aborts with
// zero writes. Once payment is approved, the invoice, the billed charges, the
// booking settlement, the room status, and the revenue ledger commit as one
// transaction or not at all.
func (s *serviceImpl) Checkout(ctx context.Context, bookingID string, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	now := timezone.Now()

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Status != bookingModel.StatusOccupied {
		return res, failure.Conflict("only an occupied booking can be checked out") //nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("roomID", booking.RoomID).Msg("failed to get room for checkout")

		return res, fmt.Errorf("failed to get room for checkout: %w", err)
	}

	pending, err := s.getPendingCharges(ctx, bookingID)
	if err != nil {
		return res, err
	}

	addOns, err := s.bookings.GetAddOns(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get booking add-ons")

		return res, fmt.Errorf("failed to get booking add-ons: %w", err)
	}

	statement := billing.Compute(billing.Input{
		RateCents:   room.RateCents,
		CheckIn:     booking.CheckIn,
		CheckOut:    now,
		Incidentals: chargeAmounts(pending),
		AddOns:      addOnAmounts(addOns),
		TaxRateBps:  s.cfg.Billing.TaxRateBps,
		AmountPaid:  booking.AmountPaidCents,
	})

	paymentRef, err := s.authorize(ctx, booking, statement.BalanceDue, req.PaymentDetails)
	if err != nil {
		return res, err
	}

	invoice, lines := s.buildInvoice(booking, room, pending, addOns, statement, paymentRef, now, staff)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, lockErr := s.rooms.LockTx(ctx, tx, booking.RoomID); lockErr != nil {
			return lockErr
		}

		if insertErr := s.invoices.InsertTx(ctx, tx, invoice); insertErr != nil {
			return insertErr
		}

		if insertErr := s.invoices.InsertLinesTx(ctx, tx, lines); insertErr != nil {
			return insertErr
		}

		billed, billErr := s.charges.MarkBilledTx(ctx, tx, bookingID, invoice.ID, chargeIDs(pending), now)
		if billErr != nil {
			return billErr
		}

		if billed != int64(len(pending)) {
			// A charge moved between pricing and billing. The invoice no
			// longer matches reality, so nothing may commit.
			log.Error().
				Str("bookingID", bookingID).
				Int64("billed", billed).
				Int("expected", len(pending)).
				Msg("billed charge count mismatch, aborting checkout")

			return failure.InternalError(errors.New("billed charge set changed during checkout")) //nolint:wrapcheck
		}

		settled, settleErr := s.bookings.TransitionTx(ctx, tx, bookingID, bookingModel.StatusOccupied, map[string]any{
			bookingModel.FieldStatus:         bookingModel.StatusSettled,
			bookingModel.FieldActualCheckOut: now,
			bookingModel.FieldPaymentStatus:  bookingModel.PaymentStatusPaid,
			bookingModel.FieldAmountPaid:     statement.Total,
			bookingModel.FieldPaymentRef:     paymentRef,
			constant.FieldModifiedAt:         now,
			constant.FieldModifiedBy:         staff,
		})
		if settleErr != nil {
			return settleErr
		}

		if !settled {
			return failure.Conflict("booking was settled by a concurrent checkout") //nolint:wrapcheck
		}

		if roomErr := s.rooms.UpdateStatusTx(ctx, tx, booking.RoomID, roomModel.StatusCleaning); roomErr != nil {
			return roomErr
		}

		// Tax is pass-through, not revenue; add-ons count with incidentals.
		return s.ledger.UpsertTx(ctx, tx, ledgerModel.Entry{
			RoomID:                 booking.RoomID,
			EntryDate:              ledgerModel.DateOf(now),
			RoomRevenueCents:       statement.RoomCharge,
			IncidentalRevenueCents: statement.IncidentalTotal + statement.AddOnTotal,
			OccupiedNights:         statement.Nights,
			ModifiedAt:             now,
		})
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("checkout transaction failed")

		return res, err
	}

	res.FromStatement(bookingID, invoice.ID, s.cfg.Billing.Currency, paymentRef, statement, statement.BalanceDue, now)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.CheckoutSettled, kafka.Message{Key: bookingID, Value: res}); err != nil {
			log.Error().Err(err).Msg("failed to publish checkout settled event")
		}

		shared.InvalidateCaches(c, s.cache, "booking:")
		shared.InvalidateCaches(c, s.cache, "incidental:")
		shared.InvalidateCaches(c, s.cache, "ledger:")
		shared.InvalidateCaches(c, s.cache, "room:")
	}()

	return res, nil
}

// authorize charges the outstanding balance before any database write. The
// idempotency key is derived from a monotonically increasing attempt counter
// so a retried checkout replays the same authorization instead of charging
// twice.
func (s *serviceImpl) authorize(ctx context.Context, booking bookingModel.Booking, balance money.Cents, details map[string]string) (string, error) {
	if balance <= 0 {
		return booking.PaymentRef, nil
	}

	attempt, err := s.bookings.IncrementPaymentAttempts(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to increment payment attempts")

		return "", fmt.Errorf("failed to increment payment attempts: %w", err)
	}

	authCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Payment.AuthorizeTimeoutSeconds)*time.Second)
	defer cancel()

	result, err := s.gateway.Authorize(authCtx, payment.AuthorizeInput{
		Amount:         balance,
		Currency:       s.cfg.Billing.Currency,
		Method:         booking.PaymentMethod,
		Details:        details,
		IdempotencyKey: fmt.Sprintf("checkout:%s:%d", booking.ID, attempt),
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("payment authorization failed")

		return "", failure.PaymentRequired("payment authorization failed") //nolint:wrapcheck
	}

	if !result.Approved {
		log.Warn().Str("bookingID", booking.ID).Str("reason", result.Message).Msg("payment declined")

		return "", failure.PaymentRequired("payment was declined") //nolint:wrapcheck
	}

	return result.TransactionRef, nil
}

func (s *serviceImpl) buildInvoice(
	booking bookingModel.Booking,
	room roomModel.Room,
	pending []incidentalModel.Charge,
	addOns []bookingModel.AddOn,
	statement billing.Statement,
	paymentRef string,
	now time.Time,
	staff string,
) (invoiceModel.Invoice, []invoiceModel.Line) {
	metadata := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  staff,
		ModifiedBy: staff,
	}

	invoice := invoiceModel.Invoice{
		ID:              uuid.NewString(),
		BookingID:       booking.ID,
		RoomID:          booking.RoomID,
		Nights:          statement.Nights,
		SubtotalCents:   statement.Subtotal,
		TaxCents:        statement.Tax,
		TotalCents:      statement.Total,
		BalanceCents:    statement.BalanceDue,
		Currency:        s.cfg.Billing.Currency,
		PaymentMethod:   booking.PaymentMethod,
		PaymentStatus:   bookingModel.PaymentStatusPaid,
		AmountPaidCents: statement.Total,
		PaymentRef:      paymentRef,
		IssuedAt:        now,
		Metadata:        metadata,
	}

	lines := make([]invoiceModel.Line, 0, len(pending)+len(addOns)+2)
	position := 1

	lines = append(lines, invoiceModel.Line{
		ID:          uuid.NewString(),
		InvoiceID:   invoice.ID,
		Kind:        invoiceModel.LineKindRoom,
		Description: fmt.Sprintf("room %s, %d night(s)", room.Number, statement.Nights),
		AmountCents: statement.RoomCharge,
		Position:    position,
		Metadata:    metadata,
	})

	for _, charge := range pending {
		position++
		lines = append(lines, invoiceModel.Line{
			ID:          uuid.NewString(),
			InvoiceID:   invoice.ID,
			Kind:        invoiceModel.LineKindIncidental,
			Description: charge.Description,
			AmountCents: charge.AmountCents,
			Position:    position,
			Metadata:    metadata,
		})
	}

	for _, addOn := range addOns {
		position++
		lines = append(lines, invoiceModel.Line{
			ID:          uuid.NewString(),
			InvoiceID:   invoice.ID,
			Kind:        invoiceModel.LineKindAddOn,
			Description: addOn.Name,
			AmountCents: addOn.CostCents,
			Position:    position,
			Metadata:    metadata,
		})
	}

	position++
	lines = append(lines, invoiceModel.Line{
		ID:          uuid.NewString(),
		InvoiceID:   invoice.ID,
		Kind:        invoiceModel.LineKindTax,
		Description: fmt.Sprintf("tax (%.2f%%)", float64(s.cfg.Billing.TaxRateBps)/100),
		AmountCents: statement.Tax,
		Position:    position,
		Metadata:    metadata,
	})

	return invoice, lines
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (bookingModel.Booking, error) {
	booking, err := s.bookings.Get(ctx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) getPendingCharges(ctx context.Context, bookingID string) ([]incidentalModel.Charge, error) {
	charges, err := s.charges.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    incidentalModel.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    incidentalModel.TableName,
			},
			gDto.Filter{
				Field:    incidentalModel.FieldStatus,
				Value:    incidentalModel.StatusPending,
				Operator: gDto.FilterOperatorEq,
				Table:    incidentalModel.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get pending charges")

		return nil, fmt.Errorf("failed to get pending charges: %w", err)
	}

	return charges, nil
}

func chargeAmounts(charges []incidentalModel.Charge) []money.Cents {
	amounts := make([]money.Cents, 0, len(charges))
	for _, c := range charges {
		amounts = append(amounts, c.AmountCents)
	}

	return amounts
}

func chargeIDs(charges []incidentalModel.Charge) []string {
	ids := make([]string, 0, len(charges))
	for _, c := range charges {
		ids = append(ids, c.ID)
	}

	return ids
}

func addOnAmounts(addOns []bookingModel.AddOn) []money.Cents {
	amounts := make([]money.Cents, 0, len(addOns))
	for _, a := range addOns {
		amounts = append(amounts, a.CostCents)
	}

	return amounts
}
