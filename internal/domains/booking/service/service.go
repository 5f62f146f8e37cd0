package service

import (
	"context"
	"errors"
	"fmt"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/billing"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	customerModel "hotelier/internal/domains/customer/model"
	customerRepository "hotelier/internal/domains/customer/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepository "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	cacheCustomerPrefix = "customer:"
	cacheRoomPrefix     = "room:"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	MarkPaid(ctx context.Context, billingID string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepository.Room
	customerRepo customerRepository.Customer
	tx           postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	customerRepo customerRepository.Customer,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		tx:           tx,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafka,
	}
}

// roomStatusFilter matches a room only while it still holds the given status,
// so the update doubles as a compare-and-swap.
func roomStatusFilter(id, status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				ArgName:  "guard_status",
				Field:    roomModel.FieldStatus,
				Value:    status,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	}
}

func bookingPaymentFilter(id, paymentStatus string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "guard_payment_status",
				Field:    model.FieldPaymentStatus,
				Value:    paymentStatus,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func bookingNotCheckedOutFilter(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckedOutAt,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
		},
	}
}

// Create books a room for a customer. The booking row and the room status
// flip to occupied land in one transaction, so a failure leaves no partial
// effect anywhere.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if !req.CheckOut.After(req.CheckIn) {
		return res, failure.BadRequestFromString("check_out must be after check_in") //nolint:wrapcheck
	}

	customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer existence")

		return res, fmt.Errorf("failed to check customer existence: %w", err)
	}

	if !customerExists {
		return res, failure.NotFound("customer not found") //nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	if room.Status != roomModel.StatusAvailable {
		return res, failure.Conflict("room is not available") //nolint:wrapcheck
	}

	bill := billing.Compute(req.CheckIn.UTC(), req.CheckOut.UTC(), room.PricePerNight)
	booking := req.ToModel(user, bill)

	err = s.tx.WithinTransaction(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, sqltx, booking); err != nil {
			return err
		}

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusOccupied,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		// The status precondition lives in the UPDATE itself. A concurrent
		// create for the same room commits first, this one matches zero rows
		// and the whole transaction rolls back.
		affected, err := s.roomRepo.UpdateTxGuarded(ctx, sqltx, roomFields, roomStatusFilter(room.ID, roomModel.StatusAvailable))
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.Conflict("room is not available") //nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, EventBookingCreated, booking)
	s.invalidateBooking(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

// MarkPaid settles the bill identified by its billing id. Paying twice is
// rejected with a conflict so retries surface a well defined error instead
// of double stamping paid_at.
func (s *serviceImpl) MarkPaid(ctx context.Context, billingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(billingID, model.FieldBillingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if booking.PaymentStatus == model.PaymentStatusPaid {
		return res, failure.Conflict("booking already paid") //nolint:wrapcheck
	}

	paidAt := timezone.Now()

	err = s.tx.WithinTransaction(ctx, func(sqltx *sqlx.Tx) error {
		bookingFields := map[string]any{
			model.FieldPaymentStatus: model.PaymentStatusPaid,
			model.FieldPaidAt:        paidAt,
			constant.FieldModifiedAt: paidAt,
			constant.FieldModifiedBy: user,
		}

		// Guard on payment_status in the WHERE clause so a concurrent
		// payment for the same bill stamps paid_at exactly once.
		affected, err := s.repo.UpdateTxGuarded(ctx, sqltx, bookingFields, bookingPaymentFilter(booking.ID, model.PaymentStatusPending))
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.Conflict("booking already paid") //nolint:wrapcheck
		}

		customerFields := map[string]any{
			customerModel.FieldCurrentGuest: true,
			constant.FieldModifiedAt:        paidAt,
			constant.FieldModifiedBy:        user,
		}

		return s.customerRepo.UpdateTx(ctx, sqltx, customerFields, shared.FilterByID(booking.CustomerID, customerModel.FieldID, customerModel.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to mark booking paid")

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		return res, fmt.Errorf("failed to mark booking paid: %w", err)
	}

	booking.PaymentStatus = model.PaymentStatusPaid
	booking.PaidAt = &paidAt

	s.publishEvent(ctx, EventBookingPaid, booking)
	s.invalidateBooking(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

// CheckOut closes a paid booking, frees the room and clears the customer's
// in-house flag.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if booking.PaymentStatus != model.PaymentStatusPaid {
		return res, failure.Conflict("booking is not paid") //nolint:wrapcheck
	}

	if booking.CheckedOutAt != nil {
		return res, failure.Conflict("booking already checked out") //nolint:wrapcheck
	}

	checkedOutAt := timezone.Now()

	err = s.tx.WithinTransaction(ctx, func(sqltx *sqlx.Tx) error {
		bookingFields := map[string]any{
			model.FieldStatus:        model.StatusCheckedOut,
			model.FieldCheckedOutAt:  checkedOutAt,
			constant.FieldModifiedAt: checkedOutAt,
			constant.FieldModifiedBy: user,
		}

		affected, err := s.repo.UpdateTxGuarded(ctx, sqltx, bookingFields, bookingNotCheckedOutFilter(booking.ID))
		if err != nil {
			return err
		}

		if affected == 0 {
			return failure.Conflict("booking already checked out") //nolint:wrapcheck
		}

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusAvailable,
			constant.FieldModifiedAt: checkedOutAt,
			constant.FieldModifiedBy: user,
		}

		if err := s.roomRepo.UpdateTx(ctx, sqltx, roomFields, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			return err
		}

		customerFields := map[string]any{
			customerModel.FieldCurrentGuest: false,
			constant.FieldModifiedAt:        checkedOutAt,
			constant.FieldModifiedBy:        user,
		}

		return s.customerRepo.UpdateTx(ctx, sqltx, customerFields, shared.FilterByID(booking.CustomerID, customerModel.FieldID, customerModel.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check out booking")

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		return res, fmt.Errorf("failed to check out booking: %w", err)
	}

	booking.Status = model.StatusCheckedOut
	booking.CheckedOutAt = &checkedOutAt

	s.publishEvent(ctx, EventBookingCheckedOut, booking)
	s.invalidateBooking(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// invalidateBooking drops caches touched by a booking write. Room and
// customer listings embed state the write may have changed (room status,
// current_guest), so their prefixes are cleared too.
func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
		shared.InvalidateCaches(c, s.cache, cacheCustomerPrefix)
	}()
}
