package orders

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/communityexpress/laundry-client/internal/cart"
	"github.com/communityexpress/laundry-client/internal/catalog"
	"github.com/communityexpress/laundry-client/pkg/db/models"
	"github.com/communityexpress/laundry-client/pkg/enums"
	pkgerrors "github.com/communityexpress/laundry-client/pkg/errors"
	"github.com/communityexpress/laundry-client/pkg/logger"
)

type apiClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
}

// Service drives the order lifecycle: creation, status transitions,
// cancellation and payment recording. Local preconditions are checked
// before any remote call goes out.
type Service interface {
	Create(ctx context.Context, vendor catalog.LaundryVendor, c *cart.Cart, input BookingInput) (*models.LaundryOrder, error)
	Get(ctx context.Context, orderID uuid.UUID) (*models.LaundryOrder, error)
	List(ctx context.Context, filter ListFilter) ([]models.LaundryOrder, error)
	ListCached(ctx context.Context, filter ListFilter) ([]models.LaundryOrder, error)
	Advance(ctx context.Context, orderID uuid.UUID, target enums.OrderStatus) (*models.LaundryOrder, error)
	Cancel(ctx context.Context, orderID uuid.UUID) (*models.LaundryOrder, error)
	RecordPayment(ctx context.Context, orderID uuid.UUID, method enums.PaymentMethod, reference *string) (*PaymentResult, error)
}

type service struct {
	api      apiClient
	cache    Repository
	logger   *logger.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewService builds the lifecycle service with the required dependencies.
func NewService(api apiClient, cache Repository, logg *logger.Logger) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("api client required")
	}
	if cache == nil {
		return nil, fmt.Errorf("order cache repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		api:      api,
		cache:    cache,
		logger:   logg,
		validate: validator.New(),
		now:      time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, vendor catalog.LaundryVendor, c *cart.Cart, input BookingInput) (*models.LaundryOrder, error) {
	if c == nil || c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if !vendor.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor is not accepting orders")
	}
	if err := s.validateBooking(input); err != nil {
		return nil, err
	}

	totals := c.Totals(vendor)
	if !c.CanCheckout(vendor) {
		return nil, pkgerrors.New(pkgerrors.CodeMinimumOrder, "order total is below the vendor minimum").
			WithDetails(map[string]string{
				"total":   totals.Total.String(),
				"minimum": vendor.MinimumOrderAmount.String(),
			})
	}

	deliveryAddress := input.DeliveryAddress
	if deliveryAddress == "" {
		deliveryAddress = input.PickupAddress
	}

	lines := c.Lines()
	items := make([]createOrderItem, 0, len(lines))
	for _, line := range lines {
		item := createOrderItem{
			LaundryItemID: line.Item.ID,
			Quantity:      line.Quantity,
		}
		if line.Instructions != "" {
			note := line.Instructions
			item.SpecialInstructions = &note
		}
		items = append(items, item)
	}

	body := createOrderRequest{
		LaundryVendorID:      vendor.ID,
		PickupAddress:        input.PickupAddress,
		PickupDate:           input.PickupDate,
		PickupTimeSlot:       input.PickupTimeSlot,
		PickupInstructions:   input.PickupInstructions,
		DeliveryAddress:      deliveryAddress,
		DeliveryInstructions: input.DeliveryInstructions,
		Items:                items,
	}

	var order models.LaundryOrder
	if err := s.api.Post(ctx, "/laundry/orders", body, &order); err != nil {
		return nil, err
	}

	lctx := s.logger.WithOrderID(ctx, order.ID.String())
	s.logger.Info(lctx, "order placed")
	s.mirror(lctx, &order)
	return &order, nil
}

func (s *service) Get(ctx context.Context, orderID uuid.UUID) (*models.LaundryOrder, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	var order models.LaundryOrder
	if err := s.api.Get(ctx, "/laundry/orders/"+orderID.String(), nil, &order); err != nil {
		return nil, err
	}
	s.mirror(ctx, &order)
	return &order, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]models.LaundryOrder, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status filter")
	}

	query := url.Values{}
	status := ""
	if filter.Status != nil {
		status = filter.Status.String()
	}
	query.Set("status", status)

	var out []models.LaundryOrder
	if err := s.api.Get(ctx, "/laundry/orders", query, &out); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	for i := range out {
		s.mirror(ctx, &out[i])
	}
	return out, nil
}

func (s *service) ListCached(ctx context.Context, filter ListFilter) ([]models.LaundryOrder, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status filter")
	}
	orders, err := s.cache.List(ctx, filter.Status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read order cache")
	}
	return orders, nil
}

func (s *service) Advance(ctx context.Context, orderID uuid.UUID, target enums.OrderStatus) (*models.LaundryOrder, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if !target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown target status")
	}

	// Fresh read before the write: another session may have moved the
	// order since the caller last saw it. The server applies writes
	// last-writer-wins; the guard narrows the race window.
	current, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, target) {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidTransition,
			fmt.Sprintf("cannot move order from %s to %s", current.Status, target)).
			WithDetails(map[string]string{
				"from": current.Status.String(),
				"to":   target.String(),
			})
	}

	updated, err := s.putStatus(ctx, orderID, target)
	if err != nil {
		return nil, err
	}

	lctx := s.logger.WithOrderID(ctx, orderID.String())
	s.logger.Info(s.logger.WithField(lctx, "status", target.String()), "order advanced")
	return updated, nil
}

func (s *service) Cancel(ctx context.Context, orderID uuid.UUID) (*models.LaundryOrder, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	current, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !CanCancel(current.Status) {
		return nil, pkgerrors.New(pkgerrors.CodeCannotCancel,
			fmt.Sprintf("order in status %s can no longer be cancelled", current.Status)).
			WithDetails(map[string]string{"status": current.Status.String()})
	}

	updated, err := s.putStatus(ctx, orderID, enums.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.logger.Info(s.logger.WithOrderID(ctx, orderID.String()), "order cancelled")
	return updated, nil
}

func (s *service) RecordPayment(ctx context.Context, orderID uuid.UUID, method enums.PaymentMethod, reference *string) (*PaymentResult, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	body := paymentRequest{PaymentMethod: method, PaymentReference: reference}
	var result PaymentResult
	if err := s.api.Post(ctx, "/laundry/orders/"+orderID.String()+"/payment", body, &result); err != nil {
		return nil, err
	}

	// Payment is independent of the status machine; only the cached
	// payment fields move.
	if result.Success {
		if cached, err := s.cache.FindByID(ctx, orderID); err == nil && cached != nil {
			cached.PaymentStatus = enums.PaymentStatusPaid
			cached.PaymentMethod = &method
			if result.PaymentReference != "" {
				ref := result.PaymentReference
				cached.PaymentReference = &ref
			}
			s.mirror(ctx, cached)
		}
	}

	s.logger.Info(s.logger.WithOrderID(ctx, orderID.String()), "payment recorded")
	return &result, nil
}

// putStatus performs the shared PUT and milestone stamping for advance
// and cancel.
func (s *service) putStatus(ctx context.Context, orderID uuid.UUID, target enums.OrderStatus) (*models.LaundryOrder, error) {
	var updated models.LaundryOrder
	if err := s.api.Put(ctx, "/laundry/orders/"+orderID.String(), updateOrderRequest{Status: target}, &updated); err != nil {
		return nil, err
	}
	updated.Status = target
	stampMilestone(&updated, target, s.now())
	s.mirror(ctx, &updated)
	return &updated, nil
}

func (s *service) validateBooking(input BookingInput) error {
	var errs error
	if err := s.validate.Struct(input); err != nil {
		if fields, ok := err.(validator.ValidationErrors); ok {
			for _, field := range fields {
				errs = multierr.Append(errs, fmt.Errorf("%s is invalid", field.Field()))
			}
		} else {
			errs = multierr.Append(errs, err)
		}
	}
	if input.PickupTimeSlot != "" && !input.PickupTimeSlot.IsValid() {
		errs = multierr.Append(errs, fmt.Errorf("PickupTimeSlot is not a known window"))
	}
	if errs == nil {
		return nil
	}

	details := make([]string, 0, len(multierr.Errors(errs)))
	for _, e := range multierr.Errors(errs) {
		details = append(details, e.Error())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, errs, "booking details incomplete").
		WithDetails(details)
}

// mirror writes the order into the local cache. Cache failures are logged
// and never fail the remote operation.
func (s *service) mirror(ctx context.Context, order *models.LaundryOrder) {
	if order.ID == uuid.Nil {
		return
	}
	if err := s.cache.Upsert(ctx, order); err != nil {
		s.logger.Warn(s.logger.WithField(ctx, "order_id", order.ID.String()), "order cache update failed")
	}
}
