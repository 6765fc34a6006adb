package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/communityexpress/laundry-client/internal/cart"
	"github.com/communityexpress/laundry-client/internal/catalog"
	"github.com/communityexpress/laundry-client/internal/orders"
	"github.com/communityexpress/laundry-client/pkg/api"
	"github.com/communityexpress/laundry-client/pkg/config"
	"github.com/communityexpress/laundry-client/pkg/db"
	"github.com/communityexpress/laundry-client/pkg/enums"
	"github.com/communityexpress/laundry-client/pkg/logger"
	"github.com/communityexpress/laundry-client/pkg/migrate"
	"github.com/communityexpress/laundry-client/pkg/session"
)

const usage = `usage: laundryctl <command> [flags]

commands:
  login    store an API token for subsequent commands
  logout   clear the stored session
  items    list a vendor's catalog
  orders   list orders (use -cached for the offline copy)
  order    show one order
  place    place an order from -item id:qty[:note] flags
  advance  move an order to its next status
  cancel   cancel a pending or confirmed order
  pay      record a payment against an order
`

// app carries the wired services shared by every subcommand.
type app struct {
	logg    *logger.Logger
	session *session.Manager
	catalog catalog.Service
	orders  orders.Service
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	logg := logger.New(logger.Options{ServiceName: "laundryctl"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "laundryctl",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to open local store", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing local store", err)
		}
	}()

	if err := migrate.MaybeRun(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to migrate local store", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(dbClient.DB())
	if err != nil {
		logg.Error(ctx, "failed to create session manager", err)
		os.Exit(1)
	}

	apiClient, err := api.NewClient(cfg.API, sessionManager, logg, nil)
	if err != nil {
		logg.Error(ctx, "failed to create API client", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(apiClient)
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(apiClient, orders.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(ctx, "failed to create order service", err)
		os.Exit(1)
	}

	a := &app{
		logg:    logg,
		session: sessionManager,
		catalog: catalogService,
		orders:  orderService,
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "laundryctl: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.session.Clear(ctx)
	case "items":
		return a.listItems(ctx, args)
	case "orders":
		return a.listOrders(ctx, args)
	case "order":
		return a.showOrder(ctx, args)
	case "place":
		return a.placeOrder(ctx, args)
	case "advance":
		return a.advanceOrder(ctx, args)
	case "cancel":
		return a.cancelOrder(ctx, args)
	case "pay":
		return a.payOrder(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	token := fs.String("token", "", "bearer token issued by the API")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.session.Save(ctx, *token, nil); err != nil {
		return err
	}
	fmt.Println("session saved")
	return nil
}

func (a *app) listItems(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("items", flag.ExitOnError)
	vendor := fs.String("vendor", "", "vendor id")
	category := fs.String("category", "", "filter by category")
	availableOnly := fs.Bool("available", false, "only available items")
	if err := fs.Parse(args); err != nil {
		return err
	}

	vendorID, err := uuid.Parse(*vendor)
	if err != nil {
		return fmt.Errorf("invalid -vendor: %w", err)
	}

	filter := catalog.ItemFilter{AvailableOnly: *availableOnly}
	if *category != "" {
		parsed, err := enums.ParseLaundryCategory(*category)
		if err != nil {
			return err
		}
		filter.Category = &parsed
	}

	items, err := a.catalog.ListItems(ctx, vendorID, filter)
	if err != nil {
		return err
	}
	for _, item := range items {
		status := "unavailable"
		if item.IsAvailable {
			status = "available"
		}
		fmt.Printf("%s  %-24s %-12s %8s  %s\n",
			item.ID, item.Name, item.Category.Label(), item.PricePerPiece.StringFixed(2), status)
	}
	return nil
}

func (a *app) listOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	status := fs.String("status", "", "filter by order status")
	cached := fs.Bool("cached", false, "read the local cache instead of the API")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var filter orders.ListFilter
	if *status != "" {
		parsed, err := enums.ParseOrderStatus(*status)
		if err != nil {
			return err
		}
		filter.Status = &parsed
	}

	list := a.orders.List
	if *cached {
		list = a.orders.ListCached
	}
	out, err := list(ctx, filter)
	if err != nil {
		return err
	}
	for _, order := range out {
		fmt.Printf("%s  %-18s %-12s %8s  %s\n",
			order.ID, order.OrderNumber, order.Status.Label(), order.TotalAmount.StringFixed(2),
			order.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *app) showOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	id := fs.String("id", "", "order id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	orderID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid -id: %w", err)
	}

	order, err := a.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	return printJSON(order)
}

// itemSpec accumulates repeated -item flags of the form id:qty[:note].
type itemSpec struct {
	id       uuid.UUID
	quantity int
	note     string
}

type itemSpecs []itemSpec

func (s *itemSpecs) String() string { return fmt.Sprintf("%d items", len(*s)) }

func (s *itemSpecs) Set(value string) error {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) < 2 {
		return fmt.Errorf("want id:qty[:note], got %q", value)
	}
	id, err := uuid.Parse(parts[0])
	if err != nil {
		return fmt.Errorf("invalid item id in %q: %w", value, err)
	}
	quantity, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid quantity in %q: %w", value, err)
	}
	spec := itemSpec{id: id, quantity: quantity}
	if len(parts) == 3 {
		spec.note = parts[2]
	}
	*s = append(*s, spec)
	return nil
}

func (a *app) placeOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("place", flag.ExitOnError)
	vendor := fs.String("vendor", "", "vendor id")
	pickupAddress := fs.String("pickup-address", "", "pickup address")
	pickupDate := fs.String("pickup-date", "", "pickup date (YYYY-MM-DD)")
	pickupSlot := fs.String("pickup-slot", "", "pickup window, e.g. 08:00-10:00")
	pickupNote := fs.String("pickup-note", "", "pickup instructions")
	deliveryAddress := fs.String("delivery-address", "", "delivery address (defaults to pickup)")
	deliveryNote := fs.String("delivery-note", "", "delivery instructions")
	var specs itemSpecs
	fs.Var(&specs, "item", "item as id:qty[:note]; repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	vendorID, err := uuid.Parse(*vendor)
	if err != nil {
		return fmt.Errorf("invalid -vendor: %w", err)
	}

	vendorInfo, err := a.catalog.GetVendor(ctx, vendorID)
	if err != nil {
		return err
	}
	items, err := a.catalog.ListItems(ctx, vendorID, catalog.ItemFilter{AvailableOnly: true})
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]catalog.LaundryItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	c := cart.New()
	for _, spec := range specs {
		item, ok := byID[spec.id]
		if !ok {
			return fmt.Errorf("item %s is not available from this vendor", spec.id)
		}
		c.AddItem(item, spec.quantity)
		if spec.note != "" {
			c.SetInstructions(item.ID, spec.note)
		}
	}

	input := orders.BookingInput{
		PickupAddress:   *pickupAddress,
		PickupDate:      *pickupDate,
		PickupTimeSlot:  enums.TimeSlot(*pickupSlot),
		DeliveryAddress: *deliveryAddress,
	}
	if *pickupNote != "" {
		input.PickupInstructions = pickupNote
	}
	if *deliveryNote != "" {
		input.DeliveryInstructions = deliveryNote
	}

	order, err := a.orders.Create(ctx, *vendorInfo, c, input)
	if err != nil {
		return err
	}
	fmt.Printf("placed %s (%s), total %s\n", order.OrderNumber, order.ID, order.TotalAmount.StringFixed(2))
	return nil
}

func (a *app) advanceOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("advance", flag.ExitOnError)
	id := fs.String("id", "", "order id")
	to := fs.String("to", "", "target status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	orderID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid -id: %w", err)
	}
	target, err := enums.ParseOrderStatus(*to)
	if err != nil {
		return err
	}

	order, err := a.orders.Advance(ctx, orderID, target)
	if err != nil {
		return err
	}
	fmt.Printf("%s is now %s\n", order.OrderNumber, order.Status.Label())
	return nil
}

func (a *app) cancelOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.String("id", "", "order id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	orderID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid -id: %w", err)
	}

	order, err := a.orders.Cancel(ctx, orderID)
	if err != nil {
		return err
	}
	fmt.Printf("%s cancelled\n", order.OrderNumber)
	return nil
}

func (a *app) payOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ExitOnError)
	id := fs.String("id", "", "order id")
	method := fs.String("method", "", "payment method (cash, card, upi, wallet)")
	reference := fs.String("reference", "", "external payment reference")
	if err := fs.Parse(args); err != nil {
		return err
	}
	orderID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid -id: %w", err)
	}
	parsedMethod, err := enums.ParsePaymentMethod(*method)
	if err != nil {
		return err
	}

	var ref *string
	if *reference != "" {
		ref = reference
	}
	result, err := a.orders.RecordPayment(ctx, orderID, parsedMethod, ref)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("payment declined: %s", result.Message)
	}
	fmt.Printf("payment recorded (%s)\n", result.PaymentReference)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
