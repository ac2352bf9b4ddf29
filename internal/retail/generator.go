package retail

import (
	"fmt"

	"github.com/maxshowarth/retailgen/internal/datagen"
	"github.com/maxshowarth/retailgen/internal/logging"
)

// Config holds the parameters for one generation run.
type Config struct {
	Scale  Scale
	Window Window
	Seed   int64
}

// Validate fails fast on parameters that cannot produce a run; nothing
// is generated when it errors.
func (c Config) Validate() error {
	if err := c.Scale.Validate(); err != nil {
		return fmt.Errorf("invalid scale: %w", err)
	}
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("invalid window: %w", err)
	}
	return nil
}

// Generate produces one complete, relationally consistent dataset in
// dependency order: dimensions, then promotions, then orders and items,
// then the pricing pass, then inventory snapshots. The whole run is
// deterministic for a fixed (seed, scale, window).
func Generate(cfg Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Info().
		Int64("seed", cfg.Seed).
		Int("stores", cfg.Scale.Stores).
		Int("products", cfg.Scale.Products).
		Int("customers", cfg.Scale.Customers).
		Int("orders_estimate", cfg.Scale.OrdersEstimate).
		Str("start", cfg.Window.Start.Format("2006-01-02")).
		Str("end", cfg.Window.End.Format("2006-01-02")).
		Msg("Generating retail dataset")

	f := datagen.New(uint64(cfg.Seed))

	ds := &Dataset{}
	ds.Stores = GenerateStores(f, cfg.Scale.Stores, cfg.Window.Start)
	ds.Products = GenerateProducts(f, cfg.Scale.Products)
	ds.Customers = GenerateCustomers(f, cfg.Scale.Customers, cfg.Window.Start)
	ds.Promotions = GeneratePromotions(f, ds.Products, cfg.Window)

	ds.Orders, ds.Items = GenerateOrders(cfg.Seed, ds.Stores, ds.Customers, ds.Products,
		cfg.Window, cfg.Scale.OrdersEstimate)

	idx := BuildPromoIndex(ds.Promotions)
	if err := ApplyDiscounts(ds, idx); err != nil {
		return nil, fmt.Errorf("pricing pass failed: %w", err)
	}

	ds.Inventory = GenerateInventory(f, ds.Stores, ds.Products, cfg.Window)

	logging.Info().
		Int("stores", len(ds.Stores)).
		Int("products", len(ds.Products)).
		Int("customers", len(ds.Customers)).
		Int("promotions", len(ds.Promotions)).
		Int("orders", len(ds.Orders)).
		Int("order_items", len(ds.Items)).
		Int("inventory_snapshots", len(ds.Inventory)).
		Msg("Dataset complete")

	return ds, nil
}
