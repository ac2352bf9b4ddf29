//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/maxshowarth/retailgen/internal/logging"
	"github.com/maxshowarth/retailgen/internal/retail"
)

func init() {
	Register("csv", newCSVSink)
}

// csvSink writes one CSV file per table under a directory.
type csvSink struct {
	dir       string
	overwrite bool
}

func newCSVSink(cfg Config) (Sink, error) {
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required for csv output")
	}
	return &csvSink{dir: cfg.OutputDir, overwrite: cfg.Overwrite}, nil
}

func (s *csvSink) Name() string { return "csv" }

var csvFiles = []string{
	"stores.csv", "products.csv", "customers.csv", "orders.csv",
	"order_items.csv", "inventory_snapshots.csv", "promotions.csv",
}

func (s *csvSink) Write(ctx context.Context, ds *retail.Dataset, run RunInfo) error {
	if !s.overwrite {
		for _, name := range csvFiles {
			path := filepath.Join(s.dir, name)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("refusing to overwrite existing file %s", path)
			}
		}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := s.writeStores(ds.Stores); err != nil {
		return err
	}
	if err := s.writeProducts(ds.Products); err != nil {
		return err
	}
	if err := s.writeCustomers(ds.Customers); err != nil {
		return err
	}
	if err := s.writeOrders(ds.Orders); err != nil {
		return err
	}
	if err := s.writeItems(ds.Items); err != nil {
		return err
	}
	if err := s.writeInventory(ds.Inventory); err != nil {
		return err
	}
	if err := s.writePromotions(ds.Promotions); err != nil {
		return err
	}

	logging.Info().
		Str("output_dir", s.dir).
		Int64("seed", run.Seed).
		Str("scale", run.Scale).
		Msg("CSV output complete")
	return nil
}

// writeTable streams rows to one CSV file through a callback so large
// tables never materialize a second time as strings.
func (s *csvSink) writeTable(name string, headers []string, rowCount int, row func(i int) []string) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rowCount; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}

	logging.Info().Str("file", name).Int("rows", rowCount).Msg("Wrote table")
	return nil
}

func (s *csvSink) writeStores(stores []retail.Store) error {
	headers := []string{"store_id", "name", "region", "city", "latitude", "longitude", "opened_date"}
	return s.writeTable("stores.csv", headers, len(stores), func(i int) []string {
		st := stores[i]
		return []string{
			strconv.Itoa(st.StoreID),
			st.Name,
			st.Region,
			st.City,
			strconv.FormatFloat(st.Latitude, 'f', 6, 64),
			strconv.FormatFloat(st.Longitude, 'f', 6, 64),
			formatDate(st.OpenedDate),
		}
	})
}

func (s *csvSink) writeProducts(products []retail.Product) error {
	headers := []string{"product_id", "sku", "name", "category", "brand", "base_price"}
	return s.writeTable("products.csv", headers, len(products), func(i int) []string {
		p := products[i]
		return []string{
			strconv.Itoa(p.ProductID),
			p.SKU,
			p.Name,
			p.Category,
			p.Brand,
			formatMoney(p.BasePrice),
		}
	})
}

func (s *csvSink) writeCustomers(customers []retail.Customer) error {
	headers := []string{"customer_id", "segment", "signup_ts", "home_region", "home_city"}
	return s.writeTable("customers.csv", headers, len(customers), func(i int) []string {
		c := customers[i]
		return []string{
			strconv.Itoa(c.CustomerID),
			c.Segment,
			formatTS(c.SignupTS),
			c.HomeRegion,
			c.HomeCity,
		}
	})
}

func (s *csvSink) writeOrders(orders []retail.Order) error {
	headers := []string{"order_id", "store_id", "customer_id", "order_ts", "payment_type", "discount_pct"}
	return s.writeTable("orders.csv", headers, len(orders), func(i int) []string {
		o := orders[i]
		return []string{
			o.OrderID,
			strconv.Itoa(o.StoreID),
			strconv.Itoa(o.CustomerID),
			formatTS(o.OrderTS),
			o.PaymentType,
			formatPct(o.DiscountPct),
		}
	})
}

func (s *csvSink) writeItems(items []retail.OrderItem) error {
	headers := []string{"order_id", "line_number", "product_id", "qty", "unit_price", "extended_price"}
	return s.writeTable("order_items.csv", headers, len(items), func(i int) []string {
		it := items[i]
		return []string{
			it.OrderID,
			strconv.Itoa(it.LineNumber),
			strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Qty),
			formatMoney(it.UnitPrice),
			formatMoney(it.ExtendedPrice),
		}
	})
}

func (s *csvSink) writeInventory(snaps []retail.InventorySnapshot) error {
	headers := []string{"snapshot_ts", "store_id", "product_id", "on_hand", "on_order", "safety_stock", "reorder_qty"}
	return s.writeTable("inventory_snapshots.csv", headers, len(snaps), func(i int) []string {
		sn := snaps[i]
		return []string{
			formatTS(sn.SnapshotTS),
			strconv.Itoa(sn.StoreID),
			strconv.Itoa(sn.ProductID),
			strconv.Itoa(sn.OnHand),
			strconv.Itoa(sn.OnOrder),
			strconv.Itoa(sn.SafetyStock),
			strconv.Itoa(sn.ReorderQty),
		}
	})
}

func (s *csvSink) writePromotions(promos []retail.Promotion) error {
	headers := []string{"promo_id", "product_id", "start_date", "end_date", "promo_type", "discount_pct"}
	return s.writeTable("promotions.csv", headers, len(promos), func(i int) []string {
		p := promos[i]
		return []string{
			p.PromoID,
			strconv.Itoa(p.ProductID),
			formatDate(p.StartDate),
			formatDate(p.EndDate),
			p.PromoType,
			formatPct(p.DiscountPct),
		}
	})
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatTS(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
