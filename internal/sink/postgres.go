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
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxshowarth/retailgen/internal/datagen"
	"github.com/maxshowarth/retailgen/internal/db"
	"github.com/maxshowarth/retailgen/internal/logging"
	"github.com/maxshowarth/retailgen/internal/retail"
)

func init() {
	Register("postgres", newPostgresSink)
}

const batchSize = 1000

// postgresSink loads the dataset into PostgreSQL tables with multi-row
// batched inserts.
type postgresSink struct {
	connString   string
	dropExisting bool
}

func newPostgresSink(cfg Config) (Sink, error) {
	if cfg.Connection == "" {
		return nil, fmt.Errorf("connection string is required for postgres output")
	}
	return &postgresSink{connString: cfg.Connection, dropExisting: cfg.DropExisting}, nil
}

func (s *postgresSink) Name() string { return "postgres" }

var tableNames = []string{
	"stores", "products", "customers", "promotions",
	"orders", "order_items", "inventory_snapshots",
}

var createTableSQL = []string{
	`CREATE TABLE IF NOT EXISTS stores (
        store_id    INTEGER PRIMARY KEY,
        name        TEXT NOT NULL,
        region      TEXT NOT NULL,
        city        TEXT NOT NULL,
        latitude    DOUBLE PRECISION NOT NULL,
        longitude   DOUBLE PRECISION NOT NULL,
        opened_date DATE NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS products (
        product_id INTEGER PRIMARY KEY,
        sku        TEXT NOT NULL,
        name       TEXT NOT NULL,
        category   TEXT NOT NULL,
        brand      TEXT NOT NULL,
        base_price NUMERIC(10,2) NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS customers (
        customer_id INTEGER PRIMARY KEY,
        segment     TEXT NOT NULL,
        signup_ts   TIMESTAMP NOT NULL,
        home_region TEXT NOT NULL,
        home_city   TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS promotions (
        promo_id     TEXT NOT NULL,
        product_id   INTEGER NOT NULL REFERENCES products (product_id),
        start_date   DATE NOT NULL,
        end_date     DATE NOT NULL,
        promo_type   TEXT NOT NULL,
        discount_pct NUMERIC(5,2) NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS orders (
        order_id     TEXT PRIMARY KEY,
        store_id     INTEGER NOT NULL REFERENCES stores (store_id),
        customer_id  INTEGER NOT NULL REFERENCES customers (customer_id),
        order_ts     TIMESTAMP NOT NULL,
        payment_type TEXT NOT NULL,
        discount_pct DOUBLE PRECISION NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS order_items (
        order_id       TEXT NOT NULL REFERENCES orders (order_id),
        line_number    INTEGER NOT NULL,
        product_id     INTEGER NOT NULL REFERENCES products (product_id),
        qty            INTEGER NOT NULL,
        unit_price     NUMERIC(10,2) NOT NULL,
        extended_price NUMERIC(10,2) NOT NULL,
        PRIMARY KEY (order_id, line_number)
    )`,
	`CREATE TABLE IF NOT EXISTS inventory_snapshots (
        snapshot_ts  TIMESTAMP NOT NULL,
        store_id     INTEGER NOT NULL REFERENCES stores (store_id),
        product_id   INTEGER NOT NULL REFERENCES products (product_id),
        on_hand      INTEGER NOT NULL,
        on_order     INTEGER NOT NULL,
        safety_stock INTEGER NOT NULL,
        reorder_qty  INTEGER NOT NULL,
        PRIMARY KEY (snapshot_ts, store_id, product_id)
    )`,
}

func (s *postgresSink) Write(ctx context.Context, ds *retail.Dataset, run RunInfo) error {
	pool, err := db.Connect(ctx, s.connString)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if s.dropExisting {
		logging.Info().Msg("Dropping existing tables")
		for i := len(tableNames) - 1; i >= 0; i-- {
			if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", tableNames[i])); err != nil {
				return fmt.Errorf("failed to drop %s: %w", tableNames[i], err)
			}
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	for _, sql := range createTableSQL {
		if _, err := pool.Exec(ctx, sql); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if err := s.loadStores(ctx, pool, ds.Stores); err != nil {
		return err
	}
	if err := s.loadProducts(ctx, pool, ds.Products); err != nil {
		return err
	}
	if err := s.loadCustomers(ctx, pool, ds.Customers); err != nil {
		return err
	}
	if err := s.loadPromotions(ctx, pool, ds.Promotions); err != nil {
		return err
	}
	if err := s.loadOrders(ctx, pool, ds.Orders); err != nil {
		return err
	}
	if err := s.loadItems(ctx, pool, ds.Items); err != nil {
		return err
	}
	if err := s.loadInventory(ctx, pool, ds.Inventory); err != nil {
		return err
	}

	if err := db.SaveRunMetadata(ctx, pool, db.RunMetadata{
		Seed:        run.Seed,
		Scale:       run.Scale,
		WindowStart: run.Window.Start.Format("2006-01-02"),
		WindowEnd:   run.Window.End.Format("2006-01-02"),
	}); err != nil {
		return fmt.Errorf("failed to save run metadata: %w", err)
	}

	logging.Info().
		Int64("seed", run.Seed).
		Str("scale", run.Scale).
		Msg("Postgres load complete")
	return nil
}

func (s *postgresSink) loadStores(ctx context.Context, pool *pgxpool.Pool, stores []retail.Store) error {
	values := make([]string, 0, batchSize)
	for i, st := range stores {
		values = append(values, fmt.Sprintf("(%d, '%s', '%s', '%s', %.6f, %.6f, '%s')",
			st.StoreID,
			escapeSingleQuote(st.Name),
			st.Region,
			escapeSingleQuote(st.City),
			st.Latitude,
			st.Longitude,
			formatDate(st.OpenedDate),
		))
		if len(values) >= batchSize || i == len(stores)-1 {
			if err := executeBatchInsert(ctx, pool, "stores",
				"(store_id, name, region, city, latitude, longitude, opened_date)", values); err != nil {
				return err
			}
			values = values[:0]
		}
	}
	logging.Info().Int("count", len(stores)).Msg("stores loaded")
	return nil
}

func (s *postgresSink) loadProducts(ctx context.Context, pool *pgxpool.Pool, products []retail.Product) error {
	values := make([]string, 0, batchSize)
	for i, p := range products {
		values = append(values, fmt.Sprintf("(%d, '%s', '%s', '%s', '%s', %.2f)",
			p.ProductID,
			p.SKU,
			escapeSingleQuote(p.Name),
			escapeSingleQuote(p.Category),
			escapeSingleQuote(p.Brand),
			p.BasePrice,
		))
		if len(values) >= batchSize || i == len(products)-1 {
			if err := executeBatchInsert(ctx, pool, "products",
				"(product_id, sku, name, category, brand, base_price)", values); err != nil {
				return err
			}
			values = values[:0]
		}
	}
	logging.Info().Int("count", len(products)).Msg("products loaded")
	return nil
}

func (s *postgresSink) loadCustomers(ctx context.Context, pool *pgxpool.Pool, customers []retail.Customer) error {
	progress := datagen.NewProgressReporter("customers", int64(len(customers)), 100000)
	values := make([]string, 0, batchSize)
	for i, c := range customers {
		values = append(values, fmt.Sprintf("(%d, '%s', '%s', '%s', '%s')",
			c.CustomerID,
			c.Segment,
			formatTS(c.SignupTS),
			c.HomeRegion,
			escapeSingleQuote(c.HomeCity),
		))
		if len(values) >= batchSize || i == len(customers)-1 {
			if err := executeBatchInsert(ctx, pool, "customers",
				"(customer_id, segment, signup_ts, home_region, home_city)", values); err != nil {
				return err
			}
			progress.Update(int64(len(values)))
			values = values[:0]
		}
	}
	progress.Done()
	return nil
}

func (s *postgresSink) loadPromotions(ctx context.Context, pool *pgxpool.Pool, promos []retail.Promotion) error {
	values := make([]string, 0, batchSize)
	for i, p := range promos {
		values = append(values, fmt.Sprintf("('%s', %d, '%s', '%s', '%s', %.2f)",
			p.PromoID,
			p.ProductID,
			formatDate(p.StartDate),
			formatDate(p.EndDate),
			p.PromoType,
			p.DiscountPct,
		))
		if len(values) >= batchSize || i == len(promos)-1 {
			if err := executeBatchInsert(ctx, pool, "promotions",
				"(promo_id, product_id, start_date, end_date, promo_type, discount_pct)", values); err != nil {
				return err
			}
			values = values[:0]
		}
	}
	logging.Info().Int("count", len(promos)).Msg("promotions loaded")
	return nil
}

func (s *postgresSink) loadOrders(ctx context.Context, pool *pgxpool.Pool, orders []retail.Order) error {
	progress := datagen.NewProgressReporter("orders", int64(len(orders)), 100000)
	values := make([]string, 0, batchSize)
	for i, o := range orders {
		values = append(values, fmt.Sprintf("('%s', %d, %d, '%s', '%s', %.2f)",
			o.OrderID,
			o.StoreID,
			o.CustomerID,
			formatTS(o.OrderTS),
			o.PaymentType,
			o.DiscountPct,
		))
		if len(values) >= batchSize || i == len(orders)-1 {
			if err := executeBatchInsert(ctx, pool, "orders",
				"(order_id, store_id, customer_id, order_ts, payment_type, discount_pct)", values); err != nil {
				return err
			}
			progress.Update(int64(len(values)))
			values = values[:0]
		}
	}
	progress.Done()
	return nil
}

func (s *postgresSink) loadItems(ctx context.Context, pool *pgxpool.Pool, items []retail.OrderItem) error {
	progress := datagen.NewProgressReporter("order_items", int64(len(items)), 100000)
	values := make([]string, 0, batchSize)
	for i, it := range items {
		values = append(values, fmt.Sprintf("('%s', %d, %d, %d, %.2f, %.2f)",
			it.OrderID,
			it.LineNumber,
			it.ProductID,
			it.Qty,
			it.UnitPrice,
			it.ExtendedPrice,
		))
		if len(values) >= batchSize || i == len(items)-1 {
			if err := executeBatchInsert(ctx, pool, "order_items",
				"(order_id, line_number, product_id, qty, unit_price, extended_price)", values); err != nil {
				return err
			}
			progress.Update(int64(len(values)))
			values = values[:0]
		}
	}
	progress.Done()
	return nil
}

func (s *postgresSink) loadInventory(ctx context.Context, pool *pgxpool.Pool, snaps []retail.InventorySnapshot) error {
	progress := datagen.NewProgressReporter("inventory_snapshots", int64(len(snaps)), 100000)
	values := make([]string, 0, batchSize)
	for i, sn := range snaps {
		values = append(values, fmt.Sprintf("('%s', %d, %d, %d, %d, %d, %d)",
			formatTS(sn.SnapshotTS),
			sn.StoreID,
			sn.ProductID,
			sn.OnHand,
			sn.OnOrder,
			sn.SafetyStock,
			sn.ReorderQty,
		))
		if len(values) >= batchSize || i == len(snaps)-1 {
			if err := executeBatchInsert(ctx, pool, "inventory_snapshots",
				"(snapshot_ts, store_id, product_id, on_hand, on_order, safety_stock, reorder_qty)", values); err != nil {
				return err
			}
			progress.Update(int64(len(values)))
			values = values[:0]
		}
	}
	progress.Done()
	return nil
}

func executeBatchInsert(ctx context.Context, pool *pgxpool.Pool, table, columns string, values []string) error {
	if len(values) == 0 {
		return nil
	}
	sql := fmt.Sprintf("INSERT INTO %s %s VALUES %s", table, columns, strings.Join(values, ", "))
	_, err := pool.Exec(ctx, sql)
	return err
}

func escapeSingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
