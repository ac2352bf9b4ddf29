package sink

import (
	"context"
	"testing"

	"github.com/maxshowarth/retailgen/internal/db"
	"github.com/maxshowarth/retailgen/internal/testutil"
)

func TestPostgresSinkRequiresConnection(t *testing.T) {
	if _, err := Get("postgres", Config{}); err == nil {
		t.Error("Expected error for missing connection string")
	}
}

func TestPostgresSinkIntegration(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)
	connStr := testutil.CreateTestDB(t, baseConnStr)
	dbName := testutil.GetDBNameFromConnStr(connStr)
	defer testutil.DropTestDB(t, baseConnStr, dbName)

	ds, run := smallDataset(t)

	s, err := Get("postgres", Config{Connection: connStr})
	if err != nil {
		t.Fatalf("Failed to construct postgres sink: %v", err)
	}

	ctx := context.Background()
	if err := s.Write(ctx, ds, run); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	pool := testutil.ConnectTestDB(t, connStr)
	defer pool.Close()

	counts := []struct {
		table string
		want  int
	}{
		{"stores", len(ds.Stores)},
		{"products", len(ds.Products)},
		{"customers", len(ds.Customers)},
		{"promotions", len(ds.Promotions)},
		{"orders", len(ds.Orders)},
		{"order_items", len(ds.Items)},
		{"inventory_snapshots", len(ds.Inventory)},
	}
	for _, tt := range counts {
		var got int
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+tt.table).Scan(&got); err != nil {
			t.Fatalf("Count of %s failed: %v", tt.table, err)
		}
		if got != tt.want {
			t.Errorf("Table %s has %d rows, want %d", tt.table, got, tt.want)
		}
	}

	// Run metadata is written alongside the data.
	seed, err := db.GetMetadataValue(ctx, pool, "seed")
	if err != nil {
		t.Fatalf("Failed to read seed metadata: %v", err)
	}
	if seed != "42" {
		t.Errorf("Metadata seed = %q, want \"42\"", seed)
	}
	scale, err := db.GetMetadataValue(ctx, pool, "scale")
	if err != nil {
		t.Fatalf("Failed to read scale metadata: %v", err)
	}
	if scale != "small" {
		t.Errorf("Metadata scale = %q, want \"small\"", scale)
	}
}

func TestPostgresSinkDropExisting(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)
	connStr := testutil.CreateTestDB(t, baseConnStr)
	dbName := testutil.GetDBNameFromConnStr(connStr)
	defer testutil.DropTestDB(t, baseConnStr, dbName)

	ds, run := smallDataset(t)
	ctx := context.Background()

	first, err := Get("postgres", Config{Connection: connStr})
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Write(ctx, ds, run); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	// Without --drop-existing a reload would double the row counts;
	// with it the tables are rebuilt from scratch.
	second, err := Get("postgres", Config{Connection: connStr, DropExisting: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := second.Write(ctx, ds, run); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	pool := testutil.ConnectTestDB(t, connStr)
	defer pool.Close()

	var got int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&got); err != nil {
		t.Fatal(err)
	}
	if got != len(ds.Orders) {
		t.Errorf("Orders after drop-and-reload = %d, want %d", got, len(ds.Orders))
	}
}
