package sink

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/maxshowarth/retailgen/internal/retail"
)

func smallDataset(t *testing.T) (*retail.Dataset, RunInfo) {
	t.Helper()

	scale, err := retail.ScaleByName("small")
	if err != nil {
		t.Fatal(err)
	}
	window := retail.NewWindow(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 3)
	ds, err := retail.Generate(retail.Config{Scale: scale, Window: window, Seed: 42})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return ds, RunInfo{Seed: 42, Scale: "small", Window: window}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return rows
}

func TestCSVSinkWrite(t *testing.T) {
	ds, run := smallDataset(t)
	dir := t.TempDir()

	s, err := Get("csv", Config{OutputDir: dir, Overwrite: true})
	if err != nil {
		t.Fatalf("Failed to construct csv sink: %v", err)
	}
	if err := s.Write(context.Background(), ds, run); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	tests := []struct {
		file    string
		headers []string
		rows    int
	}{
		{"stores.csv",
			[]string{"store_id", "name", "region", "city", "latitude", "longitude", "opened_date"},
			len(ds.Stores)},
		{"products.csv",
			[]string{"product_id", "sku", "name", "category", "brand", "base_price"},
			len(ds.Products)},
		{"customers.csv",
			[]string{"customer_id", "segment", "signup_ts", "home_region", "home_city"},
			len(ds.Customers)},
		{"orders.csv",
			[]string{"order_id", "store_id", "customer_id", "order_ts", "payment_type", "discount_pct"},
			len(ds.Orders)},
		{"order_items.csv",
			[]string{"order_id", "line_number", "product_id", "qty", "unit_price", "extended_price"},
			len(ds.Items)},
		{"inventory_snapshots.csv",
			[]string{"snapshot_ts", "store_id", "product_id", "on_hand", "on_order", "safety_stock", "reorder_qty"},
			len(ds.Inventory)},
		{"promotions.csv",
			[]string{"promo_id", "product_id", "start_date", "end_date", "promo_type", "discount_pct"},
			len(ds.Promotions)},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			rows := readCSV(t, filepath.Join(dir, tt.file))
			if len(rows) == 0 {
				t.Fatal("Empty file")
			}
			if !reflect.DeepEqual(rows[0], tt.headers) {
				t.Errorf("Header mismatch:\n got %v\nwant %v", rows[0], tt.headers)
			}
			if got := len(rows) - 1; got != tt.rows {
				t.Errorf("Row count = %d, want %d", got, tt.rows)
			}
		})
	}
}

func TestCSVSinkDeterministicOutput(t *testing.T) {
	ds, run := smallDataset(t)

	dir1 := t.TempDir()
	dir2 := t.TempDir()
	for _, dir := range []string{dir1, dir2} {
		s, err := Get("csv", Config{OutputDir: dir, Overwrite: true})
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Write(context.Background(), ds, run); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	for _, name := range csvFiles {
		b1, err := os.ReadFile(filepath.Join(dir1, name))
		if err != nil {
			t.Fatal(err)
		}
		b2, err := os.ReadFile(filepath.Join(dir2, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(b1) != string(b2) {
			t.Errorf("File %s differs between identical writes", name)
		}
	}
}

func TestCSVSinkNoOverwrite(t *testing.T) {
	ds, run := smallDataset(t)
	dir := t.TempDir()

	// Pre-existing file should block the whole write.
	if err := os.WriteFile(filepath.Join(dir, "orders.csv"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Get("csv", Config{OutputDir: dir, Overwrite: false})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write(context.Background(), ds, run); err == nil {
		t.Fatal("Expected refusal to overwrite, got nil error")
	}

	// Nothing else should have been written.
	if _, err := os.Stat(filepath.Join(dir, "stores.csv")); !os.IsNotExist(err) {
		t.Error("Write created files despite overwrite refusal")
	}
}

func TestCSVSinkRequiresDir(t *testing.T) {
	if _, err := Get("csv", Config{}); err == nil {
		t.Error("Expected error for missing output directory")
	}
}

func TestCSVSinkCreatesDir(t *testing.T) {
	ds, run := smallDataset(t)
	dir := filepath.Join(t.TempDir(), "nested", "out")

	s, err := Get("csv", Config{OutputDir: dir, Overwrite: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write(context.Background(), ds, run); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "stores.csv")); err != nil {
		t.Errorf("Expected output in created directory: %v", err)
	}
}

func TestRegistry(t *testing.T) {
	names := List()

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["csv"] {
		t.Error("csv sink not registered")
	}
	if !found["postgres"] {
		t.Error("postgres sink not registered")
	}

	if _, err := Get("nonexistent", Config{}); err == nil {
		t.Error("Expected error for unknown sink name")
	}
}
