package retail

import "testing"

func TestScaleByName(t *testing.T) {
	tests := []struct {
		name       string
		scale      string
		wantStores int
		wantError  bool
	}{
		{"small", "small", 10, false},
		{"medium", "medium", 50, false},
		{"large", "large", 200, false},
		{"unknown", "galactic", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ScaleByName(tt.scale)
			if tt.wantError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Stores != tt.wantStores {
				t.Errorf("Stores = %d, want %d", s.Stores, tt.wantStores)
			}
		})
	}
}

func TestScaleNames(t *testing.T) {
	names := ScaleNames()
	want := []string{"large", "medium", "small"}

	if len(names) != len(want) {
		t.Fatalf("ScaleNames returned %d names, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("ScaleNames[%d] = %s, want %s", i, names[i], name)
		}
	}
}

func TestScaleSmallTier(t *testing.T) {
	s, err := ScaleByName("small")
	if err != nil {
		t.Fatal(err)
	}
	if s.Stores != 10 || s.Products != 200 || s.Customers != 2000 || s.OrdersEstimate != 4000 {
		t.Errorf("Small tier counts changed: %+v", s)
	}
}

func TestScaleValidate(t *testing.T) {
	tests := []struct {
		name      string
		scale     Scale
		wantError bool
	}{
		{"valid", Scale{Stores: 1, Products: 1, Customers: 1, OrdersEstimate: 1}, false},
		{"zero stores", Scale{Products: 1, Customers: 1, OrdersEstimate: 1}, true},
		{"zero products", Scale{Stores: 1, Customers: 1, OrdersEstimate: 1}, true},
		{"zero customers", Scale{Stores: 1, Products: 1, OrdersEstimate: 1}, true},
		{"zero orders", Scale{Stores: 1, Products: 1, Customers: 1}, true},
		{"negative", Scale{Stores: -1, Products: 1, Customers: 1, OrdersEstimate: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scale.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}
