//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"fmt"
	"sort"
)

// Scale sets the size of one generated run. OrdersEstimate is a target
// over the full window, not a guarantee: store-bias rejection sampling
// during order generation lands the realized count below it.
type Scale struct {
	Stores         int
	Products       int
	Customers      int
	OrdersEstimate int
}

var scales = map[string]Scale{
	"small":  {Stores: 10, Products: 200, Customers: 2_000, OrdersEstimate: 4_000},
	"medium": {Stores: 50, Products: 1_000, Customers: 25_000, OrdersEstimate: 75_000},
	"large":  {Stores: 200, Products: 5_000, Customers: 120_000, OrdersEstimate: 500_000},
}

// ScaleByName returns a preset scale tier.
func ScaleByName(name string) (Scale, error) {
	s, ok := scales[name]
	if !ok {
		return Scale{}, fmt.Errorf("unknown scale %q (valid: %v)", name, ScaleNames())
	}
	return s, nil
}

// ScaleNames returns the preset tier names, sorted.
func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate rejects scales that cannot produce a run.
func (s Scale) Validate() error {
	if s.Stores <= 0 {
		return fmt.Errorf("store count must be positive, got %d", s.Stores)
	}
	if s.Products <= 0 {
		return fmt.Errorf("product count must be positive, got %d", s.Products)
	}
	if s.Customers <= 0 {
		return fmt.Errorf("customer count must be positive, got %d", s.Customers)
	}
	if s.OrdersEstimate <= 0 {
		return fmt.Errorf("orders estimate must be positive, got %d", s.OrdersEstimate)
	}
	return nil
}
