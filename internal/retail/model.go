//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package retail implements the synthetic retail dataset generator:
// dimension tables (stores, products, customers), promotions, orders with
// line items, a discount post-processor, and daily inventory snapshots,
// all drawn deterministically from a seeded random stream.
package retail

import "time"

// Store is a physical store location. Orders and inventory snapshots
// reference stores by StoreID.
type Store struct {
	StoreID    int
	Name       string
	Region     string
	City       string
	Latitude   float64
	Longitude  float64
	OpenedDate time.Time
}

// Product is a catalog item. BasePrice is the undiscounted unit price and
// never changes after generation; discounts are applied to copies of it.
type Product struct {
	ProductID int
	SKU       string
	Name      string
	Category  string
	Brand     string
	BasePrice float64
}

// Customer is a shopper. Segment is one of casual, loyal, bargain,
// premium.
type Customer struct {
	CustomerID int
	Segment    string
	SignupTS   time.Time
	HomeRegion string
	HomeCity   string
}

// Promotion is a time-bounded extra discount on one product. Both
// StartDate and EndDate are inclusive. PromoIDs are random 8-char codes
// and are not uniqueness-enforced.
type Promotion struct {
	PromoID     string
	ProductID   int
	StartDate   time.Time
	EndDate     time.Time
	PromoType   string
	DiscountPct float64
}

// Order is a single purchase. DiscountPct is the order-level discount,
// applied to every line before any promotional discount.
type Order struct {
	OrderID     string
	StoreID     int
	CustomerID  int
	OrderTS     time.Time
	PaymentType string
	DiscountPct float64
}

// OrderItem is one product-quantity line within an order's basket.
// LineNumber is 1-based per order. UnitPrice is provisional (equal to the
// product's base price) until ApplyDiscounts finalizes it.
type OrderItem struct {
	OrderID       string
	LineNumber    int
	ProductID     int
	Qty           int
	UnitPrice     float64
	ExtendedPrice float64
}

// InventorySnapshot is a per-store-per-product stock level taken once a
// day at 06:00. OnOrder and ReorderQty are nonzero only when OnHand has
// fallen below SafetyStock.
type InventorySnapshot struct {
	SnapshotTS time.Time
	StoreID    int
	ProductID  int
	OnHand     int
	OnOrder    int
	SafetyStock int
	ReorderQty int
}

// Dataset holds one complete generated run. All foreign keys resolve
// within the same Dataset.
type Dataset struct {
	Stores     []Store
	Products   []Product
	Customers  []Customer
	Promotions []Promotion
	Orders     []Order
	Items      []OrderItem
	Inventory  []InventorySnapshot

	// priced records that ApplyDiscounts has run; a second pass would
	// double-apply discounts and is rejected.
	priced bool
}

// Reference vocabularies. These are fixed so that regions, cities,
// categories and brands are stable across runs and joinable by consumers.
var (
	regions = []string{"West", "Central", "East"}

	citiesByRegion = map[string][]string{
		"West":    {"Vancouver", "Seattle", "Portland", "San Francisco", "San Jose", "Calgary"},
		"Central": {"Denver", "Dallas", "Houston", "Chicago", "Minneapolis", "Kansas City"},
		"East":    {"New York", "Boston", "Philadelphia", "Toronto", "Montreal", "Ottawa"},
	}

	categories = []string{"Beverages", "Snacks", "Household", "Personal Care", "Produce", "Frozen"}

	brandsByCategory = map[string][]string{
		"Beverages":     {"SparkleCo", "H2Only", "BeanWorks", "Leaf&Lime"},
		"Snacks":        {"CrunchLabs", "NuttyBuddy", "SweetTreats", "SaltyWave"},
		"Household":     {"HomeGuard", "ShinePro", "EcoClean", "FreshNest"},
		"Personal Care": {"GlowCare", "PureForm", "DailyZen", "Wellness+"},
		"Produce":       {"GreenFields", "SunValley", "OrchardPrime"},
		"Frozen":        {"ArcticBite", "FrostyFarm", "CoolCuisine"},
	}

	segments       = []string{"casual", "loyal", "bargain", "premium"}
	segmentWeights = []int{50, 20, 20, 10}

	paymentTypes   = []string{"card", "cash", "mobile"}
	paymentWeights = []int{70, 15, 15}

	promoTypes = []string{"BOGO-lite", "PercentOff", "PriceDrop"}
)
