//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import "fmt"

// ApplyDiscounts finalizes every line item's unit and extended price:
// order-level discount first, then any promotion active on the order
// date, both applied against the product's immutable base price and
// rounded once at the end.
//
// The pass must run exactly once per dataset. A second invocation would
// compound discounts, so it is rejected with an error rather than being
// a silent no-op.
func ApplyDiscounts(ds *Dataset, idx *PromoIndex) error {
	if ds.priced {
		return fmt.Errorf("discounts already applied to this dataset")
	}

	orderByID := make(map[string]*Order, len(ds.Orders))
	for i := range ds.Orders {
		orderByID[ds.Orders[i].OrderID] = &ds.Orders[i]
	}
	productByID := make(map[int]*Product, len(ds.Products))
	for i := range ds.Products {
		productByID[ds.Products[i].ProductID] = &ds.Products[i]
	}

	for i := range ds.Items {
		it := &ds.Items[i]

		order, ok := orderByID[it.OrderID]
		if !ok {
			// Only reachable if generation order was violated.
			return fmt.Errorf("line item references unknown order %s", it.OrderID)
		}
		product, ok := productByID[it.ProductID]
		if !ok {
			return fmt.Errorf("line item references unknown product %d", it.ProductID)
		}

		afterOrderDisc := product.BasePrice * (1.0 - order.DiscountPct)
		promoDisc := idx.ActiveDiscount(it.ProductID, order.OrderTS)
		finalUnit := PriceRound(afterOrderDisc * (1.0 - promoDisc))

		it.UnitPrice = finalUnit
		it.ExtendedPrice = PriceRound(finalUnit * float64(it.Qty))
	}

	ds.priced = true
	return nil
}
