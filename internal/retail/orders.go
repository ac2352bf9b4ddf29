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
	"time"

	"github.com/maxshowarth/retailgen/internal/datagen"
)

const (
	productSkew      = 1.15
	singleQtyChance  = 0.75
	orderDiscMean    = 0.05
	orderDiscStddev  = 0.03
	orderDiscCap     = 0.25
	orderDiscApplied = 0.6
)

// GenerateOrders walks the window minute by minute and emits orders with
// their line items. Line-item unit prices are provisional (equal to base
// price) until ApplyDiscounts runs.
//
// Orders draw from their own stream seeded seed+777, so the order volume
// for a given (seed, scale, window) is independent of dimension
// attribute draws. The per-minute order count uses a geometric
// approximation of a Poisson draw: flip a coin with p = lambda/(1+lambda)
// until it fails. Downstream volume calibration depends on this exact
// sampler; do not swap in an exact Poisson draw.
func GenerateOrders(seed int64, stores []Store, customers []Customer, products []Product, w Window, ordersEstimate int) ([]Order, []OrderItem) {
	f := datagen.New(uint64(seed + 777))

	// Stable per-run shuffle of the catalog so the skewed index does not
	// always favor the same literal products.
	productOrder := f.Perm(len(products))

	// Per-store volume bias, used as a rejection probability below.
	storeBias := make(map[int]float64, len(stores))
	for _, s := range stores {
		storeBias[s.StoreID] = f.Float64(0.7, 1.3)
	}

	open := w.OpenTime()
	close := w.CloseTime()
	totalMinutes := int(close.Sub(open).Minutes())
	if totalMinutes < 1 {
		totalMinutes = 1
	}
	basePerMinute := float64(ordersEstimate) / float64(totalMinutes)
	if basePerMinute < 1e-6 {
		basePerMinute = 1e-6
	}

	var orders []Order
	var items []OrderItem
	orderCounter := 0

	for current := open; !current.After(close); current = current.Add(time.Minute) {
		expMinute := basePerMinute * DiurnalMultiplier(current) * WeekendMultiplier(current)

		minuteOrders := 0
		p := expMinute / (1.0 + expMinute)
		for f.Float() < p {
			minuteOrders++
		}

		for i := 0; i < minuteOrders; i++ {
			// The counter advances even for rejected attempts, so order
			// IDs have gaps. Realized volume lands below the estimate by
			// design.
			orderCounter++
			orderID := fmt.Sprintf("O%d%08d", seed, orderCounter)

			store := datagen.Choose(f, stores)
			if f.Float() > storeBias[store.StoreID] {
				continue
			}

			customer := datagen.Choose(f, customers)
			payment := datagen.ChooseWeighted(f, paymentTypes, paymentWeights)

			disc := round2(max(0.0, f.Gauss(orderDiscMean, orderDiscStddev)))
			if f.Float() < orderDiscApplied {
				disc = min(disc, orderDiscCap)
			} else {
				disc = 0.0
			}

			orders = append(orders, Order{
				OrderID:     orderID,
				StoreID:     store.StoreID,
				CustomerID:  customer.CustomerID,
				OrderTS:     current,
				PaymentType: payment,
				DiscountPct: disc,
			})

			basketSize := 1 + int(abs(f.Gauss(1.0, 1.0))*2)
			if basketSize < 1 {
				basketSize = 1
			}
			if basketSize > 8 {
				basketSize = 8
			}

			for lineNo := 1; lineNo <= basketSize; lineNo++ {
				baseIdx := f.SkewedIndex(len(products), productSkew)
				prod := products[productOrder[baseIdx]]

				qty := 1
				if f.Float() >= singleQtyChance {
					qty = f.Int(2, 5)
				}

				items = append(items, OrderItem{
					OrderID:       orderID,
					LineNumber:    lineNo,
					ProductID:     prod.ProductID,
					Qty:           qty,
					UnitPrice:     prod.BasePrice,
					ExtendedPrice: PriceRound(prod.BasePrice * float64(qty)),
				})
			}
		}
	}

	return orders, items
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
