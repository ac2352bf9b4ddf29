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
	"time"

	"github.com/maxshowarth/retailgen/internal/datagen"
)

const (
	promoChance      = 0.25
	promoMinDuration = 5
	promoMaxDuration = 14
)

// GeneratePromotions gives each product an independent 25% chance of one
// promotion window inside w. Window length is uniform in [5,14] days and
// clamps to the window span; products are skipped entirely when even the
// minimum 5-day duration does not fit. Overlapping windows for a product
// are possible across runs of the loop only in the sense of duplicate
// promo rows; resolution order is generation order (see PromoIndex).
func GeneratePromotions(f *datagen.Faker, products []Product, w Window) []Promotion {
	span := w.Span()
	promos := make([]Promotion, 0, len(products)/4)
	for _, p := range products {
		if f.Float() >= promoChance {
			continue
		}
		if span < promoMinDuration {
			continue
		}
		duration := f.Int(promoMinDuration, promoMaxDuration)
		if duration > span {
			duration = span
		}
		offset := f.Int(0, span-duration)
		start := w.Start.AddDate(0, 0, offset)
		end := start.AddDate(0, 0, duration)
		promos = append(promos, Promotion{
			PromoID:     f.UpperAlnum(8),
			ProductID:   p.ProductID,
			StartDate:   start,
			EndDate:     end,
			PromoType:   datagen.Choose(f, promoTypes),
			DiscountPct: round2(f.Float64(0.05, 0.30)),
		})
	}
	return promos
}

type promoWindow struct {
	start    time.Time
	end      time.Time
	discount float64
}

// PromoIndex answers "what extra discount applies to this product on
// this date". The internal representation is per-product lists of
// inclusive date intervals in insertion order.
type PromoIndex struct {
	byProduct map[int][]promoWindow
}

// BuildPromoIndex indexes promotions by product, preserving generation
// order so overlapping windows resolve first-match-wins.
func BuildPromoIndex(promos []Promotion) *PromoIndex {
	idx := &PromoIndex{byProduct: make(map[int][]promoWindow)}
	for _, pr := range promos {
		idx.byProduct[pr.ProductID] = append(idx.byProduct[pr.ProductID], promoWindow{
			start:    pr.StartDate,
			end:      pr.EndDate,
			discount: pr.DiscountPct,
		})
	}
	return idx
}

// ActiveDiscount returns the discount of the first window covering the
// timestamp's date, or 0 when no promotion applies. Window endpoints are
// inclusive.
func (idx *PromoIndex) ActiveDiscount(productID int, ts time.Time) float64 {
	windows, ok := idx.byProduct[productID]
	if !ok {
		return 0.0
	}
	d := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	for _, w := range windows {
		if !d.Before(w.start) && !d.After(w.end) {
			return w.discount
		}
	}
	return 0.0
}
