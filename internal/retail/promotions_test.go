package retail

import (
	"testing"
	"time"

	"github.com/maxshowarth/retailgen/internal/datagen"
)

func testWindow(days int) Window {
	return NewWindow(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), days)
}

func TestGeneratePromotionsBounds(t *testing.T) {
	f := datagen.New(42)
	w := testWindow(30)
	products := GenerateProducts(f, 200)

	promos := GeneratePromotions(f, products, w)
	if len(promos) == 0 {
		t.Fatal("Expected some promotions for 200 products")
	}

	for _, p := range promos {
		if p.StartDate.Before(w.Start) {
			t.Errorf("Promo %s starts %v before window start %v", p.PromoID, p.StartDate, w.Start)
		}
		if p.EndDate.After(w.End) {
			t.Errorf("Promo %s ends %v after window end %v", p.PromoID, p.EndDate, w.End)
		}
		duration := int(p.EndDate.Sub(p.StartDate).Hours() / 24)
		if duration < promoMinDuration || duration > promoMaxDuration {
			t.Errorf("Promo %s duration %d outside [%d, %d]",
				p.PromoID, duration, promoMinDuration, promoMaxDuration)
		}
		if p.DiscountPct < 0.05 || p.DiscountPct > 0.30 {
			t.Errorf("Promo %s discount %f outside [0.05, 0.30]", p.PromoID, p.DiscountPct)
		}
		if len(p.PromoID) != 8 {
			t.Errorf("Promo ID %q not 8 characters", p.PromoID)
		}
	}
}

func TestGeneratePromotionsClampedToShortWindow(t *testing.T) {
	f := datagen.New(42)
	w := testWindow(8) // span 7, below the max duration
	products := GenerateProducts(f, 500)

	promos := GeneratePromotions(f, products, w)
	for _, p := range promos {
		if p.EndDate.After(w.End) {
			t.Errorf("Promo %s overruns short window: ends %v, window ends %v",
				p.PromoID, p.EndDate, w.End)
		}
	}
}

func TestGeneratePromotionsSkipsTinyWindow(t *testing.T) {
	f := datagen.New(42)
	w := testWindow(4) // span 3, below the min duration
	products := GenerateProducts(f, 500)

	promos := GeneratePromotions(f, products, w)
	if len(promos) != 0 {
		t.Errorf("Expected no promotions in a window too short for the minimum duration, got %d", len(promos))
	}
}

func TestGeneratePromotionsChance(t *testing.T) {
	f := datagen.New(42)
	w := testWindow(30)
	products := GenerateProducts(f, 2000)

	promos := GeneratePromotions(f, products, w)
	// Each product has an independent 25% chance of one promotion.
	if len(promos) < 400 || len(promos) > 600 {
		t.Errorf("Expected ~500 promotions for 2000 products, got %d", len(promos))
	}
}

func TestPromoIndexActiveDiscount(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	promos := []Promotion{
		{PromoID: "AAAAAAAA", ProductID: 1, StartDate: day(5), EndDate: day(10), DiscountPct: 0.10},
		{PromoID: "BBBBBBBB", ProductID: 1, StartDate: day(8), EndDate: day(15), DiscountPct: 0.20},
		{PromoID: "CCCCCCCC", ProductID: 2, StartDate: day(1), EndDate: day(3), DiscountPct: 0.30},
	}
	idx := BuildPromoIndex(promos)

	tests := []struct {
		name      string
		productID int
		ts        time.Time
		want      float64
	}{
		{"before any window", 1, day(4), 0.0},
		{"inside first window", 1, day(6), 0.10},
		{"inclusive start", 1, day(5), 0.10},
		{"inclusive end", 1, day(10), 0.10},
		{"overlap resolves to first", 1, day(9), 0.10},
		{"second window only", 1, day(12), 0.20},
		{"after all windows", 1, day(20), 0.0},
		{"other product", 2, day(2), 0.30},
		{"unknown product", 99, day(2), 0.0},
		{"time of day ignored", 1, day(10).Add(18 * time.Hour), 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.ActiveDiscount(tt.productID, tt.ts); got != tt.want {
				t.Errorf("ActiveDiscount(%d, %v) = %f, want %f", tt.productID, tt.ts, got, tt.want)
			}
		})
	}
}
