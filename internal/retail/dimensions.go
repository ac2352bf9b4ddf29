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
	"math"
	"time"

	"github.com/maxshowarth/retailgen/internal/datagen"
)

// Rough per-region bounding boxes for store and customer geography.
type latLonBox struct {
	latMin, latMax, lonMin, lonMax float64
}

var regionBoxes = map[string]latLonBox{
	"West":    {37.0, 49.5, -123.5, -121.0},
	"Central": {32.0, 45.0, -106.0, -93.0},
	"East":    {40.0, 46.0, -79.0, -70.0},
}

func randLatLon(f *datagen.Faker, region string) (float64, float64) {
	box := regionBoxes[region]
	lat := math.Round(f.Float64(box.latMin, box.latMax)*1e6) / 1e6
	lon := math.Round(f.Float64(box.lonMin, box.lonMax)*1e6) / 1e6
	return lat, lon
}

// GenerateStores produces n stores with dense IDs 1..n. The reference
// date anchors opened_date so that runs are reproducible; stores opened
// between 60 days and 5 years before it.
func GenerateStores(f *datagen.Faker, n int, reference time.Time) []Store {
	stores := make([]Store, 0, n)
	for i := 1; i <= n; i++ {
		region := datagen.Choose(f, regions)
		city := datagen.Choose(f, citiesByRegion[region])
		lat, lon := randLatLon(f, region)
		opened := reference.AddDate(0, 0, -f.Int(60, 365*5))
		stores = append(stores, Store{
			StoreID:    i,
			Name:       fmt.Sprintf("Store %03d", i),
			Region:     region,
			City:       city,
			Latitude:   lat,
			Longitude:  lon,
			OpenedDate: opened,
		})
	}
	return stores
}

// priceMultipliers nudge base prices toward retail-style endings.
var priceMultipliers = []float64{0.99, 0.95, 0.9, 1.0}

func randProduct(f *datagen.Faker, id int, category string) Product {
	brand := datagen.Choose(f, brandsByCategory[category])
	return Product{
		ProductID: id,
		SKU:       f.UpperAlnum(8),
		Name:      fmt.Sprintf("%s %s %d", brand, category, f.Int(10, 999)),
		Category:  category,
		Brand:     brand,
		BasePrice: PriceRound(f.Float64(1.0, 30.0) * datagen.Choose(f, priceMultipliers)),
	}
}

// GenerateProducts produces exactly n products with dense IDs 1..n,
// distributed roughly evenly across categories. When even distribution
// leaves a remainder, the remaining slots get random category picks so
// the count is always exact.
func GenerateProducts(f *datagen.Faker, n int) []Product {
	if n <= 0 {
		return nil
	}
	products := make([]Product, 0, n)
	id := 1
	perCat := n / len(categories)
	if perCat < 1 {
		perCat = 1
	}
	for _, category := range categories {
		for i := 0; i < perCat; i++ {
			products = append(products, randProduct(f, id, category))
			id++
			if id > n {
				return products
			}
		}
	}
	for id <= n {
		category := datagen.Choose(f, categories)
		products = append(products, randProduct(f, id, category))
		id++
	}
	return products
}

// GenerateCustomers produces n customers with dense IDs 1..n. Signup
// timestamps fall between 30 days and 4 years before the reference date.
func GenerateCustomers(f *datagen.Faker, n int, reference time.Time) []Customer {
	customers := make([]Customer, 0, n)
	for i := 1; i <= n; i++ {
		region := datagen.Choose(f, regions)
		city := datagen.Choose(f, citiesByRegion[region])
		signup := reference.AddDate(0, 0, -f.Int(30, 365*4))
		customers = append(customers, Customer{
			CustomerID: i,
			Segment:    datagen.ChooseWeighted(f, segments, segmentWeights),
			SignupTS:   signup,
			HomeRegion: region,
			HomeCity:   city,
		})
	}
	return customers
}
