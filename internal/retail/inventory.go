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

// snapshotHour is the fixed time of day for inventory snapshots.
const snapshotHour = 6

// GenerateInventory produces one stock snapshot per store x product x
// day at 06:00, independent of order volume. Replenishment fields are
// nonzero only when on-hand stock has fallen below the safety level.
func GenerateInventory(f *datagen.Faker, stores []Store, products []Product, w Window) []InventorySnapshot {
	days := w.Days()
	snaps := make([]InventorySnapshot, 0, days*len(stores)*len(products))
	for d := 0; d < days; d++ {
		day := w.Start.AddDate(0, 0, d)
		ts := time.Date(day.Year(), day.Month(), day.Day(), snapshotHour, 0, 0, 0, time.UTC)
		for _, s := range stores {
			for _, p := range products {
				onHand := int(f.Gauss(40, 15))
				if onHand < 0 {
					onHand = 0
				}
				safety := int(float64(onHand) * f.Float64(0.15, 0.35))
				if safety < 5 {
					safety = 5
				}
				onOrder, reorder := 0, 0
				if onHand < safety {
					onOrder = f.Int(10, 60)
					reorder = f.Int(10, 40)
				}
				snaps = append(snaps, InventorySnapshot{
					SnapshotTS:  ts,
					StoreID:     s.StoreID,
					ProductID:   p.ProductID,
					OnHand:      onHand,
					OnOrder:     onOrder,
					SafetyStock: safety,
					ReorderQty:  reorder,
				})
			}
		}
	}
	return snaps
}
