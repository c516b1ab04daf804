//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strconv"

// Dashboard is the aggregate of every collection the dashboard renders.
// It is rebuilt wholesale on each fetch and never partially updated.
type Dashboard struct {
	Facilities     []Facility             `json:"facilities"`
	Medicines      []Medicine             `json:"medicines"`
	Transactions   []InventoryTransaction `json:"transactions"`
	StockSnapshots []StockSnapshot        `json:"stock_snapshots"`
	Forecasts      []Forecast             `json:"forecasts"`
	Alerts         []Alert                `json:"alerts"`
}

// Summary holds figures derived from a dashboard aggregate. Derived values are
// computed on demand, never stored alongside the aggregate.
type Summary struct {
	TotalStockOnHand float64
	OpenAlerts       int
	Facilities       int
	Medicines        int
	Transactions     int
}

// Summarize computes the headline figures for a dashboard.
func (d *Dashboard) Summarize() Summary {
	s := Summary{
		Facilities:   len(d.Facilities),
		Medicines:    len(d.Medicines),
		Transactions: len(d.Transactions),
	}
	for _, snap := range d.StockSnapshots {
		s.TotalStockOnHand += snap.Quantity()
	}
	for _, alert := range d.Alerts {
		if alert.IsOpen() {
			s.OpenAlerts++
		}
	}
	return s
}

// Index is a read-only lookup from entity id to display entity, built once per
// dashboard fetch and rebuilt on refresh. It is never mutated in place.
type Index struct {
	facilities map[int64]Facility
	medicines  map[int64]Medicine
}

// BuildIndex constructs the facility and medicine lookup maps for a dashboard.
func (d *Dashboard) BuildIndex() *Index {
	idx := &Index{
		facilities: make(map[int64]Facility, len(d.Facilities)),
		medicines:  make(map[int64]Medicine, len(d.Medicines)),
	}
	for _, f := range d.Facilities {
		idx.facilities[f.ID] = f
	}
	for _, m := range d.Medicines {
		idx.medicines[m.ID] = m
	}
	return idx
}

// FacilityName resolves a facility reference for display. Unresolved
// references degrade to the raw identifier.
func (i *Index) FacilityName(id int64) string {
	if f, ok := i.facilities[id]; ok {
		return f.Name
	}
	return "#" + strconv.FormatInt(id, 10)
}

// MedicineName resolves a medicine reference for display. Unresolved
// references degrade to the raw identifier.
func (i *Index) MedicineName(id int64) string {
	if m, ok := i.medicines[id]; ok {
		return m.Name
	}
	return "#" + strconv.FormatInt(id, 10)
}
