package models

import "time"

// PageSession is the filter state owned by one mounted dashboard page.
type PageSession struct {
	ID      string           `json:"id"`
	Page    string           `json:"page"` // e.g. "sewing", "dryroom", "folding"
	Filters FilterState      `json:"filters"`
	Modals  FilterModalState `json:"modals"`
	// Version increases on every mutation that changed state.
	Version   uint64    `json:"version"`
	MountedAt time.Time `json:"mounted_at"`
	TouchedAt time.Time `json:"touched_at"`
}

// ActiveQuery is what a page sends to a counter route once the user searches.
type ActiveQuery struct {
	WorkOrder    string       `json:"work_order,omitempty"`
	DateFrom     string       `json:"date_from"`
	DateTo       string       `json:"date_to"`
	ReportingDay ReportingDay `json:"reporting_day"`
}
