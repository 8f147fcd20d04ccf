package models

// FilterState holds the user-selected query refinements of one page.
type FilterState struct {
	WorkOrder string `json:"work_order"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
}

// FilterModalState tracks which filter popovers are open. Both default closed.
type FilterModalState struct {
	ShowWorkOrderFilter bool `json:"show_work_order_filter"`
	ShowDateFilter      bool `json:"show_date_filter"`
}

// FilterField names one field of FilterState.
type FilterField int

const (
	FieldUnknown FilterField = iota
	FieldWorkOrder
	FieldDateFrom
	FieldDateTo
)

// FilterUpdate replaces exactly one FilterState field.
type FilterUpdate struct {
	Field FilterField
	Value string
}

// FilterModal names one filter popover.
type FilterModal int

const (
	ModalUnknown FilterModal = iota
	ModalWorkOrder
	ModalDate
)

// ModalUpdate opens or closes one popover.
type ModalUpdate struct {
	Modal FilterModal
	Open  bool
}
