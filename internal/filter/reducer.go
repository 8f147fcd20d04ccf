// Package filter holds the pure reducers behind a page's filter state.
package filter

import (
	"strings"

	"rfid_tracking/internal/models"
)

// Apply replaces the one field named by u and leaves the others untouched.
// An unknown field returns s unchanged.
func Apply(s models.FilterState, u models.FilterUpdate) models.FilterState {
	switch u.Field {
	case models.FieldWorkOrder:
		s.WorkOrder = u.Value
	case models.FieldDateFrom:
		s.DateFrom = u.Value
	case models.FieldDateTo:
		s.DateTo = u.Value
	}
	return s
}

// Reset clears every filter value.
func Reset(models.FilterState) models.FilterState {
	return models.FilterState{}
}

// ApplyModal toggles one popover. The two popovers are independent.
func ApplyModal(m models.FilterModalState, u models.ModalUpdate) models.FilterModalState {
	switch u.Modal {
	case models.ModalWorkOrder:
		m.ShowWorkOrderFilter = u.Open
	case models.ModalDate:
		m.ShowDateFilter = u.Open
	}
	return m
}

// ParseField maps a wire name to a FilterField.
func ParseField(s string) (models.FilterField, bool) {
	switch normalize(s) {
	case "work_order", "workorder", "wo":
		return models.FieldWorkOrder, true
	case "date_from", "datefrom":
		return models.FieldDateFrom, true
	case "date_to", "dateto":
		return models.FieldDateTo, true
	default:
		return models.FieldUnknown, false
	}
}

// ParseModal maps a wire name to a FilterModal.
func ParseModal(s string) (models.FilterModal, bool) {
	switch normalize(s) {
	case "work_order", "workorder", "wo":
		return models.ModalWorkOrder, true
	case "date":
		return models.ModalDate, true
	default:
		return models.ModalUnknown, false
	}
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
