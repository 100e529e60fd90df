package models

import "strings"

// VehicleStatus is the operational state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleActive        VehicleStatus = "Active"
	VehicleInMaintenance VehicleStatus = "InMaintenance"
	VehicleInactive      VehicleStatus = "Inactive"
)

// VehicleStatuses lists all vehicle statuses in display order.
func VehicleStatuses() []VehicleStatus {
	return []VehicleStatus{VehicleActive, VehicleInMaintenance, VehicleInactive}
}

// ParseVehicleStatus maps the status reported by the fleet inventory to a
// VehicleStatus. Both the inventory's Portuguese labels and the English
// names are accepted. Unknown values are treated as inactive.
func ParseVehicleStatus(s string) VehicleStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ativo", "active":
		return VehicleActive
	case "em manutenção", "em manutencao", "inmaintenance", "in maintenance", "maintenance":
		return VehicleInMaintenance
	default:
		return VehicleInactive
	}
}

// Vehicle is a vehicle of the fleet inventory. Plate is normalized
// (trimmed and uppercased) when the vehicle is ingested.
type Vehicle struct {
	ID     int           `json:"id" example:"1"`
	Plate  string        `json:"plate" example:"BRA2E19"`
	Brand  string        `json:"brand" example:"Volvo"`
	Model  string        `json:"model" example:"FH 540"`
	Year   int           `json:"year" example:"2022"`
	Status VehicleStatus `json:"status" example:"Active"`
}
