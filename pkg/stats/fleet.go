package stats

import (
	"github.com/nremp/dashboard/pkg/models"
	"github.com/shopspring/decimal"
)

// VehicleCost is a vehicle with the accumulated cost of its notes.
type VehicleCost struct {
	models.Vehicle
	Cost decimal.Decimal `json:"cost" example:"3450.9"`
}

// FleetSummary is the summary of the vehicle fleet.
type FleetSummary struct {
	Total        int                          `json:"total" example:"5"`                                 // Number of vehicles
	StatusCounts map[models.VehicleStatus]int `json:"statusCounts"`                                      // Number of vehicles per status
	Active       int                          `json:"active" example:"3"`                                // Number of active vehicles
	TotalCost    decimal.Decimal              `json:"totalCost" example:"8920.4"`                        // Sum of the costs of all plates seen in notes
	CostByPlate  map[string]decimal.Decimal   `json:"costByPlate" example:"BRA2E19:3450.9,XYZ1234:1200"` // Accumulated cost per normalized plate
	Vehicles     []VehicleCost                `json:"vehicles"`                                          // Vehicles with their accumulated cost
}

// Fleet summarizes the fleet. Vehicle plates are expected to be
// normalized like note plates, a vehicle without notes has zero cost.
func Fleet(notes []models.Note, vehicles []models.Vehicle) FleetSummary {
	costs := CostByPlate(notes)

	summary := FleetSummary{
		Total:        len(vehicles),
		StatusCounts: make(map[models.VehicleStatus]int),
		TotalCost:    decimal.Zero,
		CostByPlate:  costs,
		Vehicles:     make([]VehicleCost, 0, len(vehicles)),
	}

	for _, v := range vehicles {
		summary.StatusCounts[v.Status]++
		if v.Status == models.VehicleActive {
			summary.Active++
		}

		summary.Vehicles = append(summary.Vehicles, VehicleCost{Vehicle: v, Cost: costs[v.Plate]})
	}

	for _, plate := range Plates(costs) {
		summary.TotalCost = summary.TotalCost.Add(costs[plate])
	}

	return summary
}
