// Package fleet reads the vehicle inventory from the external fleet
// service.
package fleet

import (
	"context"
	"errors"
	"time"

	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/sanitize"
)

// ErrUnexpectedStatus is returned when the fleet service answers with a
// non-success status code.
var ErrUnexpectedStatus = errors.New("fleet service returned an unexpected status")

// Service lists the vehicles of the fleet. The result is a one-shot read,
// there are no change notifications.
type Service interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
}

// Mock is a Service returning a fixed inventory after an optional delay.
type Mock struct {
	Delay time.Duration
}

var _ Service = Mock{}

var mockVehicles = []models.Vehicle{
	{ID: 1, Plate: "BRA2E19", Model: "FH 540", Brand: "Volvo", Year: 2022, Status: models.VehicleActive},
	{ID: 2, Plate: "XYZ1234", Model: "Actros 2651", Brand: "Mercedes-Benz", Year: 2021, Status: models.VehicleInMaintenance},
	{ID: 3, Plate: "ABC9876", Model: "R450", Brand: "Scania", Year: 2023, Status: models.VehicleActive},
	{ID: 4, Plate: "DEF5678", Model: "TGS 26.480", Brand: "MAN", Year: 2020, Status: models.VehicleInactive},
	{ID: 5, Plate: "GHI1A23", Model: "FH 460", Brand: "Volvo", Year: 2022, Status: models.VehicleActive},
}

// ListVehicles implements Service.
func (m Mock) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	vehicles := make([]models.Vehicle, 0, len(mockVehicles))
	for _, v := range mockVehicles {
		vehicles = append(vehicles, sanitize.Vehicle(v))
	}
	return vehicles, nil
}
