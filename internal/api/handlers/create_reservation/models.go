package create_reservation

import (
	createReservation "github.com/m04kA/Restaurant-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`      // "2026-03-08"
	Time         string `json:"time"`      // "18:30"
	Guests       int    `json:"guests"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		CustomerName: r.CustomerName,
		Date:         r.Date,
		Time:         startTime,
		Guests:       r.Guests,
	}, nil
}
