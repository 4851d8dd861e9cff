package update_reservation

import (
	"github.com/m04kA/Restaurant-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/Restaurant-ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model (nil-поля не меняются)
type UpdateReservationRequest struct {
	Date   *string `json:"date,omitempty"`
	Time   *string `json:"time,omitempty"`
	Guests *int    `json:"guests,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateReservationRequest) ToServiceRequest(id int64) (models.UpdateRequest, error) {
	req := models.UpdateRequest{
		ID:     id,
		Date:   r.Date,
		Guests: r.Guests,
	}

	if r.Time != nil {
		t, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return models.UpdateRequest{}, err
		}
		req.Time = &t
	}

	return req, nil
}
