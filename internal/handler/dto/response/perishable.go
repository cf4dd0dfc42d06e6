package response

import (
	"time"

	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PerishableResponse struct {
	ID             uuid.UUID `json:"id"`
	DonorName      string    `json:"donorName"`
	DonorContact   string    `json:"donorContact"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Quantity       int32     `json:"quantity"`
	FoodType       string    `json:"foodType"`
	Temperature    float64   `json:"temperature"`
	Humidity       float64   `json:"humidity"`
	Packaging      string    `json:"packaging"`
	EstimatedHours float64   `json:"estimatedHours"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpiresAt      time.Time `json:"expiresAt"`

	RemainingMinutes int64  `json:"remainingMinutes"`
	Classification   string `json:"classification"`
}

func FromPerishableView(view *queries.PerishableView) *PerishableResponse {
	var resp PerishableResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromPerishableViews(views []*queries.PerishableView) []*PerishableResponse {
	result := make([]*PerishableResponse, len(views))
	for i, v := range views {
		result[i] = FromPerishableView(v)
	}
	return result
}
