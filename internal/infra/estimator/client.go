package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/commands"
)

// Client calls the shelf-life prediction service. The request field names
// follow the prediction model's training schema.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.EstimatorConfig) commands.ExpiryEstimator {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type predictRequest struct {
	FoodType    string  `json:"Food_Type"`
	StorageTemp float64 `json:"Storage_Temp"`
	Humidity    float64 `json:"Humidity"`
	Packaging   string  `json:"Packaging"`
}

func (c *Client) Estimate(ctx context.Context, foodType string, temperature, humidity float64, packaging string) (float64, error) {
	body, err := json.Marshal(predictRequest{
		FoodType:    foodType,
		StorageTemp: temperature,
		Humidity:    humidity,
		Packaging:   packaging,
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to encode prediction request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, errs.Wrap(err, "failed to build prediction request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errs.Wrap(err, "prediction request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errs.New(fmt.Sprintf("prediction service returned status %d", resp.StatusCode))
	}

	// The service responds with a bare JSON number of safe hours.
	var hours float64
	if err := json.NewDecoder(resp.Body).Decode(&hours); err != nil {
		return 0, errs.Wrap(err, "failed to decode prediction response")
	}

	return hours, nil
}
