package backend

import (
	"net/http"

	"koovappally_front_end/internal/models"
)

// Predict interroge le classifieur qualité bois. La réponse est un vote
// par modèle entraîné : {"random_forest": {...}, "svm": {...}, ...}
func (c *Client) PredictWoodQuality(token string, input models.WoodQualityInput) (map[string]models.WoodQualityPrediction, error) {
	var out struct {
		Results map[string]models.WoodQualityPrediction `json:"results"`
	}
	if err := c.doJSON(http.MethodPost, "/ml/wood-quality/predict", token, input, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) AddWoodQualitySample(token string, input models.WoodQualityInput, label string) error {
	return c.doJSON(http.MethodPost, "/wood-quality/samples", token, map[string]interface{}{
		"features": input,
		"label":    label,
	}, nil)
}

func (c *Client) TrainWoodQuality(token string) error {
	return c.doJSON(http.MethodPost, "/wood-quality/train", token, map[string]string{}, nil)
}
