package admin

import (
	"net/http"

	"koovappally_front_end/internal/middleware"
	"koovappally_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🟢 POST /admin/wood-quality/predict — interroge le classifieur qualité,
// la réponse contient un vote par modèle entraîné
//
func PredictWoodQuality(c *gin.Context) {
	var input models.WoodQualityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	state := middleware.AuthFromContext(c)
	results, err := api.PredictWoodQuality(state.Token, input)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Wood quality prediction failed")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

//
// 🟢 POST /admin/wood-quality/samples — ajoute un échantillon étiqueté
// au jeu d'entraînement
//
func AddWoodQualitySample(c *gin.Context) {
	var input struct {
		Features models.WoodQualityInput `json:"features"`
		Label    string                  `json:"label"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	state := middleware.AuthFromContext(c)
	if err := api.AddWoodQualitySample(state.Token, input.Features, input.Label); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to add sample")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sample added"})
}

//
// 🟢 POST /admin/wood-quality/train
//
func TrainWoodQuality(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	if err := api.TrainWoodQuality(state.Token); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Training failed")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Training started"})
}
