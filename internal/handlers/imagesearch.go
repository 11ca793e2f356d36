package handlers

import (
	"errors"
	"io"
	"net"
	"net/http"

	"koovappally_front_end/internal/backend"
	"koovappally_front_end/internal/imagesearch"
	"koovappally_front_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /image-search/health — sonde courte, affichée comme badge de
// disponibilité sur la page catalogue
//
func ImageSearchHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"available": api.ImageSearchHealth()})
}

//
// 🟢 POST /image-search — upload d'une image, recherche de similarité,
// puis rapprochement des résultats avec le catalogue
//
func SearchByImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image file selected"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := imagesearch.ValidateUpload(header.Size, contentType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
		return
	}

	// Le catalogue sert de référentiel pour le rapprochement
	catalog, err := api.ListProducts(catalogLimit)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to load products")})
		return
	}

	state := middleware.AuthFromContext(c)
	resp, err := api.SearchByImage(state.Token, header.Filename, content, imagesearch.TopK)
	if err != nil {
		status, message := classifySearchError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	match := imagesearch.Match(resp.Data.Results, catalog)
	if match.Outcome != imagesearch.OutcomeMatched {
		c.JSON(http.StatusOK, gin.H{
			"products": []any{},
			"message":  imagesearch.FailureMessage(match.Outcome),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": match.Products,
		"message":  imagesearch.SuccessMessage(match),
	})
}

// classifySearchError distingue timeout / service arrêté / autre erreur,
// avec un message actionnable à chaque fois
func classifySearchError(err error) (int, string) {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return http.StatusGatewayTimeout,
			"Image search timed out. The service may still be loading its index, please try again in a moment."
	}

	switch backend.StatusOf(err) {
	case http.StatusServiceUnavailable:
		return http.StatusServiceUnavailable,
			"Image search service is not running. Start it with: cd image-search-service && uvicorn main:app --port 8000"
	case http.StatusUnauthorized, http.StatusForbidden:
		return http.StatusUnauthorized, "Please log in to use image search"
	case 0:
		return http.StatusBadGateway, "Could not reach the image search service. Please try again."
	default:
		return backend.StatusOf(err), apiMessage(err, "Image search failed. Please try again.")
	}
}
