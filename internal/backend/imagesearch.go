package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"koovappally_front_end/internal/models"
)

// Le service de similarité est lent au premier appel (chargement d'index) :
// timeout dédié de 60 s, contrairement au reste de l'API
var imageSearchClient = &http.Client{Timeout: 60 * time.Second}

// SearchByImage envoie l'image en multipart (champs image + top_k) et
// renvoie les top-K voisins avec leurs scores
func (c *Client) SearchByImage(token, filename string, content []byte, topK int) (*models.ImageSearchResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := writer.WriteField("top_k", fmt.Sprintf("%d", topK)); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/ml/image-search/by-image", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := imageSearchClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	var out models.ImageSearchResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImageSearchHealth sonde le service en 3 s max, sans bloquer la page
func (c *Client) ImageSearchHealth() bool {
	hc := &http.Client{Timeout: 3 * time.Second}
	var out struct {
		Success bool `json:"success"`
		Status  struct {
			Status string `json:"status"`
		} `json:"status"`
	}
	if err := c.doJSONWith(hc, http.MethodGet, "/ml/image-search/health", "", nil, &out); err != nil {
		return false
	}
	return out.Success && out.Status.Status == "healthy"
}
