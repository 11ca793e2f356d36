package models

// ProductImage : soit une URL directe (Cloudinary), soit un contenu embarqué en base64
type ProductImage struct {
	URL         string `json:"url,omitempty"`
	Data        string `json:"data,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Filename    string `json:"filename,omitempty"`
}

type Product struct {
	ID            string                 `json:"_id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description,omitempty"`
	Category      string                 `json:"category"` // timber | furniture | construction
	Subcategory   string                 `json:"subcategory,omitempty"`
	Price         float64                `json:"price"`
	OriginalPrice *float64               `json:"originalPrice,omitempty"`
	Quantity      int                    `json:"quantity"`
	Unit          string                 `json:"unit,omitempty"`
	Size          string                 `json:"size,omitempty"`
	Material      string                 `json:"material,omitempty"`
	Brand         string                 `json:"brand,omitempty"`
	Images        []ProductImage         `json:"images,omitempty"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
}

// FirstImageURL reprend la résolution d'image du panier : URL Cloudinary,
// data URL embarquée, ou chemin /uploads legacy.
func (p Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	img := p.Images[0]
	switch {
	case img.URL != "":
		return img.URL
	case img.Data != "":
		if len(img.Data) >= 5 && img.Data[:5] == "data:" {
			return img.Data
		}
		contentType := img.ContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}
		return "data:" + contentType + ";base64," + img.Data
	case img.Filename != "":
		return "/uploads/" + img.Filename
	}
	return ""
}
