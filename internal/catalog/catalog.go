package catalog

import (
	"encoding/json"
	"strconv"
)

// Product represents a single catalog entry. JSON tags follow the snake_case
// convention of the product feed so records round-trip through the file store
// unchanged.
type Product struct {
	ID          string   `json:"id"`
	ASIN        string   `json:"asin"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	AmazonLink  string   `json:"amazon_link,omitempty"`
}

// UnmarshalJSON tolerates malformed optional fields in catalog feeds: numeric
// strings parse as numbers, anything else non-numeric becomes 0, and a
// malformed tags value becomes empty. Ranking must stay total over whatever
// snapshot the store hands us.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		*alias
		Price       json.RawMessage `json:"price"`
		Rating      json.RawMessage `json:"rating"`
		ReviewCount json.RawMessage `json:"review_count"`
		Tags        json.RawMessage `json:"tags"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Price = looseFloat(aux.Price)
	p.Rating = looseFloat(aux.Rating)
	p.ReviewCount = int(looseFloat(aux.ReviewCount))
	p.Tags = looseStrings(aux.Tags)
	return nil
}

func looseFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return 0
}

func looseStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
