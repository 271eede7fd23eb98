package rrr

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexID accepts both numeric and string identifiers; the listing endpoints
// are not consistent between them.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) String() string { return string(f) }

type apiNode struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Article      string      `json:"article"`
	Code         string      `json:"code"`
	PartNumber   string      `json:"partNumber"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Price        json.Number `json:"price"`
	Currency     string      `json:"currency"`
	CurrencyCode string      `json:"currencyCode"`
	Location     string      `json:"location"`
	City         string      `json:"city"`
	URL          string      `json:"url"`
	Link         string      `json:"link"`
	Image        string      `json:"image"`
	ImageURL     string      `json:"imageUrl"`
}

func (i searchItem) article() string {
	return firstNonEmpty(i.Article, i.Code, i.PartNumber)
}

func (i searchItem) description() string {
	return firstNonEmpty(i.Title, i.Description)
}

func (i searchItem) price() *float64 {
	if i.Price == "" {
		return nil
	}
	v, err := strconv.ParseFloat(i.Price.String(), 64)
	if err != nil {
		return nil
	}
	return &v
}

func (i searchItem) currency() string {
	return firstNonEmpty(i.Currency, i.CurrencyCode)
}

func (i searchItem) location() string {
	return firstNonEmpty(i.Location, i.City)
}

func (i searchItem) url() string {
	return firstNonEmpty(i.URL, i.Link)
}

func (i searchItem) imageURL() string {
	return firstNonEmpty(i.Image, i.ImageURL)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
