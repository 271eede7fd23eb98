package normalize

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"parts_harvester/internal/domain"
)

const defaultCurrency = "EUR"

// Record maps a raw harvested listing into a canonical part record. It never
// fails: malformed input degrades to default values. LastSeen is stamped
// here, not at persistence time.
func Record(raw domain.RawListing) domain.PartRecord {
	platform := raw.Platform
	if platform == "" {
		platform = "unknown"
	}

	price, currency := resolvePrice(raw)

	return domain.PartRecord{
		Platform:    platform,
		Article:     strings.TrimSpace(raw.Article),
		Brand:       strings.TrimSpace(raw.Brand),
		Model:       strings.TrimSpace(raw.Model),
		Generation:  strings.TrimSpace(raw.Generation),
		Category:    strings.TrimSpace(raw.Category),
		Description: strings.TrimSpace(raw.Description),
		Price:       price,
		Currency:    currency,
		Location:    strings.TrimSpace(raw.Location),
		URL:         strings.TrimSpace(raw.URL),
		ImageURL:    strings.TrimSpace(raw.ImageURL),
		LastSeen:    time.Now().UTC(),
	}
}

func resolvePrice(raw domain.RawListing) (float64, string) {
	if raw.Price != nil {
		currency := raw.Currency
		if currency == "" {
			currency = defaultCurrency
		}
		price := *raw.Price
		if price < 0 {
			price = 0
		}
		return price, currency
	}
	return ParsePriceText(raw.PriceText)
}

// ParsePriceText extracts an amount and currency from free text such as
// "12,50 EUR" or "EUR 12,50". The last token parseable as a decimal number
// wins (comma accepted as decimal separator); any alphabetic-only token
// overwrites the currency. Unparseable text yields (0, "EUR").
func ParsePriceText(text string) (float64, string) {
	if text == "" {
		return 0, defaultCurrency
	}

	amount := 0.0
	currency := defaultCurrency

	tokens := strings.Fields(strings.ReplaceAll(text, " ", " "))
	for _, token := range tokens {
		v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
		if err == nil {
			amount = v
			continue
		}
		if isAlpha(token) {
			currency = token
		}
	}

	if amount < 0 {
		amount = 0
	}
	return amount, currency
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
