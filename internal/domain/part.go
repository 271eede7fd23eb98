package domain

import "time"

// TaxonomyNode identifies one level of the brand/model/generation/category
// hierarchy during discovery. It is never persisted.
type TaxonomyNode struct {
	ID   string
	Name string
}

// RawListing is the platform-specific intermediate shape produced by
// harvesting, before normalization. Price is set when the structured source
// returned a numeric value; PriceText carries the raw markup text otherwise.
type RawListing struct {
	Platform    string
	Article     string
	Brand       string
	Model       string
	Generation  string
	Category    string
	Description string
	Price       *float64
	PriceText   string
	Currency    string
	Location    string
	URL         string
	ImageURL    string
}

// PartRecord is the canonical persisted record. (Platform, Article, URL) is
// the identity key across re-harvests.
type PartRecord struct {
	ID          int64     `db:"id" json:"id"`
	Platform    string    `db:"platform" json:"platform"`
	Article     string    `db:"article" json:"article"`
	Brand       string    `db:"brand" json:"brand"`
	Model       string    `db:"model" json:"model"`
	Generation  string    `db:"generation" json:"generation"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Currency    string    `db:"currency" json:"currency"`
	Location    string    `db:"location" json:"location"`
	URL         string    `db:"url" json:"url"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	LastSeen    time.Time `db:"last_seen" json:"last_seen"`
}

// TaxonomyRow is the grouping slice of a persisted record used to build the
// catalog tree.
type TaxonomyRow struct {
	Brand      string `db:"brand"`
	Model      string `db:"model"`
	Generation string `db:"generation"`
	Category   string `db:"category"`
}

// UpsertResult reports whether an upsert created a new row or rewrote an
// existing one.
type UpsertResult int

const (
	Inserted UpsertResult = iota
	Updated
)

func (r UpsertResult) String() string {
	if r == Inserted {
		return "inserted"
	}
	return "updated"
}
