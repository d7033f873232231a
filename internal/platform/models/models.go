package models

import "time"

// SKU reservation statuses.
const (
	SkuStatusInactive = "inactive"
	SkuStatusActive   = "active"
)

// Article is one exportable item with all its variations.
type Article struct {
	ItemID           int64              `json:"itemId"`
	Variations       []Variation        `json:"variations"`
	Texts            []Text             `json:"texts"`
	Tags             []string           `json:"tags"`
	Materials        []string           `json:"materials"`
	CategoryID       int64              `json:"categoryId"`
	ShippingProfiles []ShippingProfile  `json:"shippingProfiles"`
	Attributes       []ArticleAttribute `json:"attributes"`
	Images           []Image            `json:"images"`
	WhoMade          string             `json:"whoMade"`
	WhenMade         string             `json:"whenMade"`
	IsSupply         string             `json:"isSupply"`
	IsCustomizable   string             `json:"isCustomizable"`
	NonTaxable       string             `json:"nonTaxable"`
	ProcessingMin    *int               `json:"processingMin"`
	ProcessingMax    *int               `json:"processingMax"`
	Occasion         *string            `json:"occasion"`
	Recipient        *string            `json:"recipient"`
	Styles           []string           `json:"styles"`
	ShopSectionID    *int64             `json:"shopSectionId"`
	ItemWeight       *float64           `json:"itemWeight"`
	ItemHeight       *float64           `json:"itemHeight"`
	ItemLength       *float64           `json:"itemLength"`
	ItemWidth        *float64           `json:"itemWidth"`
}

// Main returns the article's main variation or nil if there is none.
func (a *Article) Main() *Variation {
	for ix := range a.Variations {
		if a.Variations[ix].IsMain {
			return &a.Variations[ix]
		}
	}
	return nil
}

// Text returns the article text for provided language.
func (a *Article) Text(language string) (Text, bool) {
	for _, text := range a.Texts {
		if text.Lang == language {
			return text, true
		}
	}
	return Text{}, false
}

// Variation is one priced and stocked unit of an article.
type Variation struct {
	ID         int64                `json:"variationId"`
	ItemID     int64                `json:"itemId"`
	IsMain     bool                 `json:"isMain"`
	IsActive   bool                 `json:"isActive"`
	SalesPrice *float64             `json:"salesPrice"`
	Stock      *int                 `json:"stock"`
	Attributes []VariationAttribute `json:"attributes"`
}

// Text is article title and description in one language.
type Text struct {
	Lang        string `json:"lang"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ShippingProfile is a shipping preset assigned to an article.
type ShippingProfile struct {
	ID       int64 `json:"id"`
	Priority int   `json:"priority"`
}

// ArticleAttribute is one of the article's custom attribute slots.
// Etsy supports at most two of them per listing.
type ArticleAttribute struct {
	AttributeID int64 `json:"attributeId"`
}

// VariationAttribute is one (attribute, value) pair of a variation.
type VariationAttribute struct {
	AttributeID int64  `json:"attributeId"`
	ValueID     int64  `json:"valueId"`
	Names       []Name `json:"names"`
	ValueNames  []Name `json:"valueNames"`
}

// Name returns the attribute display name in provided language.
func (a VariationAttribute) Name(language string) string {
	return nameIn(a.Names, language)
}

// ValueName returns the attribute value display name in provided language.
func (a VariationAttribute) ValueName(language string) string {
	return nameIn(a.ValueNames, language)
}

// Name is a translated display name.
type Name struct {
	Lang string `json:"lang"`
	Name string `json:"name"`
}

func nameIn(names []Name, language string) string {
	for _, name := range names {
		if name.Lang == language {
			return name.Name
		}
	}
	return ""
}

// Image is one article image with its marketplace availability.
// Availability -1 means the image is available on all markets.
type Image struct {
	ID           int64   `json:"id"`
	ItemID       int64   `json:"itemId"`
	URL          string  `json:"url"`
	Position     int     `json:"position"`
	Availability []int64 `json:"availability"`
}

// Validation is the outcome of validating one article before publication.
type Validation struct {
	// Listable contains variations which passed per-variation checks, in article order.
	Listable []Variation
	// Price is the minimum listable variation price in marketplace currency.
	Price *float64
	// Quantity is the summed stock of all listable variations.
	Quantity int
	// ArticleErrors are article-level rejection reasons. Any entry blocks publication.
	ArticleErrors []string
	// VariationErrors are per-variation rejection reasons keyed by variation id.
	VariationErrors map[int64][]string
}

// ArticleFailed reports whether the whole article was rejected.
func (v *Validation) ArticleFailed() bool {
	return len(v.ArticleErrors) > 0
}

// IsListable reports whether the variation with provided id passed validation.
func (v *Validation) IsListable(variationID int64) bool {
	for ix := range v.Listable {
		if v.Listable[ix].ID == variationID {
			return true
		}
	}
	return false
}

// Run is one publication attempt of one article.
type Run struct {
	ID                 int64
	ItemID             int64
	ListingID          *int64
	State              string
	CreatedAt          time.Time
	FinishedAt         *time.Time
	IsSuccess          *bool
	StatusMessage      *string
	ListableVariations *int32
	FailedVariations   *int32
}

// SkuReservation binds a variation to a marketplace-scoped SKU.
type SkuReservation struct {
	ID          int64
	VariationID int64
	ItemID      int64
	ListingID   int64
	ReferrerID  int64
	Sku         string
	Status      string
	CreatedAt   time.Time
}

// ImageReference maps a local image to its uploaded listing image.
type ImageReference struct {
	ImageID        int64
	ListingImageID int64
	ListingID      int64
	ItemID         int64
	ImageURL       string
	Position       int
}
