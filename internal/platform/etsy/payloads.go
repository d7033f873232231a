package etsy

// Listing states used by this client.
const (
	StateDraft  = "draft"
	StateActive = "active"
)

// Etsy custom property ids driving variations.
const (
	CustomProperty1 int64 = 513
	CustomProperty2 int64 = 514
)

// CreateListingPayload is the request body of the create listing call.
type CreateListingPayload struct {
	State              string   `json:"state"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Quantity           int      `json:"quantity"`
	Price              float64  `json:"price"`
	ShippingTemplateID int64    `json:"shipping_template_id"`
	TaxonomyID         int64    `json:"taxonomy_id"`
	WhoMade            string   `json:"who_made"`
	WhenMade           string   `json:"when_made"`
	IsSupply           bool     `json:"is_supply"`
	Tags               string   `json:"tags,omitempty"`
	Materials          string   `json:"materials,omitempty"`
	Occasion           *string  `json:"occasion,omitempty"`
	Recipient          *string  `json:"recipient,omitempty"`
	Style              string   `json:"style,omitempty"`
	ShopSectionID      *int64   `json:"shop_section_id,omitempty"`
	IsCustomizable     *bool    `json:"is_customizable,omitempty"`
	NonTaxable         *bool    `json:"non_taxable,omitempty"`
	ProcessingMin      *int     `json:"processing_min,omitempty"`
	ProcessingMax      *int     `json:"processing_max,omitempty"`
	ItemWeight         *float64 `json:"item_weight,omitempty"`
	ItemWeightUnit     string   `json:"item_weight_unit,omitempty"`
	ItemHeight         *float64 `json:"item_height,omitempty"`
	ItemLength         *float64 `json:"item_length,omitempty"`
	ItemWidth          *float64 `json:"item_width,omitempty"`
	ItemDimensionsUnit string   `json:"item_dimensions_unit,omitempty"`
}

// UpdateListingPayload is the request body of the update listing call.
type UpdateListingPayload struct {
	State string `json:"state"`
}

// InventoryUpdate is the request body of the inventory update call.
// The dependency lists name the property ids which drive price, quantity
// and SKU variation.
type InventoryUpdate struct {
	Products           []InventoryProduct `json:"products"`
	PriceOnProperty    []int64            `json:"price_on_property"`
	QuantityOnProperty []int64            `json:"quantity_on_property"`
	SkuOnProperty      []int64            `json:"sku_on_property"`
}

// InventoryProduct is one SKU entry of an inventory update.
type InventoryProduct struct {
	Sku            string          `json:"sku"`
	PropertyValues []PropertyValue `json:"property_values"`
	Offerings      []Offering      `json:"offerings"`
}

// PropertyValue maps one custom property slot to a display name and value.
type PropertyValue struct {
	PropertyID   int64    `json:"property_id"`
	PropertyName string   `json:"property_name"`
	Values       []string `json:"values"`
}

// Offering is the priced stock offer of one inventory product.
type Offering struct {
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	IsEnabled bool    `json:"is_enabled"`
}

// TranslationPayload is the request body of the create listing translation call.
type TranslationPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags,omitempty"`
}

// ListingImage is one uploaded listing image as returned by Etsy.
type ListingImage struct {
	ListingImageID int64 `json:"listing_image_id"`
	ListingID      int64 `json:"listing_id"`
}
