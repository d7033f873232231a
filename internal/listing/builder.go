package listing

import (
	"errors"
	"regexp"
	"strings"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/etsy"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Etsy limits for list attributes of a listing.
const (
	maxTags      = 13
	maxMaterials = 13
	maxStyles    = 2
)

// Units of the physical dimension fields.
const (
	weightUnit     = "g"
	dimensionsUnit = "mm"
)

// ErrNoAggregatedPrice is returned when the validation carries no aggregate price.
var ErrNoAggregatedPrice = errors.New("article has no aggregated price")

// plainTextPattern matches any character outside unicode letters, digits and spaces.
var plainTextPattern = regexp.MustCompile(`[^\p{L}\p{Nd}\p{Zs}]`)

// Builder builds create listing payloads from validated articles.
type Builder struct {
	logger *zerolog.Logger
}

// NewBuilder returns new Builder.
func NewBuilder(logger *zerolog.Logger) Builder {
	return Builder{
		logger: logger,
	}
}

// Build maps the article and its validation aggregates into a draft listing payload.
func (b Builder) Build(article *models.Article, validation *models.Validation, snapshot settings.Snapshot) (etsy.CreateListingPayload, error) {
	if validation.Price == nil {
		return etsy.CreateListingPayload{}, ErrNoAggregatedPrice
	}

	text, _ := article.Text(snapshot.MainLanguage)

	payload := etsy.CreateListingPayload{
		State:              etsy.StateDraft,
		Title:              NormalizeTitle(text.Title),
		Description:        StripDescription(text.Description + snapshot.Legal(snapshot.MainLanguage)),
		Quantity:           validation.Quantity,
		Price:              *validation.Price,
		ShippingTemplateID: shippingTemplateID(article.ShippingProfiles),
		TaxonomyID:         article.CategoryID,
		WhoMade:            article.WhoMade,
		WhenMade:           article.WhenMade,
		IsSupply:           Truthy(article.IsSupply),
		Tags:               JoinTags(article.Tags),
		Materials:          strings.Join(b.filterPlainText(article, article.Materials, maxMaterials, "material"), ","),
		Style:              strings.Join(b.filterPlainText(article, article.Styles, maxStyles, "style"), ","),
		Occasion:           article.Occasion,
		Recipient:          article.Recipient,
		ShopSectionID:      article.ShopSectionID,
		ProcessingMin:      article.ProcessingMin,
		ProcessingMax:      article.ProcessingMax,
	}

	if article.IsCustomizable != "" {
		payload.IsCustomizable = lo.ToPtr(Truthy(article.IsCustomizable))
	}
	if article.NonTaxable != "" {
		payload.NonTaxable = lo.ToPtr(Truthy(article.NonTaxable))
	}

	if article.ItemWeight != nil {
		payload.ItemWeight = article.ItemWeight
		payload.ItemWeightUnit = weightUnit
	}

	// any present dimension forces the shared unit field
	if article.ItemHeight != nil || article.ItemLength != nil || article.ItemWidth != nil {
		payload.ItemHeight = article.ItemHeight
		payload.ItemLength = article.ItemLength
		payload.ItemWidth = article.ItemWidth
		payload.ItemDimensionsUnit = dimensionsUnit
	}

	return payload, nil
}

// filterPlainText keeps the first limit entries containing only letters,
// digits and spaces. Filtered entries are logged and skipped, never fatal.
func (b Builder) filterPlainText(article *models.Article, values []string, limit int, field string) []string {
	kept := make([]string, 0, limit)

	for _, value := range values {
		if len(kept) == limit {
			break
		}

		if value == "" || plainTextPattern.MatchString(value) {
			b.logger.Warn().
				Int64("itemId", article.ItemID).
				Str(field, value).
				Msgf("%s contains invalid characters, skipping", field)
			continue
		}

		kept = append(kept, value)
	}

	return kept
}

// shippingTemplateID returns the id of the profile with the lowest priority value.
func shippingTemplateID(profiles []models.ShippingProfile) int64 {
	var templateID int64
	currentPriority := int(^uint(0) >> 1)

	for _, profile := range profiles {
		if profile.Priority < currentPriority {
			currentPriority = profile.Priority
			templateID = profile.ID
		}
	}

	return templateID
}

// JoinTags joins the first 13 tags into the comma-separated wire format
// shared by the create listing and translation payloads.
func JoinTags(tags []string) string {
	return strings.Join(firstN(tags, maxTags), ",")
}

func firstN(values []string, limit int) []string {
	if len(values) <= limit {
		return values
	}
	return values[:limit]
}
