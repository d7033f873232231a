package validator

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MichalMitros/etsy-listing-publisher/internal/listing"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/samber/lo"
)

// MinimumPrice is the price floor below which a variation is not listable.
const MinimumPrice = 0.18

const (
	maxTitleLength = 140
	maxAttributes  = 2
)

// Variation-level rejection reasons.
const (
	ReasonPriceMissing = "variation price is missing or not above the minimum price"
	ReasonNoStock      = "variation has no stock"
)

// Article-level rejection reasons.
const (
	ReasonNoVariations      = "article has no listable variations"
	ReasonMissingTexts      = "article title or description is missing"
	ReasonTitleTooLong      = "article title is longer than 140 characters"
	ReasonTooManyAttributes = "article has more than 2 custom attributes"
	ReasonMissingPrice      = "article has no valid price"
	ReasonArticleNoStock    = "article has no stock"
)

//go:generate mockery --name Converter --filename converter.go

// Converter converts amounts between currencies.
type Converter interface {
	Convert(ctx context.Context, amount float64, from string, to string) (float64, error)
}

// Validator decides which variations of an article are listable and whether
// the article itself may be published at all.
type Validator struct {
	converter Converter
}

// NewValidator returns new Validator using provided currency converter.
func NewValidator(converter Converter) Validator {
	return Validator{
		converter: converter,
	}
}

// Validate checks all variations of the article and aggregates price and quantity
// over the listable ones. Prices are converted to the marketplace currency before
// any comparison. Inactive non-main variations are skipped without being counted
// as failures. Article-level reasons in the result block publication entirely.
func (v Validator) Validate(ctx context.Context, article *models.Article, snapshot settings.Snapshot) (*models.Validation, error) {
	validation := &models.Validation{
		VariationErrors: map[int64][]string{},
	}

	for _, variation := range article.Variations {
		if !variation.IsMain && !variation.IsActive {
			continue
		}

		if variation.SalesPrice == nil || *variation.SalesPrice <= MinimumPrice {
			validation.VariationErrors[variation.ID] = append(validation.VariationErrors[variation.ID], ReasonPriceMissing)
			continue
		}

		if variation.Stock == nil || *variation.Stock < 1 {
			validation.VariationErrors[variation.ID] = append(validation.VariationErrors[variation.ID], ReasonNoStock)
			continue
		}

		price, err := v.converter.Convert(ctx, *variation.SalesPrice, snapshot.DefaultCurrency, snapshot.EtsyCurrency)
		if err != nil {
			return nil, fmt.Errorf("can't convert variation price: %w", err)
		}

		validation.Quantity += *variation.Stock
		if validation.Price == nil || price < *validation.Price {
			validation.Price = lo.ToPtr(price)
		}

		validation.Listable = append(validation.Listable, variation)
	}

	text, _ := article.Text(snapshot.MainLanguage)
	title := listing.NormalizeTitle(text.Title)
	description := strings.TrimSpace(listing.StripDescription(text.Description))

	if len(validation.Listable) == 0 {
		validation.ArticleErrors = append(validation.ArticleErrors, ReasonNoVariations)
	}

	if title == "" || description == "" {
		validation.ArticleErrors = append(validation.ArticleErrors, ReasonMissingTexts)
	}

	if utf8.RuneCountInString(title) > maxTitleLength {
		validation.ArticleErrors = append(validation.ArticleErrors, ReasonTitleTooLong)
	}

	if len(article.Attributes) > maxAttributes {
		validation.ArticleErrors = append(validation.ArticleErrors, ReasonTooManyAttributes)
	}

	if validation.Price == nil {
		validation.ArticleErrors = append(validation.ArticleErrors, ReasonMissingPrice)
	}

	if validation.Quantity <= 0 {
		validation.ArticleErrors = append(validation.ArticleErrors, ReasonArticleNoStock)
	}

	return validation, nil
}
