package validator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models/modelstesting"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/MichalMitros/etsy-listing-publisher/internal/validator"
	"github.com/MichalMitros/etsy-listing-publisher/internal/validator/mocks"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var snapshot = settings.Snapshot{
	MainLanguage:    "de",
	ExportLanguages: []string{"de", "en"},
	ReferrerID:      107,
	EtsyCurrency:    "USD",
	DefaultCurrency: "EUR",
}

func TestUnitValidate(t *testing.T) {
	article := modelstesting.FakeArticle(func(a *models.Article) {
		a.Variations = []models.Variation{
			modelstesting.FakeVariation(func(v *models.Variation) {
				v.IsMain = true
				v.SalesPrice = lo.ToPtr(10.0)
				v.Stock = lo.ToPtr(3)
			}),
			modelstesting.FakeVariation(func(v *models.Variation) {
				v.SalesPrice = lo.ToPtr(5.0)
				v.Stock = lo.ToPtr(2)
			}),
		}
	})

	converter := mocks.NewConverter(t)
	mockConvert(converter, 10.0, 10.80)
	mockConvert(converter, 5.0, 5.40)

	validation, err := validator.NewValidator(converter).Validate(context.TODO(), &article, snapshot)

	require.NoError(t, err, "shouldn't return any error")
	assert.False(t, validation.ArticleFailed(), "article should be listable")
	assert.Len(t, validation.Listable, 2, "both variations should be listable")
	assert.Equal(t, 5.40, *validation.Price, "price should be the lowest converted price")
	assert.Equal(t, 5, validation.Quantity, "quantity should be summed stock")
	assert.Empty(t, validation.VariationErrors, "no variation should fail")
}

func TestUnitValidateVariations(t *testing.T) {
	tests := map[string]struct {
		variation  models.Variation
		wantReason string
	}{
		"missing price": {
			variation: modelstesting.FakeVariation(func(v *models.Variation) {
				v.SalesPrice = nil
			}),
			wantReason: validator.ReasonPriceMissing,
		},
		"price below minimum": {
			variation: modelstesting.FakeVariation(func(v *models.Variation) {
				v.SalesPrice = lo.ToPtr(0.10)
			}),
			wantReason: validator.ReasonPriceMissing,
		},
		"price at minimum": {
			variation: modelstesting.FakeVariation(func(v *models.Variation) {
				v.SalesPrice = lo.ToPtr(validator.MinimumPrice)
			}),
			wantReason: validator.ReasonPriceMissing,
		},
		"missing stock": {
			variation: modelstesting.FakeVariation(func(v *models.Variation) {
				v.Stock = nil
			}),
			wantReason: validator.ReasonNoStock,
		},
		"zero stock": {
			variation: modelstesting.FakeVariation(func(v *models.Variation) {
				v.Stock = lo.ToPtr(0)
			}),
			wantReason: validator.ReasonNoStock,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			article := modelstesting.FakeArticle()
			article.Variations = []models.Variation{
				modelstesting.FakeVariation(func(v *models.Variation) {
					*v = tt.variation
					v.IsMain = true
				}),
			}

			converter := mocks.NewConverter(t)

			validation, err := validator.NewValidator(converter).Validate(context.TODO(), &article, snapshot)

			require.NoError(t, err, "shouldn't return any error")
			assert.Contains(t,
				validation.VariationErrors[article.Variations[0].ID],
				tt.wantReason,
				"should reject variation with correct reason",
			)
			assert.True(t, validation.ArticleFailed(), "article without listable variations should fail")
			assert.Contains(t, validation.ArticleErrors, validator.ReasonNoVariations)
		})
	}
}

func TestUnitValidateSkipsInactiveVariations(t *testing.T) {
	article := modelstesting.FakeArticle(func(a *models.Article) {
		a.Variations = []models.Variation{
			modelstesting.FakeVariation(func(v *models.Variation) {
				v.IsMain = true
				v.SalesPrice = lo.ToPtr(10.0)
			}),
			modelstesting.FakeVariation(func(v *models.Variation) {
				v.IsActive = false
				v.SalesPrice = nil // would fail validation if not skipped
			}),
		}
	})

	converter := mocks.NewConverter(t)
	mockConvert(converter, 10.0, 10.80)

	validation, err := validator.NewValidator(converter).Validate(context.TODO(), &article, snapshot)

	require.NoError(t, err, "shouldn't return any error")
	assert.Len(t, validation.Listable, 1, "only the main variation should be listable")
	assert.Empty(t, validation.VariationErrors, "inactive variation shouldn't be counted as failed")
}

func TestUnitValidateArticle(t *testing.T) {
	tests := map[string]struct {
		article    models.Article
		wantReason string
	}{
		"missing texts": {
			article: modelstesting.FakeArticle(func(a *models.Article) {
				a.Texts = []models.Text{{Lang: "de", Title: "", Description: ""}}
			}),
			wantReason: validator.ReasonMissingTexts,
		},
		"html only description": {
			article: modelstesting.FakeArticle(func(a *models.Article) {
				a.Texts = []models.Text{{Lang: "de", Title: "title", Description: "<p>  </p>"}}
			}),
			wantReason: validator.ReasonMissingTexts,
		},
		"title too long": {
			article: modelstesting.FakeArticle(func(a *models.Article) {
				a.Texts = []models.Text{{
					Lang:        "de",
					Title:       strings.Repeat("x", 141),
					Description: "description",
				}}
			}),
			wantReason: validator.ReasonTitleTooLong,
		},
		"too many attributes": {
			article: modelstesting.FakeArticle(func(a *models.Article) {
				a.Attributes = []models.ArticleAttribute{{AttributeID: 1}, {AttributeID: 2}, {AttributeID: 3}}
			}),
			wantReason: validator.ReasonTooManyAttributes,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			converter := mocks.NewConverter(t)
			converter.On("Convert", mock.Anything, mock.Anything, snapshot.DefaultCurrency, snapshot.EtsyCurrency).
				Return(1.0, nil).
				Maybe()

			validation, err := validator.NewValidator(converter).Validate(context.TODO(), &tt.article, snapshot)

			require.NoError(t, err, "shouldn't return any error")
			assert.True(t, validation.ArticleFailed(), "article should fail")
			assert.Contains(t, validation.ArticleErrors, tt.wantReason, "should reject article with correct reason")
		})
	}
}

func TestUnitValidateTitleAtLimit(t *testing.T) {
	article := modelstesting.FakeArticle(func(a *models.Article) {
		a.Texts = []models.Text{{
			Lang:        "de",
			Title:       strings.Repeat("ä", 140), // multibyte, counted in runes
			Description: "description",
		}}
	})

	converter := mocks.NewConverter(t)
	converter.On("Convert", mock.Anything, mock.Anything, snapshot.DefaultCurrency, snapshot.EtsyCurrency).
		Return(1.0, nil)

	validation, err := validator.NewValidator(converter).Validate(context.TODO(), &article, snapshot)

	require.NoError(t, err, "shouldn't return any error")
	assert.NotContains(t, validation.ArticleErrors, validator.ReasonTitleTooLong, "140 runes should be accepted")
}

func TestUnitValidateConverterError(t *testing.T) {
	article := modelstesting.FakeArticle()

	converter := mocks.NewConverter(t)
	converter.On("Convert", mock.Anything, mock.Anything, snapshot.DefaultCurrency, snapshot.EtsyCurrency).
		Return(0.0, assert.AnError)

	validation, err := validator.NewValidator(converter).Validate(context.TODO(), &article, snapshot)

	require.ErrorContains(t, err, "can't convert variation price", "should return error about failed conversion")
	require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
	assert.Nil(t, validation, "shouldn't return validation")
}

func mockConvert(converter *mocks.Converter, amount, converted float64) {
	converter.On("Convert", mock.Anything, amount, snapshot.DefaultCurrency, snapshot.EtsyCurrency).
		Return(converted, nil)
}
