package modelstesting

import (
	"math/rand"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeArticle returns models.Article with fake data, two variations
// (first one main) and random number of fake images.
func FakeArticle(ops ...func(a *models.Article)) models.Article {
	itemID := rand.Int63()
	article := models.Article{
		ItemID: itemID,
		Variations: []models.Variation{
			FakeVariation(func(v *models.Variation) {
				v.ItemID = itemID
				v.IsMain = true
			}),
			FakeVariation(func(v *models.Variation) {
				v.ItemID = itemID
			}),
		},
		Texts: []models.Text{
			FakeText(func(t *models.Text) { t.Lang = "de" }),
			FakeText(func(t *models.Text) { t.Lang = "en" }),
		},
		Tags:       []string{faker.Word(), faker.Word()},
		Materials:  []string{faker.Word(), faker.Word()},
		CategoryID: rand.Int63(),
		ShippingProfiles: []models.ShippingProfile{
			{ID: rand.Int63(), Priority: 0},
		},
		Attributes: []models.ArticleAttribute{
			{AttributeID: rand.Int63()},
		},
		Images:   fakeImages(itemID),
		WhoMade:  "i_did",
		WhenMade: "made_to_order",
		IsSupply: "0",
	}

	for _, op := range ops {
		op(&article)
	}

	return article
}

// FakeVariation returns active models.Variation with fake data and one attribute.
func FakeVariation(ops ...func(v *models.Variation)) models.Variation {
	variation := models.Variation{
		ID:         rand.Int63(),
		ItemID:     rand.Int63(),
		IsActive:   true,
		SalesPrice: lo.ToPtr(float64(rand.Intn(10000))/100 + 1),
		Stock:      lo.ToPtr(rand.Intn(100) + 1),
		Attributes: []models.VariationAttribute{
			FakeVariationAttribute(),
		},
	}

	for _, op := range ops {
		op(&variation)
	}

	return variation
}

// FakeVariationAttribute returns models.VariationAttribute with fake names in "de" and "en".
func FakeVariationAttribute(ops ...func(a *models.VariationAttribute)) models.VariationAttribute {
	attribute := models.VariationAttribute{
		AttributeID: rand.Int63(),
		ValueID:     rand.Int63(),
		Names: []models.Name{
			{Lang: "de", Name: faker.Word()},
			{Lang: "en", Name: faker.Word()},
		},
		ValueNames: []models.Name{
			{Lang: "de", Name: faker.Word()},
			{Lang: "en", Name: faker.Word()},
		},
	}

	for _, op := range ops {
		op(&attribute)
	}

	return attribute
}

// FakeText returns models.Text with fake data.
func FakeText(ops ...func(t *models.Text)) models.Text {
	text := models.Text{
		Lang:        faker.Word(),
		Title:       faker.Word(),
		Description: faker.Sentence(),
	}

	for _, op := range ops {
		op(&text)
	}

	return text
}

// FakeImage returns models.Image available on all markets.
func FakeImage(ops ...func(i *models.Image)) models.Image {
	image := models.Image{
		ID:           rand.Int63(),
		ItemID:       rand.Int63(),
		URL:          faker.URL(),
		Position:     rand.Intn(10),
		Availability: []int64{-1},
	}

	for _, op := range ops {
		op(&image)
	}

	return image
}

// FakeRun returns models.Run with fake data.
func FakeRun(ops ...func(r *models.Run)) models.Run {
	run := models.Run{
		ID:     rand.Int63(),
		ItemID: rand.Int63(),
		State:  string(models.StateStart),
	}

	for _, op := range ops {
		op(&run)
	}

	return run
}

// FakeSkuReservation returns models.SkuReservation with fake data.
func FakeSkuReservation(ops ...func(s *models.SkuReservation)) models.SkuReservation {
	reservation := models.SkuReservation{
		ID:          rand.Int63(),
		VariationID: rand.Int63(),
		ItemID:      rand.Int63(),
		ListingID:   rand.Int63(),
		ReferrerID:  rand.Int63(),
		Sku:         faker.Word(),
		Status:      models.SkuStatusInactive,
	}

	for _, op := range ops {
		op(&reservation)
	}

	return reservation
}

func fakeImages(itemID int64) []models.Image {
	imagesLen := rand.Intn(4) + 1
	images := make([]models.Image, 0, imagesLen)
	for ix := range imagesLen {
		images = append(images, FakeImage(func(i *models.Image) {
			i.ItemID = itemID
			i.Position = ix
		}))
	}

	return images
}
