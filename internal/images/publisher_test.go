package images_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/MichalMitros/etsy-listing-publisher/internal/images"
	"github.com/MichalMitros/etsy-listing-publisher/internal/images/mocks"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/etsy"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models/modelstesting"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	listingID = rand.Int63()
	snapshot  = settings.Snapshot{
		MainLanguage: "de",
		ReferrerID:   107,
	}
)

func TestUnitPublish(t *testing.T) {
	article := modelstesting.FakeArticle(func(a *models.Article) {
		a.Images = []models.Image{
			modelstesting.FakeImage(func(i *models.Image) { i.Position = 2 }),
			modelstesting.FakeImage(func(i *models.Image) { i.Position = 0 }),
			modelstesting.FakeImage(func(i *models.Image) {
				i.Position = 1
				i.Availability = []int64{snapshot.ReferrerID}
			}),
			modelstesting.FakeImage(func(i *models.Image) {
				i.Position = 3
				i.Availability = []int64{999} // different marketplace
			}),
		}
	})

	uploader := mocks.NewUploader(t)
	store := mocks.NewStore(t)

	// uploads happen in position order, the foreign-market image is skipped
	wantOrder := []models.Image{article.Images[1], article.Images[2], article.Images[0]}
	wantReferences := make([]models.ImageReference, 0, len(wantOrder))
	for ix, image := range wantOrder {
		remoteID := int64(1000 + ix)
		uploader.On("UploadListingImage", mock.Anything, listingID, image.URL, image.Position).
			Return(&etsy.ListingImage{ListingImageID: remoteID, ListingID: listingID}, nil)
		wantReferences = append(wantReferences, models.ImageReference{
			ImageID:        image.ID,
			ListingImageID: remoteID,
			ListingID:      listingID,
			ItemID:         image.ItemID,
			ImageURL:       image.URL,
			Position:       image.Position,
		})
	}
	store.On("SaveListingImages", mock.Anything, listingID, wantReferences).Return(nil)

	err := newPublisher(uploader, store).Publish(context.TODO(), listingID, &article, snapshot)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitPublishCapsImages(t *testing.T) {
	article := modelstesting.FakeArticle(func(a *models.Article) {
		a.Images = make([]models.Image, 0, 12)
		for ix := range 12 {
			a.Images = append(a.Images, modelstesting.FakeImage(func(i *models.Image) {
				i.Position = ix
			}))
		}
	})

	uploader := mocks.NewUploader(t)
	store := mocks.NewStore(t)

	for _, image := range article.Images[:10] {
		uploader.On("UploadListingImage", mock.Anything, listingID, image.URL, image.Position).
			Return(&etsy.ListingImage{ListingImageID: rand.Int63(), ListingID: listingID}, nil)
	}
	store.On("SaveListingImages", mock.Anything, listingID, mock.MatchedBy(func(refs []models.ImageReference) bool {
		return len(refs) == 10
	})).Return(nil)

	err := newPublisher(uploader, store).Publish(context.TODO(), listingID, &article, snapshot)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitPublishSkipsFailedUploads(t *testing.T) {
	article := modelstesting.FakeArticle(func(a *models.Article) {
		a.Images = []models.Image{
			modelstesting.FakeImage(func(i *models.Image) { i.Position = 0 }),
			modelstesting.FakeImage(func(i *models.Image) { i.Position = 1 }),
		}
	})

	uploader := mocks.NewUploader(t)
	store := mocks.NewStore(t)

	uploader.On("UploadListingImage", mock.Anything, listingID, article.Images[0].URL, 0).
		Return(nil, assert.AnError)
	uploader.On("UploadListingImage", mock.Anything, listingID, article.Images[1].URL, 1).
		Return(&etsy.ListingImage{ListingImageID: 1001, ListingID: listingID}, nil)
	store.On("SaveListingImages", mock.Anything, listingID, mock.MatchedBy(func(refs []models.ImageReference) bool {
		return len(refs) == 1 && refs[0].ImageID == article.Images[1].ID
	})).Return(nil)

	err := newPublisher(uploader, store).Publish(context.TODO(), listingID, &article, snapshot)

	require.NoError(t, err, "single failed upload shouldn't fail publication")
}

func TestUnitPublishErrors(t *testing.T) {
	t.Run("no images for marketplace", func(t *testing.T) {
		article := modelstesting.FakeArticle(func(a *models.Article) {
			a.Images = []models.Image{
				modelstesting.FakeImage(func(i *models.Image) { i.Availability = []int64{999} }),
				modelstesting.FakeImage(func(i *models.Image) { i.Availability = nil }),
			}
		})

		uploader := mocks.NewUploader(t)
		store := mocks.NewStore(t)

		err := newPublisher(uploader, store).Publish(context.TODO(), listingID, &article, snapshot)

		listingErr := &platform.ListingError{}
		require.ErrorAs(t, err, &listingErr, "should return listing error")
		assert.Equal(t, "article has no images for this marketplace", listingErr.Key)
	})

	t.Run("all uploads failed", func(t *testing.T) {
		article := modelstesting.FakeArticle(func(a *models.Article) {
			a.Images = []models.Image{modelstesting.FakeImage()}
		})

		uploader := mocks.NewUploader(t)
		store := mocks.NewStore(t)

		uploader.On("UploadListingImage", mock.Anything, listingID, article.Images[0].URL, article.Images[0].Position).
			Return(nil, assert.AnError)

		err := newPublisher(uploader, store).Publish(context.TODO(), listingID, &article, snapshot)

		listingErr := &platform.ListingError{}
		require.ErrorAs(t, err, &listingErr, "should return listing error")
		assert.Equal(t, "no images were uploaded", listingErr.Key)
	})

	t.Run("save references error", func(t *testing.T) {
		article := modelstesting.FakeArticle(func(a *models.Article) {
			a.Images = []models.Image{modelstesting.FakeImage()}
		})

		uploader := mocks.NewUploader(t)
		store := mocks.NewStore(t)

		uploader.On("UploadListingImage", mock.Anything, listingID, article.Images[0].URL, article.Images[0].Position).
			Return(&etsy.ListingImage{ListingImageID: 1001, ListingID: listingID}, nil)
		store.On("SaveListingImages", mock.Anything, listingID, mock.Anything).Return(assert.AnError)

		err := newPublisher(uploader, store).Publish(context.TODO(), listingID, &article, snapshot)

		require.ErrorContains(t, err, "can't save listing images", "should return error about failed saving")
		require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
	})
}

func newPublisher(uploader *mocks.Uploader, store *mocks.Store) images.Publisher {
	logger := zerolog.Nop()
	return images.NewPublisher(uploader, store, &logger)
}
