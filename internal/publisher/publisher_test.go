package publisher_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/etsy"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models/modelstesting"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/MichalMitros/etsy-listing-publisher/internal/publisher"
	"github.com/MichalMitros/etsy-listing-publisher/internal/publisher/mocks"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	runID     = rand.Int63()
	listingID = rand.Int63()
	snapshot  = settings.Snapshot{
		MainLanguage:    "de",
		ExportLanguages: []string{"de", "en"},
		ReferrerID:      107,
		EtsyCurrency:    "USD",
		DefaultCurrency: "EUR",
	}
	createdAt = time.Date(2020, time.April, 1, 1, 1, 1, 0, time.UTC)
	now       = time.Date(2022, time.April, 1, 1, 1, 1, 0, time.UTC)

	errShouldContainAssertErrorMsg = "should return error containing assert.AnError"
)

func TestUnitPublish(t *testing.T) {
	article := modelstesting.FakeArticle()
	validation := listableValidation(article)
	payload := etsy.CreateListingPayload{Title: "test listing"}

	deps := newDeps(t)

	wantRun := finishedRun(article.ItemID, models.StateDone, nil, func(r *models.Run) {
		r.ListingID = &listingID
		r.ListableVariations = lo.ToPtr(int32(len(validation.Listable)))
		r.FailedVariations = lo.ToPtr(int32(0))
	})

	mockStorageStartRun(deps.storage, article.ItemID, startedRun(article.ItemID), nil)
	mockSettingsLoad(deps.settings, nil)
	mockValidator(deps.validator, &article, validation, nil)
	mockBuilder(deps.listings, &article, validation, payload, nil)
	mockCreateListing(deps.client, payload, listingID, nil)
	deps.inventory.On("Fill", mock.Anything, listingID, &article, validation, snapshot).Return(nil)
	deps.images.On("Publish", mock.Anything, listingID, &article, snapshot).Return(nil)
	deps.translations.On("Publish", mock.Anything, listingID, &article, snapshot).Return()
	deps.client.On("UpdateListing", mock.Anything, listingID, etsy.UpdateListingPayload{State: etsy.StateActive}).
		Return(nil)
	for _, variation := range validation.Listable {
		deps.storage.On("UpdateSkuStatus", mock.Anything, variation.ID, models.SkuStatusActive).Return(nil)
	}
	mockStorageFinishRun(deps.storage, wantRun, nil)

	err := deps.newPublisher().Publish(context.TODO(), article)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitPublishStartRunError(t *testing.T) {
	article := modelstesting.FakeArticle()

	deps := newDeps(t)
	mockStorageStartRun(deps.storage, article.ItemID, nil, platform.ErrAlreadyRunning)

	err := deps.newPublisher().Publish(context.TODO(), article)

	require.ErrorContains(t, err, "can't start publication", "should return error about failed publication start")
	require.ErrorIs(t, err, platform.ErrAlreadyRunning, "should return ErrAlreadyRunning")
}

func TestUnitPublishNoMainVariation(t *testing.T) {
	article := modelstesting.FakeArticle(func(a *models.Article) {
		a.Variations = []models.Variation{modelstesting.FakeVariation()}
	})

	deps := newDeps(t)

	wantRun := finishedRun(article.ItemID, models.StateFailed, publisher.ErrNoMainVariation)

	mockStorageStartRun(deps.storage, article.ItemID, startedRun(article.ItemID), nil)
	mockStorageFinishRun(deps.storage, wantRun, nil)

	err := deps.newPublisher().Publish(context.TODO(), article)

	require.ErrorIs(t, err, publisher.ErrNoMainVariation, "should return error about missing main variation")
}

func TestUnitPublishArticleNotListable(t *testing.T) {
	article := modelstesting.FakeArticle()
	validation := &models.Validation{
		ArticleErrors: []string{"missing title or description"},
		VariationErrors: map[int64][]string{
			article.Variations[1].ID: {"no stock"},
		},
	}
	wantErr := platform.NewListingError("article is not listable", validation.ArticleErrors, validation.VariationErrors)

	deps := newDeps(t)

	wantRun := finishedRun(article.ItemID, models.StateFailed, wantErr, func(r *models.Run) {
		r.ListableVariations = lo.ToPtr(int32(0))
		r.FailedVariations = lo.ToPtr(int32(1))
	})

	mockStorageStartRun(deps.storage, article.ItemID, startedRun(article.ItemID), nil)
	mockSettingsLoad(deps.settings, nil)
	mockValidator(deps.validator, &article, validation, nil)
	mockStorageFinishRun(deps.storage, wantRun, nil)

	err := deps.newPublisher().Publish(context.TODO(), article)

	listingErr := &platform.ListingError{}
	require.ErrorAs(t, err, &listingErr, "should return listing error")
	require.Contains(t, listingErr.Bag, "article", "should contain article-level reasons")
}

func TestUnitPublishCreateListingError(t *testing.T) {
	article := modelstesting.FakeArticle()
	validation := listableValidation(article)
	payload := etsy.CreateListingPayload{Title: "test listing"}

	deps := newDeps(t)

	// no remote listing was created, so no compensation may happen:
	// neither DeleteListing nor DeleteListingSkus are expected here
	wantRun := finishedRun(article.ItemID, models.StateFailed, assert.AnError, func(r *models.Run) {
		r.ListableVariations = lo.ToPtr(int32(len(validation.Listable)))
		r.FailedVariations = lo.ToPtr(int32(0))
	})

	mockStorageStartRun(deps.storage, article.ItemID, startedRun(article.ItemID), nil)
	mockSettingsLoad(deps.settings, nil)
	mockValidator(deps.validator, &article, validation, nil)
	mockBuilder(deps.listings, &article, validation, payload, nil)
	mockCreateListing(deps.client, payload, 0, assert.AnError)
	mockStorageFinishRun(deps.storage, wantRun, nil)

	err := deps.newPublisher().Publish(context.TODO(), article)

	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
}

func TestUnitPublishCompensation(t *testing.T) {
	tests := map[string]struct {
		inventoryError error
		imagesError    error
		activateError  error
		wantErrMsg     string
	}{
		"inventory error": {
			inventoryError: assert.AnError,
		},
		"images error": {
			imagesError: assert.AnError,
		},
		"activate error": {
			activateError: assert.AnError,
			wantErrMsg:    "can't activate listing",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			article := modelstesting.FakeArticle()
			validation := listableValidation(article)
			payload := etsy.CreateListingPayload{Title: "test listing"}

			deps := newDeps(t)

			mockStorageStartRun(deps.storage, article.ItemID, startedRun(article.ItemID), nil)
			mockSettingsLoad(deps.settings, nil)
			mockValidator(deps.validator, &article, validation, nil)
			mockBuilder(deps.listings, &article, validation, payload, nil)
			mockCreateListing(deps.client, payload, listingID, nil)

			deps.inventory.On("Fill", mock.Anything, listingID, &article, validation, snapshot).
				Return(tt.inventoryError)
			if tt.inventoryError == nil {
				deps.images.On("Publish", mock.Anything, listingID, &article, snapshot).
					Return(tt.imagesError)
			}
			if tt.inventoryError == nil && tt.imagesError == nil {
				deps.translations.On("Publish", mock.Anything, listingID, &article, snapshot).Return()
				deps.client.On("UpdateListing", mock.Anything, listingID, etsy.UpdateListingPayload{State: etsy.StateActive}).
					Return(tt.activateError)
			}

			// compensation releases reservations and deletes the remote listing
			skus := []models.SkuReservation{modelstesting.FakeSkuReservation()}
			deps.storage.On("DeleteListingSkus", mock.Anything, listingID, snapshot.ReferrerID).Return(skus, nil)
			deps.client.On("DeleteListing", mock.Anything, listingID).Return(nil)
			deps.storage.On("FinishRun", mock.Anything, mock.MatchedBy(func(run *models.Run) bool {
				return run.State == string(models.StateFailed) &&
					run.ListingID != nil && *run.ListingID == listingID &&
					run.IsSuccess != nil && !*run.IsSuccess
			})).Return(nil)

			err := deps.newPublisher().Publish(context.TODO(), article)

			require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
			if tt.wantErrMsg != "" {
				require.ErrorContains(t, err, tt.wantErrMsg, "should describe the failed step")
			}
		})
	}
}

func TestUnitPublishCompensationCleanupErrors(t *testing.T) {
	// cleanup failures are logged but never override the original cause
	article := modelstesting.FakeArticle()
	validation := listableValidation(article)
	payload := etsy.CreateListingPayload{Title: "test listing"}
	cause := assert.AnError

	deps := newDeps(t)

	mockStorageStartRun(deps.storage, article.ItemID, startedRun(article.ItemID), nil)
	mockSettingsLoad(deps.settings, nil)
	mockValidator(deps.validator, &article, validation, nil)
	mockBuilder(deps.listings, &article, validation, payload, nil)
	mockCreateListing(deps.client, payload, listingID, nil)
	deps.inventory.On("Fill", mock.Anything, listingID, &article, validation, snapshot).Return(cause)
	deps.storage.On("DeleteListingSkus", mock.Anything, listingID, snapshot.ReferrerID).
		Return(nil, assert.AnError)
	deps.client.On("DeleteListing", mock.Anything, listingID).Return(assert.AnError)
	deps.storage.On("FinishRun", mock.Anything, mock.AnythingOfType("*models.Run")).Return(nil)

	err := deps.newPublisher().Publish(context.TODO(), article)

	require.ErrorIs(t, err, cause, "should return the original cause")
}

func TestUnitPublishFinishRunError(t *testing.T) {
	article := modelstesting.FakeArticle(func(a *models.Article) {
		a.Variations = []models.Variation{modelstesting.FakeVariation()}
	})

	deps := newDeps(t)

	wantRun := finishedRun(article.ItemID, models.StateFailed, publisher.ErrNoMainVariation)

	mockStorageStartRun(deps.storage, article.ItemID, startedRun(article.ItemID), nil)
	mockStorageFinishRun(deps.storage, wantRun, assert.AnError)

	err := deps.newPublisher().Publish(context.TODO(), article)

	require.ErrorContains(t, err, "can't finish failed publication", "should return error about failed run finishing")
	require.ErrorIs(t, err, publisher.ErrNoMainVariation, "should return the original fail reason")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
}

type deps struct {
	validator    *mocks.Validator
	listings     *mocks.ListingBuilder
	inventory    *mocks.InventoryFiller
	images       *mocks.ImagePublisher
	translations *mocks.TranslationPublisher
	client       *mocks.Client
	storage      *mocks.Storage
	settings     *mocks.SettingsLoader
}

func newDeps(t *testing.T) deps {
	t.Helper()
	return deps{
		validator:    mocks.NewValidator(t),
		listings:     mocks.NewListingBuilder(t),
		inventory:    mocks.NewInventoryFiller(t),
		images:       mocks.NewImagePublisher(t),
		translations: mocks.NewTranslationPublisher(t),
		client:       mocks.NewClient(t),
		storage:      mocks.NewStorage(t),
		settings:     mocks.NewSettingsLoader(t),
	}
}

func (d deps) newPublisher() *publisher.Publisher {
	logger := zerolog.Nop()
	return publisher.NewPublisher(
		d.validator,
		d.listings,
		d.inventory,
		d.images,
		d.translations,
		d.client,
		d.storage,
		d.settings,
		&logger,
		publisher.WithClock(fakeClock{now: &now}),
	)
}

func startedRun(itemID int64) *models.Run {
	return &models.Run{
		ID:        runID,
		ItemID:    itemID,
		State:     string(models.StateStart),
		CreatedAt: createdAt,
	}
}

func finishedRun(itemID int64, state models.State, status error, ops ...func(r *models.Run)) *models.Run {
	run := &models.Run{
		ID:         runID,
		ItemID:     itemID,
		State:      string(state),
		CreatedAt:  createdAt,
		FinishedAt: &now,
		IsSuccess:  lo.ToPtr(status == nil),
	}
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}

	for _, op := range ops {
		op(run)
	}

	return run
}

func listableValidation(article models.Article) *models.Validation {
	return &models.Validation{
		Listable: article.Variations,
		Price:    lo.ToPtr(12.34),
		Quantity: 10,
	}
}

func mockStorageStartRun(storage *mocks.Storage, itemID int64, run *models.Run, err error) {
	storage.On("StartRun", mock.Anything, itemID).Return(run, err)
}

func mockStorageFinishRun(storage *mocks.Storage, run *models.Run, err error) {
	storage.On("FinishRun", mock.Anything, run).Return(err)
}

func mockSettingsLoad(loader *mocks.SettingsLoader, err error) {
	loader.On("Load", mock.Anything).Return(snapshot, err)
}

func mockValidator(validator *mocks.Validator, article *models.Article, validation *models.Validation, err error) {
	validator.On("Validate", mock.Anything, article, snapshot).Return(validation, err)
}

func mockBuilder(
	builder *mocks.ListingBuilder,
	article *models.Article,
	validation *models.Validation,
	payload etsy.CreateListingPayload,
	err error,
) {
	builder.On("Build", article, validation, snapshot).Return(payload, err)
}

func mockCreateListing(client *mocks.Client, payload etsy.CreateListingPayload, listingID int64, err error) {
	client.On("CreateListing", mock.Anything, snapshot.MainLanguage, payload).Return(listingID, err)
}

type fakeClock struct {
	now *time.Time
}

func (c fakeClock) Now() *time.Time {
	return c.now
}
