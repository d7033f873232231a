package publisher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/etsy"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Validator --filename validator.go
//go:generate mockery --name ListingBuilder --filename listingbuilder.go
//go:generate mockery --name InventoryFiller --filename inventoryfiller.go
//go:generate mockery --name ImagePublisher --filename imagepublisher.go
//go:generate mockery --name TranslationPublisher --filename translationpublisher.go
//go:generate mockery --name Client --filename client.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name SettingsLoader --filename settingsloader.go

// ErrNoMainVariation is returned when an article has no main variation.
var ErrNoMainVariation = errors.New("article has no main variation")

// Validator decides which variations are listable and aggregates price and quantity.
type Validator interface {
	Validate(ctx context.Context, article *models.Article, snapshot settings.Snapshot) (*models.Validation, error)
}

// ListingBuilder builds the create listing payload.
type ListingBuilder interface {
	Build(article *models.Article, validation *models.Validation, snapshot settings.Snapshot) (etsy.CreateListingPayload, error)
}

// InventoryFiller builds and submits the listing inventory.
type InventoryFiller interface {
	Fill(ctx context.Context, listingID int64, article *models.Article, validation *models.Validation, snapshot settings.Snapshot) error
}

// ImagePublisher uploads listing images.
type ImagePublisher interface {
	Publish(ctx context.Context, listingID int64, article *models.Article, snapshot settings.Snapshot) error
}

// TranslationPublisher pushes best-effort listing translations.
type TranslationPublisher interface {
	Publish(ctx context.Context, listingID int64, article *models.Article, snapshot settings.Snapshot)
}

// Client is the subset of marketplace calls driven directly by the saga.
type Client interface {
	CreateListing(ctx context.Context, language string, payload etsy.CreateListingPayload) (int64, error)
	UpdateListing(ctx context.Context, listingID int64, payload etsy.UpdateListingPayload) error
	DeleteListing(ctx context.Context, listingID int64) error
}

// Storage is publication runs and SKU reservations storage.
type Storage interface {
	// StartRun creates new run if there is no run for provided item running.
	StartRun(ctx context.Context, itemID int64) (*models.Run, error)
	// FinishRun finishes provided run and records its outcome.
	FinishRun(ctx context.Context, run *models.Run) error
	// DeleteListingSkus deletes all SKU reservations of the listing and returns them.
	DeleteListingSkus(ctx context.Context, listingID, referrerID int64) ([]models.SkuReservation, error)
	// UpdateSkuStatus updates the reservation status of the variation.
	UpdateSkuStatus(ctx context.Context, variationID int64, status string) error
}

// SettingsLoader loads the immutable settings snapshot of one publication.
type SettingsLoader interface {
	Load(ctx context.Context) (settings.Snapshot, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Option is custom configuration of Publisher.
type Option func(p *Publisher)

// Publisher runs the listing publication saga for single articles.
//
// Steps are strictly sequential. Before the remote listing exists a failure
// simply terminates the run; once it exists, every failure (except best-effort
// translations) rolls the listing back: SKU reservations are released and the
// remote listing is deleted.
type Publisher struct {
	validator    Validator
	listings     ListingBuilder
	inventory    InventoryFiller
	images       ImagePublisher
	translations TranslationPublisher
	client       Client
	storage      Storage
	settings     SettingsLoader
	logger       *zerolog.Logger
	clock        Clock
}

// NewPublisher returns new Publisher.
func NewPublisher(
	validator Validator,
	listings ListingBuilder,
	inventory InventoryFiller,
	images ImagePublisher,
	translations TranslationPublisher,
	client Client,
	storage Storage,
	settingsLoader SettingsLoader,
	logger *zerolog.Logger,
	ops ...Option,
) *Publisher {
	pub := &Publisher{
		validator:    validator,
		listings:     listings,
		inventory:    inventory,
		images:       images,
		translations: translations,
		client:       client,
		storage:      storage,
		settings:     settingsLoader,
		logger:       logger,
		clock:        systemClock{},
	}

	for _, op := range ops {
		op(pub)
	}

	return pub
}

// Publish runs the whole publication saga for one article.
func (p *Publisher) Publish(ctx context.Context, article models.Article) error {
	logger := p.logger.With().Int64("itemId", article.ItemID).Logger()

	run, err := p.storage.StartRun(ctx, article.ItemID)
	if err != nil {
		return fmt.Errorf("can't start publication: %w", err)
	}

	if article.Main() == nil {
		logger.Error().Msg("article has no main variation")
		return p.finishRun(ctx, run, models.StateFailed, ErrNoMainVariation)
	}

	snapshot, err := p.settings.Load(ctx)
	if err != nil {
		return p.finishRun(ctx, run, models.StateFailed, fmt.Errorf("can't load settings: %w", err))
	}

	run.State = string(models.StateValidating)
	validation, err := p.validator.Validate(ctx, &article, snapshot)
	if err != nil {
		return p.finishRun(ctx, run, models.StateFailed, fmt.Errorf("can't validate article: %w", err))
	}

	run.ListableVariations = lo.ToPtr(int32(len(validation.Listable)))
	run.FailedVariations = lo.ToPtr(int32(len(validation.VariationErrors)))

	if validation.ArticleFailed() {
		listingErr := platform.NewListingError("article is not listable", validation.ArticleErrors, validation.VariationErrors)
		logger.Error().
			Interface("errors", listingErr.Bag).
			Msg("article is not listable")
		return p.finishRun(ctx, run, models.StateFailed, listingErr)
	}

	if len(validation.VariationErrors) > 0 {
		logger.Error().
			Interface("failedVariations", validation.VariationErrors).
			Msg("some variations are not listable")
	}

	run.State = string(models.StateCreating)
	payload, err := p.listings.Build(&article, validation, snapshot)
	if err != nil {
		logger.Error().Err(err).Msg("can't build listing")
		return p.finishRun(ctx, run, models.StateFailed, err)
	}

	listingID, err := p.client.CreateListing(ctx, snapshot.MainLanguage, payload)
	if err != nil {
		// nothing was created remotely, nothing to compensate
		logger.Error().Err(err).Msg("can't create listing")
		return p.finishRun(ctx, run, models.StateFailed, err)
	}

	run.ListingID = &listingID
	logger = logger.With().Int64("etsyListingId", listingID).Logger()

	// the remote listing exists now, every following failure rolls it back
	run.State = string(models.StateInventorying)
	if err := p.inventory.Fill(ctx, listingID, &article, validation, snapshot); err != nil {
		return p.compensate(ctx, run, &logger, snapshot, err)
	}

	run.State = string(models.StateImaging)
	if err := p.images.Publish(ctx, listingID, &article, snapshot); err != nil {
		return p.compensate(ctx, run, &logger, snapshot, err)
	}

	run.State = string(models.StateTranslating)
	p.translations.Publish(ctx, listingID, &article, snapshot)

	run.State = string(models.StatePublishing)
	if err := p.activate(ctx, listingID, validation); err != nil {
		return p.compensate(ctx, run, &logger, snapshot, err)
	}

	logger.Info().Msg("listing published")

	return p.finishRun(ctx, run, models.StateDone, nil)
}

// activate switches the remote listing to active state and marks the SKU
// reservations of all listable variations active.
func (p *Publisher) activate(ctx context.Context, listingID int64, validation *models.Validation) error {
	err := p.client.UpdateListing(ctx, listingID, etsy.UpdateListingPayload{State: etsy.StateActive})
	if err != nil {
		return fmt.Errorf("can't activate listing: %w", err)
	}

	for _, variation := range validation.Listable {
		if err := p.storage.UpdateSkuStatus(ctx, variation.ID, models.SkuStatusActive); err != nil {
			return fmt.Errorf("can't activate sku of variation %d: %w", variation.ID, err)
		}
	}

	return nil
}

// compensate rolls back a partially published listing: it releases all SKU
// reservations and deletes the remote listing. Cleanup is best-effort, every
// failure is logged independently and never re-raised. Compensation runs
// detached from the caller's cancellation so a cancelled saga can't leak
// remote state.
func (p *Publisher) compensate(
	ctx context.Context,
	run *models.Run,
	logger *zerolog.Logger,
	snapshot settings.Snapshot,
	cause error,
) error {
	ctx = context.WithoutCancel(ctx)
	run.State = string(models.StateCompensating)
	listingID := *run.ListingID

	skus, err := p.storage.DeleteListingSkus(ctx, listingID, snapshot.ReferrerID)
	if err != nil {
		logger.Error().Err(err).Msg("can't delete sku reservations")
	} else if len(skus) > 0 {
		removed := lo.Map(skus, func(sku models.SkuReservation, _ int) string { return sku.Sku })
		logger.Info().Strs("skus", removed).Msg("removed sku reservations")
	}

	if err := p.client.DeleteListing(ctx, listingID); err != nil {
		logger.Error().Err(err).Msg("can't delete listing")
	}

	logger.Error().Err(cause).Msg("publication failed, listing rolled back")

	return p.finishRun(ctx, run, models.StateFailed, cause)
}

func (p *Publisher) finishRun(ctx context.Context, run *models.Run, state models.State, status error) error {
	run.State = string(state)
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = p.clock.Now()

	err := p.storage.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish publication: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed publication: %w (fail reason: %w)", err, status)
	}

	return status
}

// WithClock sets Publisher's custom Clock.
func WithClock(c Clock) Option {
	return func(p *Publisher) {
		p.clock = c
	}
}
