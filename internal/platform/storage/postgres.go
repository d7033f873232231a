package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/MichalMitros/etsy-listing-publisher/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for publish runs, SKU reservations, listing images and settings.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// StartRun creates new unfinished publication run for the item and returns it.
// It returns ErrAlreadyRunning if a previous run for the item is not finished yet.
func (p Postgres) StartRun(ctx context.Context, itemID int64) (*models.Run, error) {
	run := &models.Run{
		ItemID: itemID,
		State:  string(models.StateStart),
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		lastRun, err := getLastRun(ctx, tx, itemID)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.IsSuccess == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.PublishRun.INSERT(
			table.PublishRun.ItemID,
			table.PublishRun.State,
		).
			MODEL(newRun).
			RETURNING(table.PublishRun.ID, table.PublishRun.CreatedAt).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int64(newRun.ID)
		run.CreatedAt = newRun.CreatedAt

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates its outcome.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.PublishRun.AllColumns.Except(table.PublishRun.ID, table.PublishRun.CreatedAt)

	result, err := table.PublishRun.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.PublishRun.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	return nil
}

// GenerateSku creates an inactive SKU reservation binding the variation
// to the listing and referrer, and returns the generated SKU.
func (p Postgres) GenerateSku(ctx context.Context, variationID, itemID, listingID, referrerID int64) (string, error) {
	reservation := pgmodels.VariationSku{
		VariationID: variationID,
		ItemID:      itemID,
		ListingID:   listingID,
		ReferrerID:  referrerID,
		Sku:         fmt.Sprintf("%d-%d", listingID, variationID),
		Status:      models.SkuStatusInactive,
	}

	_, err := table.VariationSku.INSERT(
		table.VariationSku.VariationID,
		table.VariationSku.ItemID,
		table.VariationSku.ListingID,
		table.VariationSku.ReferrerID,
		table.VariationSku.Sku,
		table.VariationSku.Status,
	).
		MODEL(reservation).
		ExecContext(ctx, p.db)
	if err != nil {
		return "", fmt.Errorf("can't insert sku reservation into database: %w", err)
	}

	return reservation.Sku, nil
}

// DeleteListingSkus deletes all SKU reservations of the listing scoped
// to the referrer and returns the deleted reservations.
func (p Postgres) DeleteListingSkus(ctx context.Context, listingID, referrerID int64) ([]models.SkuReservation, error) {
	deleted := []pgmodels.VariationSku{}

	err := table.VariationSku.DELETE().
		WHERE(pg.AND(
			table.VariationSku.ListingID.EQ(pg.Int64(listingID)),
			table.VariationSku.ReferrerID.EQ(pg.Int64(referrerID)),
		)).
		RETURNING(table.VariationSku.AllColumns).
		QueryContext(ctx, p.db, &deleted)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't delete sku reservations: %w", err)
	}

	reservations := make([]models.SkuReservation, 0, len(deleted))
	for ix := range deleted {
		reservations = append(reservations, *fromDBSku(&deleted[ix]))
	}

	return reservations, nil
}

// UpdateSkuStatus updates the status of all SKU reservations of the variation.
func (p Postgres) UpdateSkuStatus(ctx context.Context, variationID int64, status string) error {
	_, err := table.VariationSku.UPDATE(table.VariationSku.Status).
		SET(pg.String(status)).
		WHERE(table.VariationSku.VariationID.EQ(pg.Int64(variationID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update sku status: %w", err)
	}

	return nil
}

// SaveListingImages records the mapping from local images to listing images.
func (p Postgres) SaveListingImages(ctx context.Context, listingID int64, images []models.ImageReference) error {
	if len(images) == 0 {
		return nil
	}

	dbImages := make([]pgmodels.ListingImage, 0, len(images))
	for ix := range images {
		dbImages = append(dbImages, *toDBImage(listingID, &images[ix]))
	}

	_, err := table.ListingImage.INSERT(
		table.ListingImage.ImageID,
		table.ListingImage.ListingImageID,
		table.ListingImage.ListingID,
		table.ListingImage.ItemID,
		table.ListingImage.ImageURL,
		table.ListingImage.Position,
	).
		MODELS(dbImages).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert listing images into database: %w", err)
	}

	return nil
}

// Setting returns the setting value for provided name or empty string
// when the setting does not exist.
func (p Postgres) Setting(ctx context.Context, name string) (string, error) {
	setting := pgmodels.Setting{}

	err := table.Setting.SELECT(table.Setting.AllColumns).
		WHERE(table.Setting.Name.EQ(pg.String(name))).
		QueryContext(ctx, p.db, &setting)
	if errors.Is(err, qrm.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("can't get setting from database: %w", err)
	}

	return setting.Value, nil
}

func getLastRun(ctx context.Context, db qrm.Queryable, itemID int64) (*models.Run, error) {
	lastRun := pgmodels.PublishRun{}

	err := table.PublishRun.SELECT(table.PublishRun.AllColumns).
		WHERE(table.PublishRun.ItemID.EQ(pg.Int64(itemID))).
		ORDER_BY(table.PublishRun.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &lastRun)
	if err != nil {
		return nil, err
	}

	return fromDBRun(&lastRun), nil
}

func runInTransaction(ctx context.Context, db *sql.DB, query func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err := query(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
