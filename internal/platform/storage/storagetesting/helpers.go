package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/etsy-listing-publisher/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertRuns is a helper test function to insert publish runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.PublishRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	toInsert := make([]pgmodels.PublishRun, 0, len(runs))
	toInsert = append(toInsert, runs...)

	_, err := table.PublishRun.INSERT(table.PublishRun.AllColumns.Except(table.PublishRun.ID)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertSkus is a helper test function to insert SKU reservations.
func InsertSkus(t *testing.T, exc qrm.Executable, skus ...pgmodels.VariationSku) {
	t.Helper()

	if len(skus) == 0 {
		return
	}

	toInsert := make([]pgmodels.VariationSku, 0, len(skus))
	toInsert = append(toInsert, skus...)

	_, err := table.VariationSku.INSERT(table.VariationSku.AllColumns.Except(table.VariationSku.ID, table.VariationSku.CreatedAt)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert sku reservations", err)
	}
}

// InsertSettings is a helper test function to insert settings.
func InsertSettings(t *testing.T, exc qrm.Executable, settings ...pgmodels.Setting) {
	t.Helper()

	if len(settings) == 0 {
		return
	}

	toInsert := make([]pgmodels.Setting, 0, len(settings))
	toInsert = append(toInsert, settings...)

	_, err := table.Setting.INSERT(table.Setting.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert settings", err)
	}
}

// GetRuns is a helper test function to get all publish runs of an item.
func GetRuns(t *testing.T, queryable qrm.Queryable, itemID int64) []pgmodels.PublishRun {
	t.Helper()

	runs := []pgmodels.PublishRun{}
	err := table.PublishRun.SELECT(table.PublishRun.AllColumns).
		WHERE(table.PublishRun.ItemID.EQ(pg.Int64(itemID))).
		ORDER_BY(table.PublishRun.ID.ASC()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetSkus is a helper test function to get all SKU reservations of a listing.
func GetSkus(t *testing.T, queryable qrm.Queryable, listingID int64) []pgmodels.VariationSku {
	t.Helper()

	skus := []pgmodels.VariationSku{}
	err := table.VariationSku.SELECT(table.VariationSku.AllColumns).
		WHERE(table.VariationSku.ListingID.EQ(pg.Int64(listingID))).
		ORDER_BY(table.VariationSku.ID.ASC()).
		Query(queryable, &skus)
	if err != nil {
		t.Fatal("can't get sku reservations", err)
	}

	return skus
}

// GetListingImages is a helper test function to get all stored listing images.
func GetListingImages(t *testing.T, queryable qrm.Queryable, listingID int64) []pgmodels.ListingImage {
	t.Helper()

	images := []pgmodels.ListingImage{}
	err := table.ListingImage.SELECT(table.ListingImage.AllColumns).
		WHERE(table.ListingImage.ListingID.EQ(pg.Int64(listingID))).
		ORDER_BY(table.ListingImage.Position.ASC()).
		Query(queryable, &images)
	if err != nil {
		t.Fatal("can't get listing images", err)
	}

	return images
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.ListingImage.DELETE().WHERE(table.ListingImage.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete listing images data", err)
	}

	_, err = table.VariationSku.DELETE().WHERE(table.VariationSku.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete sku reservations data", err)
	}

	_, err = table.PublishRun.DELETE().WHERE(table.PublishRun.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}

	_, err = table.Setting.DELETE().WHERE(table.Setting.Name.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete settings data", err)
	}
}
