package repositories

import (
	"context"
	"testing"
	"time"

	gormmodels "airease/backend/internal/models/gorm"

	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T, models ...interface{}) *gormlib.DB {
	t.Helper()
	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestAircraftComfortRepository(t *testing.T) {
	db := newTestDB(t, &gormmodels.AircraftComfort{})
	repo := NewAircraftComfortRepository(db)
	ctx := context.Background()

	rows := []gormmodels.AircraftComfort{
		{AircraftModel: "Boeing 787-9", SeatWidthEconomy: 17.5, SeatPitchEconomy: 31},
		{AircraftModel: "Airbus A320neo", SeatWidthEconomy: 18.0, SeatPitchEconomy: 30},
	}
	if err := repo.BatchInsert(ctx, rows); err != nil {
		t.Fatalf("batch insert failed: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 2 {
		t.Fatalf("count = %d, err = %v", count, err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 || all[0].AircraftModel != "Airbus A320neo" {
		t.Errorf("rows not ordered by model: %+v", all)
	}

	row, err := repo.FindByModel(ctx, "boeing 787-9")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if row == nil || row.SeatWidthEconomy != 17.5 {
		t.Errorf("case-insensitive lookup failed: %+v", row)
	}

	missing, err := repo.FindByModel(ctx, "Concorde")
	if err != nil || missing != nil {
		t.Errorf("missing model should yield nil, nil: %v %v", missing, err)
	}
}

func TestAirlineReliabilityRepository(t *testing.T) {
	db := newTestDB(t, &gormmodels.AirlineReliability{})
	repo := NewAirlineReliabilityRepository(db)
	ctx := context.Background()

	err := repo.BatchInsert(ctx, []gormmodels.AirlineReliability{
		{Code: "CX", Name: "Cathay Pacific", OTP: 90.1},
		{Code: "MU", Name: "China Eastern", OTP: 72.4},
	})
	if err != nil {
		t.Fatalf("batch insert failed: %v", err)
	}

	row, err := repo.FindByCode(ctx, "cx")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if row == nil || row.OTP != 90.1 {
		t.Errorf("case-insensitive code lookup failed: %+v", row)
	}

	all, err := repo.ListAll(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("list failed: %v (%d rows)", err, len(all))
	}
}

func TestMetadataCacheRepositoryFreshness(t *testing.T) {
	db := newTestDB(t, &gormmodels.AircraftMetadataCache{})
	repo := NewMetadataCacheRepository(db)
	ctx := context.Background()

	if err := repo.Upsert(ctx, &gormmodels.AircraftMetadataCache{
		Registration: "B-LRA",
		Data:         `{"typeName":"Airbus A350-900"}`,
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	row, err := repo.FindFresh(ctx, "b-lra", 90*24*time.Hour)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if row == nil || row.Data == "" {
		t.Fatalf("fresh row not returned: %+v", row)
	}

	// A zero max age makes every row stale.
	stale, err := repo.FindFresh(ctx, "B-LRA", 0)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stale != nil {
		t.Error("stale row should not be returned")
	}
}

func TestMetadataCacheRepositoryNegativeEntryAndUpsert(t *testing.T) {
	db := newTestDB(t, &gormmodels.AircraftMetadataCache{})
	repo := NewMetadataCacheRepository(db)
	ctx := context.Background()

	// Negative entry: the API had nothing for this registration.
	if err := repo.Upsert(ctx, &gormmodels.AircraftMetadataCache{Registration: "N00000"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	row, err := repo.FindFresh(ctx, "N00000", time.Hour)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if row == nil || row.Data != "" {
		t.Fatalf("negative entry not preserved: %+v", row)
	}

	// Upsert on the same key replaces the row instead of duplicating it.
	if err := repo.Upsert(ctx, &gormmodels.AircraftMetadataCache{
		Registration: "N00000",
		Data:         `{"typeName":"Boeing 737-800"}`,
	}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	row, err = repo.FindFresh(ctx, "N00000", time.Hour)
	if err != nil || row == nil {
		t.Fatalf("refetch failed: %v %v", row, err)
	}
	if row.Data == "" {
		t.Error("upsert did not replace negative entry")
	}

	var count int64
	db.Model(&gormmodels.AircraftMetadataCache{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 row after upsert, got %d", count)
	}
}

func TestMetadataCachePurgeStale(t *testing.T) {
	db := newTestDB(t, &gormmodels.AircraftMetadataCache{})
	repo := NewMetadataCacheRepository(db)
	ctx := context.Background()

	if err := repo.Upsert(ctx, &gormmodels.AircraftMetadataCache{Registration: "B-LRA", Data: "{}"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// Nothing is older than an hour yet.
	purged, err := repo.PurgeStale(ctx, time.Hour)
	if err != nil || purged != 0 {
		t.Errorf("expected no rows purged, got %d (%v)", purged, err)
	}

	// With a zero max age everything is stale.
	purged, err = repo.PurgeStale(ctx, 0)
	if err != nil || purged != 1 {
		t.Errorf("expected 1 row purged, got %d (%v)", purged, err)
	}
}
