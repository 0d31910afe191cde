package site

import (
	"testing"

	"github.com/minbarhq/core/internal/database"
	"github.com/minbarhq/core/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("resolve sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSettings_FirstReadCreatesDefaults(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettingsService(db)

	m, err := svc.GetOrCreate()
	if err != nil {
		t.Fatalf("get-or-create: %v", err)
	}
	if m.MaintenanceMode {
		t.Fatalf("expected maintenanceMode=false")
	}
	if m.FlashActive {
		t.Fatalf("expected flashActive=false")
	}
	if m.FlashMessage != defaultSettings().FlashMessage {
		t.Fatalf("unexpected default flash message %q", m.FlashMessage)
	}

	var count int64
	if err := db.Model(&models.SettingsModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row, got %d", count)
	}
}

func TestSettings_SecondReadReturnsSameDocument(t *testing.T) {
	svc := NewSettingsService(openTestDB(t))

	first, err := svc.GetOrCreate()
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := svc.GetOrCreate()
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same id, got %s then %s", first.ID, second.ID)
	}
}

func TestSettings_UpsertMergesPartialPayload(t *testing.T) {
	svc := NewSettingsService(openTestDB(t))

	active := true
	m, err := svc.Upsert(&UpdateSettingsDTO{FlashActive: &active})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !m.FlashActive {
		t.Fatalf("expected flashActive=true")
	}
	if m.FlashMessage != defaultSettings().FlashMessage {
		t.Fatalf("expected other fields untouched, got %q", m.FlashMessage)
	}
}

func TestSettings_UpsertCreatesWhenAbsent(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettingsService(db)

	maintenance := true
	m, err := svc.Upsert(&UpdateSettingsDTO{MaintenanceMode: &maintenance})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if m.ID == "" {
		t.Fatalf("expected created row")
	}
	if !m.MaintenanceMode {
		t.Fatalf("expected maintenanceMode=true")
	}

	var count int64
	if err := db.Model(&models.SettingsModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row, got %d", count)
	}
}

func TestCampaign_FirstReadCreatesFixedDefaults(t *testing.T) {
	svc := NewCampaignService(openTestDB(t))

	m, err := svc.GetOrCreate()
	if err != nil {
		t.Fatalf("get-or-create: %v", err)
	}
	defaults := defaultCampaign()
	if m.Title != defaults.Title {
		t.Fatalf("expected default title %q, got %q", defaults.Title, m.Title)
	}
	if m.CurrentAmount != 0 {
		t.Fatalf("expected currentAmount=0, got %v", m.CurrentAmount)
	}
	if len(m.TrustIndicators) != len(defaults.TrustIndicators) {
		t.Fatalf("expected %d trust indicators, got %d", len(defaults.TrustIndicators), len(m.TrustIndicators))
	}
}

func TestCampaign_UpsertAmountKeepsOtherFields(t *testing.T) {
	svc := NewCampaignService(openTestDB(t))

	if _, err := svc.GetOrCreate(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	amount := 20000000.0
	m, err := svc.Upsert(&UpdateCampaignDTO{CurrentAmount: &amount})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if m.CurrentAmount != amount {
		t.Fatalf("expected currentAmount %v, got %v", amount, m.CurrentAmount)
	}

	again, err := svc.GetOrCreate()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.CurrentAmount != amount {
		t.Fatalf("expected persisted amount %v, got %v", amount, again.CurrentAmount)
	}
	if again.Title != defaultCampaign().Title {
		t.Fatalf("expected title untouched, got %q", again.Title)
	}
	if len(again.TrustIndicators) != len(defaultCampaign().TrustIndicators) {
		t.Fatalf("trust indicators lost on round-trip: %d", len(again.TrustIndicators))
	}
}

func TestCampaign_UpsertReplacesTrustIndicators(t *testing.T) {
	svc := NewCampaignService(openTestDB(t))

	indicators := []models.TrustIndicator{{Icon: "heart", Title: "t", Text: "x"}}
	m, err := svc.Upsert(&UpdateCampaignDTO{TrustIndicators: indicators})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if len(m.TrustIndicators) != 1 || m.TrustIndicators[0].Icon != "heart" {
		t.Fatalf("expected replaced indicators, got %+v", m.TrustIndicators)
	}

	again, err := svc.GetOrCreate()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again.TrustIndicators) != 1 || again.TrustIndicators[0].Icon != "heart" {
		t.Fatalf("indicators not persisted, got %+v", again.TrustIndicators)
	}
}
