package ats_test

import (
	"context"
	"testing"
	"time"

	"github.com/fareltaza35/atscore/pkg/ats"
	"github.com/fareltaza35/atscore/pkg/database/sql/adapters/memory"
)

func TestSQLApplicantStoreJoinsProfileAndDetail(t *testing.T) {
	db, err := memory.New()
	if err != nil {
		t.Fatalf("memory.New() error = %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	gormDB := db.Get(ctx)

	if err := gormDB.AutoMigrate(&ats.ApplicantProfile{}, &ats.ApplicationDetail{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}

	profile := ats.ApplicantProfile{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC),
		Address:     "123 Main St",
		PhoneNumber: "555-0100",
	}
	if err := gormDB.Create(&profile).Error; err != nil {
		t.Fatalf("Create(profile) error = %v", err)
	}

	detail := ats.ApplicationDetail{
		ApplicantID:   profile.ApplicantID,
		ApplicantRole: "Backend Engineer",
		CVPath:        "jane.pdf",
	}
	if err := gormDB.Create(&detail).Error; err != nil {
		t.Fatalf("Create(detail) error = %v", err)
	}

	store := ats.NewSQLApplicantStore(db)
	records, err := store.GetAllApplicantDataJoined(ctx)
	if err != nil {
		t.Fatalf("GetAllApplicantDataJoined() error = %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("GetAllApplicantDataJoined() returned %d records, want 1", len(records))
	}

	got := records[0]
	if got.FirstName != "Jane" || got.LastName != "Doe" {
		t.Errorf("name = %q %q, want Jane Doe", got.FirstName, got.LastName)
	}
	if got.CVPath != "jane.pdf" {
		t.Errorf("CVPath = %q, want jane.pdf", got.CVPath)
	}
	if got.DateOfBirth != "1995-03-14" {
		t.Errorf("DateOfBirth = %q, want 1995-03-14", got.DateOfBirth)
	}
}
