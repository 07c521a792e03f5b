package ats

import (
	"context"
	"time"

	atsdb "github.com/fareltaza35/atscore/pkg/database/sql"
	"github.com/fareltaza35/atscore/pkg/errors"
)

// ApplicantProfile mirrors the ApplicantProfile table: applicant identity.
type ApplicantProfile struct {
	ApplicantID uint      `gorm:"column:applicant_id;primaryKey;autoIncrement"`
	FirstName   string    `gorm:"column:first_name;size:50"`
	LastName    string    `gorm:"column:last_name;size:50"`
	DateOfBirth time.Time `gorm:"column:date_of_birth"`
	Address     string    `gorm:"column:address;size:255"`
	PhoneNumber string    `gorm:"column:phone_number;size:20"`
}

// TableName pins the GORM table name to the original schema's casing.
func (ApplicantProfile) TableName() string { return "ApplicantProfile" }

// ApplicationDetail mirrors the ApplicationDetail table: one résumé
// submission per applicant.
type ApplicationDetail struct {
	DetailID      uint   `gorm:"column:detail_id;primaryKey;autoIncrement"`
	ApplicantID   uint   `gorm:"column:applicant_id;not null"`
	ApplicantRole string `gorm:"column:applicant_role;size:100"`
	CVPath        string `gorm:"column:cv_path"`
}

// TableName pins the GORM table name to the original schema's casing.
func (ApplicationDetail) TableName() string { return "ApplicationDetail" }

// SQLApplicantStore implements ApplicantStore over the teacher's SQL
// abstraction, joining ApplicantProfile to its most recent
// ApplicationDetail row.
type SQLApplicantStore struct {
	db atsdb.SQL
}

// NewSQLApplicantStore wraps a configured SQL connection as an
// ApplicantStore.
func NewSQLApplicantStore(db atsdb.SQL) *SQLApplicantStore {
	return &SQLApplicantStore{db: db}
}

func (s *SQLApplicantStore) GetAllApplicantDataJoined(ctx context.Context) ([]ApplicantRecord, error) {
	type row struct {
		ApplicantID uint
		FirstName   string
		LastName    string
		DateOfBirth time.Time
		Address     string
		PhoneNumber string
		CVPath      string
	}

	var rows []row
	err := s.db.Get(ctx).
		Model(&ApplicantProfile{}).
		Select("ApplicantProfile.applicant_id, first_name, last_name, date_of_birth, address, phone_number, cv_path").
		Joins("JOIN ApplicationDetail ON ApplicationDetail.applicant_id = ApplicantProfile.applicant_id").
		Order("ApplicantProfile.applicant_id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query joined applicant data")
	}

	records := make([]ApplicantRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, ApplicantRecord{
			ApplicantID: int64(r.ApplicantID),
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			DateOfBirth: r.DateOfBirth.Format("2006-01-02"),
			Address:     r.Address,
			PhoneNumber: r.PhoneNumber,
			CVPath:      r.CVPath,
		})
	}
	return records, nil
}
