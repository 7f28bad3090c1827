package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error)
	FindAll(ctx context.Context) ([]responses.MedicalRecord, error)
	FindMedicalRecordByPatientID(ctx context.Context, patientID int64) (*responses.MedicalRecord, error)
	FindMedicalRecordByID(ctx context.Context, recordID int64) (*responses.MedicalRecord, error)
	AddEntryByPatientID(ctx context.Context, patientID int64, request *requests.CreateRecordEntry) (*responses.RecordEntry, error)
	DeleteMedicalRecord(ctx context.Context, recordID int64) error
}

// MedicalRecordRepository must report a violated one-record-per-patient
// constraint with an error matching exceptions.ErrUniqueViolation.
type MedicalRecordRepository interface {
	Save(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error)
	FindByID(ctx context.Context, recordID int64) (*models.MedicalRecord, error)
	FindByPatientID(ctx context.Context, patientID int64) (*models.MedicalRecord, error)
	ExistsByPatientID(ctx context.Context, patientID int64) (bool, error)
	FindAll(ctx context.Context) ([]models.MedicalRecord, error)
	DeleteByID(ctx context.Context, recordID int64) (bool, error)
}

type RecordEntryRepository interface {
	Save(ctx context.Context, entry *models.RecordEntry) (*models.RecordEntry, error)
	FindByRecordIDOrderByDateDescIDDesc(ctx context.Context, recordID int64) ([]models.RecordEntry, error)
}
