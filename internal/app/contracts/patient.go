package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	FindAll(ctx context.Context) ([]responses.Patient, error)
	FindPatientByID(ctx context.Context, patientID int64) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, patientID int64, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, patientID int64) error
}

// PatientRepository is the patient service's own store. Find methods return
// nil without error when nothing matches.
type PatientRepository interface {
	Save(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) (bool, error)
	FindByID(ctx context.Context, patientID int64) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	DeleteByID(ctx context.Context, patientID int64) (bool, error)
}

// PatientClient performs one remote fetch. A missing patient is reported with
// an error matching exceptions.ErrRemoteEntityNotFound; every other failure is
// a transport failure.
type PatientClient interface {
	FindPatientByID(ctx context.Context, patientID int64) (*models.Patient, error)
}

// PatientGateway resolves patients owned by another service behind a circuit
// breaker.
type PatientGateway interface {
	Lookup(ctx context.Context, patientID int64) models.LookupOutcome
	Exists(ctx context.Context, patientID int64) (bool, error)
	Snapshot() models.BreakerSnapshot
}
