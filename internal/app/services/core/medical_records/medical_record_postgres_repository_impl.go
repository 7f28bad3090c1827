package medicalRecords

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/queries"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pqUniqueViolation = "23505"

type medicalRecordPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewMedicalRecordPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.MedicalRecordRepository {
	return &medicalRecordPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

// Save relies on UNIQUE(patient_id); a second record for the same patient
// fails with an error matching exceptions.ErrUniqueViolation.
func (r *medicalRecordPostgresRepository) Save(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicalRecordPostgresRepository.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, record.PatientID),
	)

	saved := *record
	err := r.DB.QueryRowContext(ctx, queries.CreateMedicalRecordQuery,
		record.PatientID, record.BloodType, record.Allergies,
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			r.Log.Info("medicalRecordPostgresRepository.Save unique constraint violated",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingPatientIDKey, record.PatientID),
			)
			return nil, exceptions.ErrPostgresDBInsertData(fmt.Errorf("%w: %s", exceptions.ErrUniqueViolation, pqErr.Constraint))
		}
		r.Log.Error("medicalRecordPostgresRepository.Save error inserting medical record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("medicalRecordPostgresRepository.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMedicalRecordIDKey, saved.ID),
	)
	return &saved, nil
}

func (r *medicalRecordPostgresRepository) FindByID(ctx context.Context, recordID int64) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicalRecordPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMedicalRecordIDKey, recordID),
	)
	return r.findOne(ctx, queries.FindMedicalRecordByIDQuery, recordID)
}

func (r *medicalRecordPostgresRepository) FindByPatientID(ctx context.Context, patientID int64) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicalRecordPostgresRepository.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return r.findOne(ctx, queries.FindMedicalRecordByPatientIDQuery, patientID)
}

func (r *medicalRecordPostgresRepository) ExistsByPatientID(ctx context.Context, patientID int64) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicalRecordPostgresRepository.ExistsByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	var exists bool
	err := r.DB.QueryRowContext(ctx, queries.ExistsMedicalRecordByPatientIDQuery, patientID).Scan(&exists)
	if err != nil {
		r.Log.Error("medicalRecordPostgresRepository.ExistsByPatientID error querying medical record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBFindData(err)
	}
	return exists, nil
}

func (r *medicalRecordPostgresRepository) FindAll(ctx context.Context) ([]models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicalRecordPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindAllMedicalRecordsQuery)
	if err != nil {
		r.Log.Error("medicalRecordPostgresRepository.FindAll error querying medical records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	records := make([]models.MedicalRecord, 0)
	for rows.Next() {
		record, err := scanMedicalRecord(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return records, nil
}

// DeleteByID removes the record; its entries go with it through ON DELETE CASCADE.
func (r *medicalRecordPostgresRepository) DeleteByID(ctx context.Context, recordID int64) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicalRecordPostgresRepository.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMedicalRecordIDKey, recordID),
	)

	result, err := r.DB.ExecContext(ctx, queries.DeleteMedicalRecordByIDQuery, recordID)
	if err != nil {
		r.Log.Error("medicalRecordPostgresRepository.DeleteByID error deleting medical record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}
	return affected > 0, nil
}

func (r *medicalRecordPostgresRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.MedicalRecord, error) {
	record, err := scanMedicalRecord(r.DB.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		r.Log.Error("medicalRecordPostgresRepository.findOne error scanning medical record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return record, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMedicalRecord(row rowScanner) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := row.Scan(
		&record.ID,
		&record.PatientID,
		&record.BloodType,
		&record.Allergies,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
