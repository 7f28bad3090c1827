package appointments

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/queries"
	"context"
	"database/sql"

	"go.uber.org/zap"
)

type appointmentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewAppointmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AppointmentRepository {
	return &appointmentPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *appointmentPostgresRepository) Save(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	saved := *appointment
	err := r.DB.QueryRowContext(ctx, queries.CreateAppointmentQuery,
		appointment.Date, appointment.Time, appointment.PatientID,
	).Scan(&saved.ID)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.Save error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("appointmentPostgresRepository.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, saved.ID),
	)
	return &saved, nil
}

// Update reports false when no appointment has the given id.
func (r *appointmentPostgresRepository) Update(ctx context.Context, appointment *models.Appointment) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	result, err := r.DB.ExecContext(ctx, queries.UpdateAppointmentQuery,
		appointment.ID, appointment.Date, appointment.Time, appointment.PatientID,
	)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.Update error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected > 0, nil
}

func (r *appointmentPostgresRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	row := r.DB.QueryRowContext(ctx, queries.FindAppointmentByIDQuery, appointmentID)
	appointment, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.FindByID error scanning appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointment, nil
}

func (r *appointmentPostgresRepository) FindByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return r.findMany(ctx, queries.FindAppointmentsByPatientIDQuery, patientID)
}

func (r *appointmentPostgresRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return r.findMany(ctx, queries.FindAllAppointmentsQuery)
}

func (r *appointmentPostgresRepository) DeleteByID(ctx context.Context, appointmentID int64) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	result, err := r.DB.ExecContext(ctx, queries.DeleteAppointmentByIDQuery, appointmentID)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.DeleteByID error deleting appointment",
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

func (r *appointmentPostgresRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.findMany error querying appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		appointments = append(appointments, *appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	r.Log.Info("appointmentPostgresRepository.findMany succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	var (
		appointment models.Appointment
		patientID   sql.NullInt64
	)
	err := row.Scan(&appointment.ID, &appointment.Date, &appointment.Time, &patientID)
	if err != nil {
		return nil, err
	}
	if patientID.Valid {
		id := patientID.Int64
		appointment.PatientID = &id
	}
	appointment.Date = appointment.Date.UTC()
	return &appointment, nil
}
