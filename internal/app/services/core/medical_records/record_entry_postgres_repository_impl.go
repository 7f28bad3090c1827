package medicalRecords

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

type recordEntryPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewRecordEntryPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.RecordEntryRepository {
	return &recordEntryPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

// Save appends the entry and bumps the owning record's updated_at in one
// transaction.
func (r *recordEntryPostgresRepository) Save(ctx context.Context, entry *models.RecordEntry) (*models.RecordEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("recordEntryPostgresRepository.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMedicalRecordIDKey, entry.RecordID),
		zap.String(constvars.LoggingEntryTypeKey, string(entry.Type)),
	)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	defer tx.Rollback()

	saved := *entry
	err = tx.QueryRowContext(ctx, queries.CreateRecordEntryQuery,
		entry.RecordID, entry.Date, string(entry.Type), entry.Content,
	).Scan(&saved.ID)
	if err != nil {
		r.Log.Error("recordEntryPostgresRepository.Save error inserting record entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	_, err = tx.ExecContext(ctx, queries.TouchMedicalRecordQuery, entry.RecordID)
	if err != nil {
		r.Log.Error("recordEntryPostgresRepository.Save error touching medical record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("recordEntryPostgresRepository.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordEntryIDKey, saved.ID),
	)
	return &saved, nil
}

func (r *recordEntryPostgresRepository) FindByRecordIDOrderByDateDescIDDesc(ctx context.Context, recordID int64) ([]models.RecordEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("recordEntryPostgresRepository.FindByRecordIDOrderByDateDescIDDesc called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMedicalRecordIDKey, recordID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindRecordEntriesByRecordIDQuery, recordID)
	if err != nil {
		r.Log.Error("recordEntryPostgresRepository.FindByRecordIDOrderByDateDescIDDesc error querying entries",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	entries := make([]models.RecordEntry, 0)
	for rows.Next() {
		var (
			entry     models.RecordEntry
			entryType string
		)
		err := rows.Scan(&entry.ID, &entry.RecordID, &entry.Date, &entryType, &entry.Content)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		entry.Type = models.RecordEntryType(entryType)
		entry.Date = entry.Date.UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return entries, nil
}
