package medicalRecords

import (
	"clinic-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssembleRecordView_OrdersEntriesNewestFirst(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }
	entries := []models.RecordEntry{
		{ID: 1, Date: day(1)},
		{ID: 2, Date: day(3)},
		{ID: 3, Date: day(1)},
		{ID: 4, Date: day(2)},
	}

	view := assembleRecordView(&models.MedicalRecord{ID: 10}, nil, entries)

	ids := make([]int64, 0, len(view.Entries))
	for _, entry := range view.Entries {
		ids = append(ids, entry.ID)
	}
	assert.Equal(t, []int64{2, 4, 3, 1}, ids)
	assert.Equal(t, int64(1), entries[0].ID, "input slice must not be reordered")
}

func TestAssembleRecordView_NoEntries(t *testing.T) {
	view := assembleRecordView(&models.MedicalRecord{ID: 10}, nil, nil)
	assert.NotNil(t, view.Entries)
	assert.Empty(t, view.Entries)
	assert.Nil(t, view.Patient)
}
