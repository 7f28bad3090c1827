package queries

const (
	CreateRecordEntryQuery = `
		INSERT INTO record_entries (record_id, entry_date, entry_type, content, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	FindRecordEntriesByRecordIDQuery = `
		SELECT id, record_id, entry_date, entry_type, content
		FROM record_entries
		WHERE record_id = $1
		ORDER BY entry_date DESC, id DESC
	`
)
