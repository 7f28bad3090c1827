package migration

import (
	"database/sql"

	migrate "github.com/rubenv/sql-migrate"
)

const dialect = "postgres"

func source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: FS,
		Root:       Root,
	}
}

// Up applies every pending migration and returns how many ran.
func Up(db *sql.DB) (int, error) {
	return migrate.Exec(db, dialect, source(), migrate.Up)
}

// Down rolls back at most steps migrations; zero rolls back all of them.
func Down(db *sql.DB, steps int) (int, error) {
	return migrate.ExecMax(db, dialect, source(), migrate.Down, steps)
}

// Status lists every known migration with the time it was applied, if any.
func Status(db *sql.DB) ([]MigrationStatus, error) {
	migrations, err := source().FindMigrations()
	if err != nil {
		return nil, err
	}
	records, err := migrate.GetMigrationRecords(db, dialect)
	if err != nil {
		return nil, err
	}

	applied := make(map[string]MigrationStatus, len(records))
	for _, record := range records {
		applied[record.Id] = MigrationStatus{ID: record.Id, Applied: true, AppliedAt: record.AppliedAt.String()}
	}

	result := make([]MigrationStatus, 0, len(migrations))
	for _, m := range migrations {
		if status, ok := applied[m.Id]; ok {
			result = append(result, status)
			continue
		}
		result = append(result, MigrationStatus{ID: m.Id})
	}
	return result, nil
}

type MigrationStatus struct {
	ID        string
	Applied   bool
	AppliedAt string
}
