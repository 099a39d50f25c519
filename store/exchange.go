package store

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/PrayerVault/models"
)

// ExportAll returns the full session snapshot in ListSessions order.
func (s *Store) ExportAll(ctx context.Context) ([]models.Session, error) {
	return s.ListSessions(ctx)
}

// ImportAll atomically replaces every stored session with the provided set,
// preserving the supplied ids. The delete and all inserts run in one
// transaction; any failure rolls the whole operation back, so a concurrent
// reader sees either the old set or the new one, never a partial mix.
func (s *Store) ImportAll(ctx context.Context, sessions []models.Session) error {
	err := s.db.WithTx(func(tx *goqu.TxDatabase) error {
		if _, err := tx.Delete(sessionTable).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("clear sessions: %w", err)
		}

		for _, session := range sessions {
			record := goqu.Record{
				"id":        session.Session_ID,
				"title":     session.Title,
				"type":      session.Session_Type,
				"startTime": session.Start_Time,
				"endTime":   nil,
				"duration":  nil,
				"notes":     session.Notes,
			}
			if session.End_Time != nil {
				record["endTime"] = *session.End_Time
			}
			if session.Duration != nil {
				record["duration"] = *session.Duration
			}
			if _, err := tx.Insert(sessionTable).Rows(record).Executor().ExecContext(ctx); err != nil {
				return fmt.Errorf("insert session %d: %w", session.Session_ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return storageErr("import sessions", err)
	}
	return nil
}
