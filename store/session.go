package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"

	"github.com/PrayerVault/models"
)

// CreateSession inserts a new session with no end time and no duration and
// returns its id. The title must be non-empty.
func (s *Store) CreateSession(ctx context.Context, create models.SessionCreate) (int64, error) {
	if strings.TrimSpace(create.Title) == "" {
		return 0, fmt.Errorf("%w: title is required", ErrValidation)
	}

	record := goqu.Record{
		"title":     create.Title,
		"type":      create.Session_Type,
		"startTime": create.Start_Time,
		"endTime":   nil,
		"duration":  nil,
		"notes":     create.Notes,
	}

	res, err := s.db.Insert(sessionTable).Rows(record).Executor().ExecContext(ctx)
	if err != nil {
		return 0, storageErr("insert session", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("read new session id", err)
	}
	return id, nil
}

// EndSession stamps the end time and derives duration = endTime - startTime
// in a single UPDATE. Ending an already-ended session overwrites both
// fields.
func (s *Store) EndSession(ctx context.Context, id int64, endTime int64) error {
	update := s.db.Update(sessionTable).
		Set(goqu.Record{
			"endTime":  endTime,
			"duration": goqu.L("? - startTime", endTime),
		}).
		Where(goqu.C("id").Eq(id))

	res, err := update.Executor().ExecContext(ctx)
	if err != nil {
		return storageErr("end session", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("end session", err)
	}
	if rows == 0 {
		return notFoundErr("session", id)
	}
	return nil
}

// UpdateSession replaces every mutable field of the session by id. Duration
// is always re-derived from the stored times: endTime - startTime when an
// end time is set, NULL otherwise. A caller-supplied Duration is ignored.
func (s *Store) UpdateSession(ctx context.Context, session models.Session) error {
	record := goqu.Record{
		"title":     session.Title,
		"type":      session.Session_Type,
		"startTime": session.Start_Time,
		"endTime":   nil,
		"duration":  nil,
		"notes":     session.Notes,
	}
	if session.End_Time != nil {
		record["endTime"] = *session.End_Time
		record["duration"] = *session.End_Time - session.Start_Time
	}

	res, err := s.db.Update(sessionTable).
		Set(record).
		Where(goqu.C("id").Eq(session.Session_ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return storageErr("update session", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("update session", err)
	}
	if rows == 0 {
		return notFoundErr("session", session.Session_ID)
	}
	return nil
}

// DeleteSession removes the session. Deleting a nonexistent id fails with
// ErrNotFound.
func (s *Store) DeleteSession(ctx context.Context, id int64) error {
	res, err := s.db.Delete(sessionTable).
		Where(goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return storageErr("delete session", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete session", err)
	}
	if rows == 0 {
		return notFoundErr("session", id)
	}
	return nil
}

// GetSession returns the session by id, or nil when it does not exist.
func (s *Store) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	var session models.Session
	found, err := s.db.From(sessionTable).
		Where(goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &session)
	if err != nil {
		return nil, storageErr("fetch session", err)
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

// ListSessions returns every session, newest start time first.
func (s *Store) ListSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.From(sessionTable).
		Order(goqu.C("startTime").Desc()).
		ScanStructsContext(ctx, &sessions)
	if err != nil {
		return nil, storageErr("list sessions", err)
	}
	return sessions, nil
}

// GetActiveSession returns the most recently started session that has no
// end time yet, or nil when none is running.
func (s *Store) GetActiveSession(ctx context.Context) (*models.Session, error) {
	var session models.Session
	found, err := s.db.From(sessionTable).
		Where(goqu.C("endTime").IsNull()).
		Order(goqu.C("startTime").Desc()).
		Limit(1).
		ScanStructContext(ctx, &session)
	if err != nil {
		return nil, storageErr("fetch active session", err)
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}
