package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/PrayerVault/models"
)

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// CreateRequest inserts a new intercession request and returns the full
// created record. Status defaults to active, the request date to now; both
// audit timestamps are stamped to now.
func (s *Store) CreateRequest(ctx context.Context, create models.RequestCreate) (*models.IntercessionRequest, error) {
	if strings.TrimSpace(create.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	status := create.Status
	if status == "" {
		status = models.RequestStatusActive
	}
	requestDate := create.Request_Date
	if requestDate == "" {
		requestDate = nowISO()
	}
	now := nowISO()

	record := goqu.Record{
		"title":         create.Title,
		"description":   create.Description,
		"request_date":  requestDate,
		"status":        status,
		"answered_date": nil,
		"answer_notes":  nil,
		"created_at":    now,
		"updated_at":    now,
	}
	if create.Answered_Date != nil {
		record["answered_date"] = *create.Answered_Date
	}
	if create.Answer_Notes != nil {
		record["answer_notes"] = *create.Answer_Notes
	}

	res, err := s.db.Insert(requestTable).Rows(record).Executor().ExecContext(ctx)
	if err != nil {
		return nil, storageErr("insert request", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storageErr("read new request id", err)
	}

	return &models.IntercessionRequest{
		Request_ID:    id,
		Title:         create.Title,
		Description:   create.Description,
		Request_Date:  requestDate,
		Status:        status,
		Answered_Date: create.Answered_Date,
		Answer_Notes:  create.Answer_Notes,
		Created_At:    now,
		Updated_At:    now,
	}, nil
}

// UpdateRequest applies the non-nil fields of the patch and refreshes
// updated_at. An all-nil patch is a no-op. A missing id fails with
// ErrNotFound.
func (s *Store) UpdateRequest(ctx context.Context, id int64, patch models.RequestUpdate) error {
	record := goqu.Record{}
	if patch.Title != nil {
		record["title"] = *patch.Title
	}
	if patch.Description != nil {
		record["description"] = *patch.Description
	}
	if patch.Request_Date != nil {
		record["request_date"] = *patch.Request_Date
	}
	if patch.Status != nil {
		record["status"] = *patch.Status
	}
	if patch.Answered_Date != nil {
		record["answered_date"] = *patch.Answered_Date
	}
	if patch.Answer_Notes != nil {
		record["answer_notes"] = *patch.Answer_Notes
	}

	if len(record) == 0 {
		return nil
	}
	record["updated_at"] = nowISO()

	res, err := s.db.Update(requestTable).
		Set(record).
		Where(goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return storageErr("update request", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("update request", err)
	}
	if rows == 0 {
		return notFoundErr("request", id)
	}
	return nil
}

// ListRequests returns requests newest request date first, filtered to one
// status when status is non-empty.
func (s *Store) ListRequests(ctx context.Context, status string) ([]models.IntercessionRequest, error) {
	query := s.db.From(requestTable).Order(goqu.C("request_date").Desc())
	if status != "" {
		query = query.Where(goqu.C("status").Eq(status))
	}

	var requests []models.IntercessionRequest
	if err := query.ScanStructsContext(ctx, &requests); err != nil {
		return nil, storageErr("list requests", err)
	}
	return requests, nil
}

// DeleteRequest removes the request. Deleting a nonexistent id fails with
// ErrNotFound, matching DeleteSession.
func (s *Store) DeleteRequest(ctx context.Context, id int64) error {
	res, err := s.db.Delete(requestTable).
		Where(goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return storageErr("delete request", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete request", err)
	}
	if rows == 0 {
		return notFoundErr("request", id)
	}
	return nil
}
