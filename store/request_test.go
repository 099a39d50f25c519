package store

import (
	"context"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrayerVault/models"
)

func TestCreateRequestDefaults(t *testing.T) {
	s := newTestStore(t)

	before := time.Now().UTC().Add(-time.Second)
	req, err := s.CreateRequest(context.Background(), models.RequestCreate{
		Title:       "For the family",
		Description: "health",
	})
	require.NoError(t, err)
	require.NotNil(t, req)

	assert.Equal(t, int64(1), req.Request_ID)
	assert.Equal(t, models.RequestStatusActive, req.Status)
	assert.Nil(t, req.Answered_Date)
	assert.Nil(t, req.Answer_Notes)

	requestDate, err := time.Parse(time.RFC3339, req.Request_Date)
	require.NoError(t, err)
	assert.True(t, requestDate.After(before))
	assert.Equal(t, req.Created_At, req.Updated_At)
}

func TestCreateRequestEmptyTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateRequest(context.Background(), models.RequestCreate{Description: "no title"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRequestPartialFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	req, err := s.CreateRequest(ctx, models.RequestCreate{
		Title:       "For the family",
		Description: "health",
	})
	require.NoError(t, err)

	answered := models.RequestStatusAnswered
	answeredDate := time.Now().UTC().Format(time.RFC3339)
	answerNotes := "answered during the retreat"
	err = s.UpdateRequest(ctx, req.Request_ID, models.RequestUpdate{
		Status:        &answered,
		Answered_Date: &answeredDate,
		Answer_Notes:  &answerNotes,
	})
	require.NoError(t, err)

	requests, err := s.ListRequests(ctx, "")
	require.NoError(t, err)
	require.Len(t, requests, 1)

	got := requests[0]
	assert.Equal(t, "For the family", got.Title) // untouched
	assert.Equal(t, "health", got.Description)   // untouched
	assert.Equal(t, models.RequestStatusAnswered, got.Status)
	require.NotNil(t, got.Answered_Date)
	assert.Equal(t, answeredDate, *got.Answered_Date)
	require.NotNil(t, got.Answer_Notes)
	assert.Equal(t, answerNotes, *got.Answer_Notes)
}

func TestUpdateRequestRefreshesUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	req, err := s.CreateRequest(ctx, models.RequestCreate{Title: "For the city"})
	require.NoError(t, err)

	// force a different second so the refreshed stamp is observable
	past := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	_, err = s.db.Update(requestTable).
		Set(goqu.Record{"updated_at": past, "created_at": past}).
		Where(goqu.C("id").Eq(req.Request_ID)).
		Executor().ExecContext(ctx)
	require.NoError(t, err)

	title := "For the whole city"
	require.NoError(t, s.UpdateRequest(ctx, req.Request_ID, models.RequestUpdate{Title: &title}))

	requests, err := s.ListRequests(ctx, "")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, past, requests[0].Created_At)
	assert.NotEqual(t, past, requests[0].Updated_At)
}

func TestUpdateRequestEmptyPatchIsNoOp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	req, err := s.CreateRequest(ctx, models.RequestCreate{Title: "For peace"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateRequest(ctx, req.Request_ID, models.RequestUpdate{}))

	requests, err := s.ListRequests(ctx, "")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, req.Updated_At, requests[0].Updated_At)
}

func TestUpdateRequestNotFound(t *testing.T) {
	s := newTestStore(t)

	title := "nobody"
	err := s.UpdateRequest(context.Background(), 404, models.RequestUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRequestsOrderAndFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	mk := func(title, status string, offset time.Duration) {
		_, err := s.CreateRequest(ctx, models.RequestCreate{
			Title:        title,
			Status:       status,
			Request_Date: base.Add(offset).Format(time.RFC3339),
		})
		require.NoError(t, err)
	}
	mk("oldest", models.RequestStatusActive, 0)
	mk("middle", models.RequestStatusAnswered, time.Hour)
	mk("newest", models.RequestStatusActive, 2*time.Hour)

	all, err := s.ListRequests(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Title)
	assert.Equal(t, "middle", all[1].Title)
	assert.Equal(t, "oldest", all[2].Title)

	active, err := s.ListRequests(ctx, models.RequestStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "newest", active[0].Title)
	assert.Equal(t, "oldest", active[1].Title)
}

func TestDeleteRequest(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	req, err := s.CreateRequest(ctx, models.RequestCreate{Title: "done"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteRequest(ctx, req.Request_ID))

	requests, err := s.ListRequests(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, requests)

	assert.ErrorIs(t, s.DeleteRequest(ctx, req.Request_ID), ErrNotFound)
}
