package services

import (
	"testing"
	"time"

	"finwise/internal/models"
	"finwise/internal/testutil"
)

func TestGetRecentNotifications(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewNotificationService(db).(*notificationService)
	svc.now = clock
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	for _, n := range []struct {
		userID  string
		message string
		at      time.Time
	}{
		{user.ID, "old", fixedNow.AddDate(0, 0, -31)},
		{user.ID, "older", fixedNow.AddDate(0, 0, -10)},
		{user.ID, "newest", fixedNow.Add(-time.Hour)},
		{other.ID, "not mine", fixedNow.Add(-time.Hour)},
	} {
		note := &models.Notification{UserID: n.userID, Message: n.message}
		note.CreatedAt = n.at
		if err := db.Create(note).Error; err != nil {
			t.Fatalf("failed to create notification: %v", err)
		}
	}

	notes, err := svc.GetRecent(user.ID)
	testutil.AssertNoError(t, err)

	if len(notes) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notes))
	}
	if notes[0].Message != "newest" || notes[1].Message != "older" {
		t.Errorf("unexpected order: %s, %s", notes[0].Message, notes[1].Message)
	}

	empty, err := svc.GetRecent(other.ID + "x")
	testutil.AssertNoError(t, err)
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", empty)
	}
}
