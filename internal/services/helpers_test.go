package services

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"finwise/internal/events"
)

// fixedNow is a Thursday in mid-October.
var fixedNow = time.Date(2026, time.October, 15, 12, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

func newFixedAnalytics(db *gorm.DB) *analyticsService {
	svc := NewAnalyticsService(db, NewExpenseGrouper(db)).(*analyticsService)
	svc.now = clock
	return svc
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

var _ events.Publisher = (*recordingPublisher)(nil)
