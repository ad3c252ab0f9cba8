package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/Limpiar-Hub/portal-core/internal/poll"
)

// AnalyticsAPI is the slice of the backend client the watch needs.
type AnalyticsAPI interface {
	PropertyManagerAnalytics(ctx context.Context, managerID string) (models.AnalyticsSummary, error)
	BusinessAnalytics(ctx context.Context, businessID string) (models.AnalyticsSummary, error)
	PushToSheets(ctx context.Context, reportType string) error
}

const (
	AudiencePropertyManager = "property-manager"
	AudienceBusiness        = "business"
)

// Watch keeps the latest analytics snapshot for one dashboard audience
// fresh on a 30-second cycle, backing off while the backend misbehaves.
type Watch struct {
	api      AnalyticsAPI
	audience string
	subject  string
	runner   *poll.Runner

	mu        sync.Mutex
	latest    models.AnalyticsSummary
	fetchedAt time.Time
}

func NewWatch(analyticsAPI AnalyticsAPI, audience, subjectID string, interval time.Duration) *Watch {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	w := &Watch{api: analyticsAPI, audience: audience, subject: subjectID}
	w.runner = poll.NewRunner("analytics-"+audience, interval, w.refresh, poll.Options{})
	return w
}

func (w *Watch) Run(ctx context.Context) error {
	return w.runner.Run(ctx)
}

func (w *Watch) Pause()  { w.runner.Pause() }
func (w *Watch) Resume() { w.runner.Resume() }

func (w *Watch) refresh(ctx context.Context) error {
	var summary models.AnalyticsSummary
	var err error
	switch w.audience {
	case AudienceBusiness:
		summary, err = w.api.BusinessAnalytics(ctx, w.subject)
	default:
		summary, err = w.api.PropertyManagerAnalytics(ctx, w.subject)
	}
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.latest = summary
	w.fetchedAt = time.Now().UTC()
	w.mu.Unlock()
	return nil
}

// Latest returns the cached snapshot and when it was fetched; the zero
// time means no fetch has succeeded yet.
func (w *Watch) Latest() (models.AnalyticsSummary, time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.latest, w.fetchedAt
}

func (w *Watch) PushToSheets(ctx context.Context, reportType string) error {
	return w.api.PushToSheets(ctx, reportType)
}
