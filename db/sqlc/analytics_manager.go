package sqlc

import (
	"context"
	"log"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager counts what this server did, keyed by the server's
// own IP. A nil querier turns every call into a no-op so the server runs
// without a database.
type AnalyticsManager struct {
	queries  Querier
	serverIp pqtype.Inet
}

func NewAnalyticsManager(queries Querier, ipnet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries:  queries,
		serverIp: pqtype.Inet{IPNet: ipnet, Valid: true},
	}
}

func (a *AnalyticsManager) Enabled() bool {
	return a != nil && a.queries != nil
}

func (a *AnalyticsManager) ServerIp() pqtype.Inet {
	return a.serverIp
}

func (a *AnalyticsManager) IncrementSessionsOpenedCount(ctx context.Context) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementSessionsOpenedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) IncrementSnapsPerformedCount(ctx context.Context) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementSnapsPerformedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetSessionsOpenedCount(ctx context.Context) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return a.queries.GetSessionsOpenedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetSnapsPerformedCount(ctx context.Context) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return a.queries.GetSnapsPerformedCount(ctx, a.serverIp)
}

// Record runs fn with the querier timeout. Failures are logged and
// never interrupt the session.
func (a *AnalyticsManager) Record(fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		log.Println(err)
	}
}
