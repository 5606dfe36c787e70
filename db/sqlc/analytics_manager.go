package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementUserWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementUserWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementComputerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementComputerWinsCount(ctx, serverIpNet)
}

// GetAnalytics returns zero counters for a host that never played.
func (a *AnalyticsManager) GetAnalytics(ctx context.Context, serverIpNet pqtype.Inet) (GetAnalyticsRow, error) {
	row, err := a.queries.GetAnalytics(ctx, serverIpNet)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAnalyticsRow{}, nil
	}
	return row, err
}

// GameEventHandler counts started games and wins for this host. Storage
// failures are logged and never interrupt the game.
func (a *AnalyticsManager) GameEventHandler(serverIpNet net.IPNet) mb.EventHandler {
	inet := pqtype.Inet{IPNet: serverIpNet, Valid: true}

	return func(ev mb.Event) {
		var record func(context.Context, pqtype.Inet) error

		switch ev.Code {
		case mb.EventGameStarted:
			record = a.IncrementGamesCreatedCount
		case mb.EventGameOver:
			record = a.IncrementComputerWinsCount
			if ev.Status == mb.MatchStatusUserWon {
				record = a.IncrementUserWinsCount
			}
		default:
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
		defer cancel()
		if err := record(ctx, inet); err != nil {
			// for now not killing the game for it
			log.Printf("analytics [%s] %s: %v\n", ev.GameUuid, ev.Code, err)
		}
	}
}
