package middleware

import (
	"context"
	"time"

	"github.com/patternkit/lattice/pkg/common"
	"github.com/patternkit/lattice/pkg/logger"
	"github.com/patternkit/lattice/pkg/store"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// snapshotKey is the single cache key for the catalog snapshot; the LRU
// only exists for its TTL semantics.
const snapshotKey = "catalog"

// App carries the shared, read-only service dependencies: the database
// pool, the catalog read path and a short-lived snapshot cache.
type App struct {
	DBConn    *pgxpool.Pool
	Catalog   store.CatalogStorage
	snapshots *expirable.LRU[string, *common.Snapshot]
}

// NewApp wires the shared dependencies. Snapshots are cached for ttl so a
// burst of requests against an unchanged catalog reads storage once; every
// individual request still operates on exactly one immutable snapshot.
func NewApp(conn *pgxpool.Pool, catalog store.CatalogStorage, ttl time.Duration) *App {
	return &App{
		DBConn:    conn,
		Catalog:   catalog,
		snapshots: expirable.NewLRU[string, *common.Snapshot](1, nil, ttl),
	}
}

// Snapshot returns the current catalog snapshot, loading it from storage
// when the cache is empty or expired.
func (a *App) Snapshot(ctx context.Context) (*common.Snapshot, error) {
	if snap, ok := a.snapshots.Get(snapshotKey); ok {
		return snap, nil
	}

	snap, err := a.Catalog.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	a.snapshots.Add(snapshotKey, snap)
	return snap, nil
}

// AppContext decorates the echo context with the shared dependencies and a
// per-request correlation id.
type AppContext struct {
	echo.Context
	App       *App
	RequestID string
}

// AppContextMiddleware wraps every request in an AppContext and assigns it
// a nanoid correlation id, echoed back in the X-Request-ID header.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID, err := gonanoid.New()
			if err != nil {
				logger.Warn("Failed to generate request id", "err", err)
				requestID = ""
			}
			if requestID != "" {
				c.Response().Header().Set("X-Request-ID", requestID)
			}

			return next(&AppContext{
				Context:   c,
				App:       app,
				RequestID: requestID,
			})
		}
	}
}
