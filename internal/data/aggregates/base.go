package aggregates

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	"github.com/yungbote/restaurants-backend/internal/platform/dbctx"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return d
}

func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = normalizeOp(op, "aggregate.write")
	err := deps.Runner.InTx(ctx, fn)
	return observe(deps, op, start, MapError(op, err))
}

// executeRead runs fn outside a transaction; reads see committed state only.
func executeRead(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = normalizeOp(op, "aggregate.read")
	err := fn(dbctx.Context{Ctx: ctx})
	return observe(deps, op, start, MapError(op, err))
}

func observe(deps BaseDeps, op string, start time.Time, mapped error) error {
	status := "success"
	if mapped != nil {
		status = aggregateErrorStatus(mapped)
		if domainagg.IsCode(mapped, domainagg.CodeConflict) {
			deps.Hooks.IncConflict(op)
		}
		if domainagg.IsCode(mapped, domainagg.CodeRetryable) {
			deps.Hooks.IncRetry(op)
		}
		deps.Log.Warn("aggregate operation failed", append(dbLogFields(op, status), "error", mapped)...)
	}
	deps.Hooks.ObserveOperation(op, status, time.Since(start))
	return mapped
}

func normalizeOp(op, def string) string {
	op = strings.TrimSpace(op)
	if op == "" {
		return def
	}
	return op
}

func dbLogFields(op, status string) []interface{} {
	return []interface{}{"op", op, "status", status}
}

func aggregateErrorStatus(err error) string {
	if err == nil {
		return "success"
	}
	code := strings.TrimSpace(string(domainagg.CodeOf(err)))
	if code == "" {
		code = strings.TrimSpace(string(domainagg.CodeOf(MapError("aggregate.status", err))))
	}
	if code == "" {
		return "failure"
	}
	return code
}

// Observed runs fn for an adapter that manages its own atomicity (a store
// without SQL transactions) and reports the outcome like executeWrite does.
func Observed(ctx context.Context, deps BaseDeps, op string, fn func(ctx context.Context) error) error {
	start := time.Now()
	if deps.Hooks == nil {
		deps.Hooks = noopHooks{}
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	op = normalizeOp(op, "aggregate.op")
	return observe(deps, op, start, MapError(op, fn(ctx)))
}
