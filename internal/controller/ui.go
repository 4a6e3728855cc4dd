// Package controller provides output adapters for displaying scaffolding results.
package controller

import (
	"context"

	m "testgen.dev/pkg/testgen/internal/model"
)

// UI defines how the generator reports progress.
// Implementations can use different output methods (plain text, JSON, etc).
// Methods may be called from several goroutines at once.
type UI interface {
	Start(ctx context.Context, runID string, sources int)
	// StartUnit prints what was found in a source, before its stubs.
	StartUnit(ctx context.Context, unit m.UnitResult)
	DisplayStub(ctx context.Context, stub m.TestStub)
	// FinishUnit prints what went wrong after the stubs of a source.
	FinishUnit(ctx context.Context, unit m.UnitResult)
	// DisplayUnit replays a finished unit, as read back from a report.
	DisplayUnit(ctx context.Context, unit m.UnitResult)
	DisplaySummary(ctx context.Context, run m.RunResult)
	DisplayPlan(ctx context.Context, plans []m.StubPlan)
	DisplayWatching(ctx context.Context, root m.Path)
}
