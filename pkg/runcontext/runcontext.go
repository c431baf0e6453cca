package runcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyRunID        KeyContext = "run_id"
	keyRunPath      KeyContext = "run_path"
	keyRunStartTime KeyContext = "run_start_time"
)

// RunMetadata holds metadata for one deck-generation run
type RunMetadata struct {
	RunID     uuid.UUID
	Path      string
	StartTime time.Time
}

// Begin initializes a run context with metadata and timeout
// Creates a derived context with a 2 minute ceiling per generation run
func Begin(parentCtx context.Context, path string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parentCtx, 2*time.Minute)

	ctx = context.WithValue(ctx, keyRunID, uuid.New())
	ctx = context.WithValue(ctx, keyRunPath, path)
	ctx = context.WithValue(ctx, keyRunStartTime, time.Now())

	return ctx, cancel
}

// RunGuarded executes the run function with panic recovery. A panic inside the
// function surfaces as an ordinary error so the caller can fall back.
func RunGuarded(ctx context.Context, runFunc func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered: %v", p)
		}
	}()

	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled before run execution: %w", ctx.Err())
	}

	return runFunc(ctx)
}

// GetRunID retrieves the run ID from context
func GetRunID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(keyRunID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// GetPath retrieves the generation path label from context
func GetPath(ctx context.Context) string {
	if p, ok := ctx.Value(keyRunPath).(string); ok {
		return p
	}
	return ""
}

// GetStartTime retrieves the run start time from context
func GetStartTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(keyRunStartTime).(time.Time); ok {
		return t
	}
	return time.Time{}
}

// Elapsed returns the wall-clock duration since the run started
func Elapsed(ctx context.Context) time.Duration {
	start := GetStartTime(ctx)
	if start.IsZero() {
		return 0
	}
	return time.Since(start)
}
