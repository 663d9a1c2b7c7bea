package health

import "context"

// SourcePinger checks QA source connectivity (nil for the file driver —
// the file is read once at startup and never touched again).
type SourcePinger interface {
	Ping(ctx context.Context) error
}
