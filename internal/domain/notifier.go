package domain

import "context"

// Notifier delivers proactive messages outside the current interaction.
// Implementations talk to the chat transport; callers treat every send as
// best-effort and log failures instead of propagating them.
type Notifier interface {
	SendText(ctx context.Context, recipient int64, text string) error
	// SendModerationCard sends the full profile to an admin with the
	// approve/reject controls attached.
	SendModerationCard(ctx context.Context, admin int64, trainer *Trainer) error
}
