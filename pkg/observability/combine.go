package observability

import (
	"context"

	"github.com/gcamargo0/turingo/pkg/domain"
)

// Combine fans a machine's events out to several hook sets. Callbacks run in
// argument order, synchronously on the stepping goroutine.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			for _, h := range hooks {
				if h.OnHalt != nil {
					h.OnHalt(ctx, e)
				}
			}
		},
	}
}
