package backend

import (
	"context"
	"fmt"
	"time"
)

// AwaitQuiescent blocks until the load balancer has no pending background
// tasks. Every mutating call must be bracketed by this barrier: the provider
// rejects overlapping mutations while a task is still running.
//
// The poll interval is fixed; there is no backoff. Provider errors and
// context cancellation propagate immediately. With WaitTimeout zero the wait
// is unbounded.
func (u *UseCase) AwaitQuiescent(ctx context.Context, name string) error {
	interval := u.WaitInterval
	if interval <= 0 {
		interval = DefaultWaitInterval
	}

	var deadline time.Time
	if u.WaitTimeout > 0 {
		deadline = time.Now().Add(u.WaitTimeout)
	}

	for {
		tasks, err := u.Port.ListPendingTasks(ctx, name)
		if err != nil {
			return fmt.Errorf("list pending tasks for %s: %w", name, err)
		}
		if len(tasks) == 0 {
			return nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return fmt.Errorf("load balancer %s still has %d pending task(s) after %s", name, len(tasks), u.WaitTimeout)
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
