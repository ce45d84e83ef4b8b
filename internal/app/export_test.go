package app

import (
	"context"
	"time"
)

// SetClock replaces time source and sleep func used by the service.
func (s *Service) SetClock(now func() time.Time, sleep func(context.Context, time.Duration) error) {
	s.now = now
	s.sleep = sleep
}
