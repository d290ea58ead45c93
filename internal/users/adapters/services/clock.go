package services

import (
	"time"

	svc "plazausers/internal/users/ports/services"
)

// SystemClock возвращает текущую дату в заданной временной зоне.
type SystemClock struct {
	loc *time.Location
	now func() time.Time
}

func NewSystemClock(loc *time.Location) svc.Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc, now: time.Now}
}

// Today возвращает полночь текущего дня.
func (c *SystemClock) Today() time.Time {
	y, m, d := c.now().In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}
