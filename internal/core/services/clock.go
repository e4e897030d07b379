package services

import (
	"time"

	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
)

// realClock is the production Clock implementation.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewRealClock returns a Clock backed by the system time.
func NewRealClock() portssvc.Clock { return realClock{} }
