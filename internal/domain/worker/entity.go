package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

type Worker struct {
	ID        string
	FullName  string
	Role      Role
	DayRate   decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
