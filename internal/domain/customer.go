package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        uint
	Name      string
	BirthDate time.Time
	Sex       string
	Income    decimal.Decimal
	CreatedAt time.Time
}
