package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Musician struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Genre     string              `json:"genre"`
	City      string              `json:"city"`
	Bio       string              `json:"bio"`
	Rate      decimal.NullDecimal `json:"rate"`
	CreatedAt time.Time           `json:"created_at"`
}

type CreateMusicianInput struct {
	Name  string
	Genre string
	City  string
	Bio   string
	Rate  decimal.NullDecimal
}
