package entity

import "time"

// Seller representa un vendedor de mostrador. Las ventas siempre referencian
// al vendedor que las registró.
type Seller struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
