package actions

import (
	"context"

	"github.com/carson-networks/simple-bank/internal/storage"
)

// IAction is a unit of work run by the operator inside a storage Writer.
// Returning an error rolls the Writer back.
type IAction interface {
	ActionName() string
	Perform(ctx context.Context, writer *storage.Writer) error
}

// Credentials identify the account an action applies to.
type Credentials struct {
	AccountNumber string
	PIN           int
}
