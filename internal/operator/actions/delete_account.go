package actions

import (
	"context"

	"github.com/carson-networks/simple-bank/internal/bank"
	"github.com/carson-networks/simple-bank/internal/storage"
)

type DeleteAccount struct {
	Credentials
}

var _ IAction = (*DeleteAccount)(nil)

func (d *DeleteAccount) ActionName() string { return "deleteAccount" }

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if !writer.Remove(d.AccountNumber, d.PIN) {
		return bank.ErrAccountNotFound
	}
	return nil
}
