package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/simple-bank/internal/bank"
	"github.com/carson-networks/simple-bank/internal/storage"
)

type Deposit struct {
	Credentials
	Amount decimal.Decimal

	NewBalance decimal.Decimal
}

var _ IAction = (*Deposit)(nil)

func (d *Deposit) ActionName() string { return "deposit" }

func (d *Deposit) Perform(ctx context.Context, writer *storage.Writer) error {
	acc := writer.FindByCredentials(d.AccountNumber, d.PIN)
	if acc == nil {
		return bank.ErrAccountNotFound
	}
	if err := bank.ValidateDeposit(d.Amount); err != nil {
		return err
	}

	acc.Balance = acc.Balance.Add(d.Amount)
	d.NewBalance = acc.Balance
	return nil
}
