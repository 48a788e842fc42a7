package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/simple-bank/internal/bank"
	"github.com/carson-networks/simple-bank/internal/storage"
)

type Withdraw struct {
	Credentials
	Amount decimal.Decimal

	NewBalance decimal.Decimal
}

var _ IAction = (*Withdraw)(nil)

func (w *Withdraw) ActionName() string { return "withdraw" }

func (w *Withdraw) Perform(ctx context.Context, writer *storage.Writer) error {
	acc := writer.FindByCredentials(w.AccountNumber, w.PIN)
	if acc == nil {
		return bank.ErrAccountNotFound
	}
	if err := bank.ValidateWithdrawal(acc.Balance, w.Amount); err != nil {
		return err
	}

	acc.Balance = acc.Balance.Sub(w.Amount)
	w.NewBalance = acc.Balance
	return nil
}
