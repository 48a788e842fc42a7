package actions

import (
	"context"

	"github.com/carson-networks/simple-bank/internal/bank"
	"github.com/carson-networks/simple-bank/internal/storage"
	"github.com/carson-networks/simple-bank/internal/storage/account"
)

// UpdateDetails changes the optional fields that are non-nil. Age, account
// number and balance cannot be changed.
type UpdateDetails struct {
	Credentials
	NewName  *string
	NewEmail *string
	NewPIN   *int

	Updated account.Account
}

var _ IAction = (*UpdateDetails)(nil)

func (u *UpdateDetails) ActionName() string { return "updateDetails" }

func (u *UpdateDetails) Perform(ctx context.Context, writer *storage.Writer) error {
	acc := writer.FindByCredentials(u.AccountNumber, u.PIN)
	if acc == nil {
		return bank.ErrAccountNotFound
	}
	if u.NewPIN != nil {
		if err := bank.ValidatePIN(*u.NewPIN); err != nil {
			return err
		}
	}

	if u.NewName != nil {
		acc.Name = *u.NewName
	}
	if u.NewEmail != nil {
		acc.Email = *u.NewEmail
	}
	if u.NewPIN != nil {
		acc.PIN = *u.NewPIN
	}
	u.Updated = *acc
	return nil
}
