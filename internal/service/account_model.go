package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/simple-bank/internal/operator/actions"
	"github.com/carson-networks/simple-bank/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	Name          string
	Age           int
	Email         string
	PIN           int
	AccountNumber string
	Balance       decimal.Decimal
}

// AccountSummary is the public listing view of an account.
type AccountSummary struct {
	Name          string
	AccountNumber string
	Balance       decimal.Decimal
}

// NewAccount holds the fields supplied when opening an account.
type NewAccount struct {
	Name  string
	Age   int
	Email string
	PIN   int
}

// Credentials identify an account: its number plus the current PIN.
type Credentials struct {
	AccountNumber string
	PIN           int
}

// DetailsUpdate lists the fields to change. Nil fields are left as they are.
type DetailsUpdate struct {
	Name  *string
	Email *string
	PIN   *int
}

func accountFromStorage(a account.Account) *Account {
	return &Account{
		Name:          a.Name,
		Age:           a.Age,
		Email:         a.Email,
		PIN:           a.PIN,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
	}
}

func (c Credentials) toAction() actions.Credentials {
	return actions.Credentials{
		AccountNumber: c.AccountNumber,
		PIN:           c.PIN,
	}
}
