package account

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	Name          string
	Age           int
	Email         string
	PIN           int
	AccountNumber string
	Balance       decimal.Decimal
}

// Record is the on-disk form of an Account. The keys match data files
// written by earlier versions of the bank.
type Record struct {
	Name          string      `json:"name"`
	Age           int         `json:"age"`
	Email         string      `json:"email"`
	PIN           int         `json:"pin"`
	AccountNumber string      `json:"accountNo."`
	Balance       json.Number `json:"balance"`
}

// ToRecord converts an account into its persisted form.
func ToRecord(a Account) Record {
	return Record{
		Name:          a.Name,
		Age:           a.Age,
		Email:         a.Email,
		PIN:           a.PIN,
		AccountNumber: a.AccountNumber,
		Balance:       json.Number(a.Balance.String()),
	}
}

// FromRecord converts a persisted record back into an account.
// A missing balance reads as zero.
func FromRecord(r Record) (Account, error) {
	balance := decimal.Zero
	if r.Balance != "" {
		var err error
		balance, err = decimal.NewFromString(r.Balance.String())
		if err != nil {
			return Account{}, fmt.Errorf("account %q: invalid balance: %w", r.AccountNumber, err)
		}
	}

	return Account{
		Name:          r.Name,
		Age:           r.Age,
		Email:         r.Email,
		PIN:           r.PIN,
		AccountNumber: r.AccountNumber,
		Balance:       balance,
	}, nil
}

// Matches reports whether the account is identified by number and pin.
func (a *Account) Matches(accountNumber string, pin int) bool {
	return a.AccountNumber == accountNumber && a.PIN == pin
}
