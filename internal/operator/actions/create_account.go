package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/simple-bank/internal/bank"
	"github.com/carson-networks/simple-bank/internal/storage"
	"github.com/carson-networks/simple-bank/internal/storage/account"
)

const maxNumberAttempts = 100

type CreateAccount struct {
	Name           string
	Age            int
	Email          string
	PIN            int
	GenerateNumber bank.NumberGenerator

	// Created is set once Perform succeeds.
	Created account.Account
}

var _ IAction = (*CreateAccount)(nil)

func (c *CreateAccount) ActionName() string { return "createAccount" }

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := bank.ValidateAge(c.Age); err != nil {
		return err
	}
	if err := bank.ValidatePIN(c.PIN); err != nil {
		return err
	}

	generate := c.GenerateNumber
	if generate == nil {
		generate = bank.NewAccountNumber
	}

	number := ""
	for range maxNumberAttempts {
		candidate := generate()
		if !writer.Exists(candidate) {
			number = candidate
			break
		}
	}
	if number == "" {
		return bank.ErrAccountNumberExhausted
	}

	c.Created = account.Account{
		Name:          c.Name,
		Age:           c.Age,
		Email:         c.Email,
		PIN:           c.PIN,
		AccountNumber: number,
		Balance:       decimal.Zero,
	}
	writer.Insert(c.Created)
	return nil
}
