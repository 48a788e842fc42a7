// Package bank holds the validation rules shared by every account operation.
package bank

import (
	"github.com/shopspring/decimal"
)

const (
	MinimumAge = 18
	minPIN     = 1000
	maxPIN     = 9999
)

// MaxDeposit is the largest amount accepted by a single deposit.
var MaxDeposit = decimal.NewFromInt(10000)

// ValidatePIN reports whether pin has exactly four digits.
func ValidatePIN(pin int) error {
	if pin < minPIN || pin > maxPIN {
		return ErrInvalidPIN
	}
	return nil
}

func ValidateAge(age int) error {
	if age < MinimumAge {
		return ErrUnderage
	}
	return nil
}

// ValidateDeposit accepts amounts in (0, MaxDeposit].
func ValidateDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(MaxDeposit) {
		return ErrDepositLimit
	}
	return nil
}

// ValidateWithdrawal accepts positive amounts no larger than balance.
func ValidateWithdrawal(balance, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(balance) {
		return ErrInsufficientFunds
	}
	return nil
}
