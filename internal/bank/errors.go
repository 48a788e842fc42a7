package bank

import "errors"

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrUnderage               = errors.New("account holder must be at least 18")
	ErrInvalidPIN             = errors.New("pin must be exactly 4 digits")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrDepositLimit           = errors.New("deposit exceeds limit")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrAccountNumberExhausted = errors.New("could not generate a unique account number")
)

var rejections = []error{
	ErrAccountNotFound,
	ErrUnderage,
	ErrInvalidPIN,
	ErrInvalidAmount,
	ErrDepositLimit,
	ErrInsufficientFunds,
}

// IsRejection reports whether err is a validation or lookup failure caused by
// the caller's input, as opposed to an internal fault.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
