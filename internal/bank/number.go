package bank

import (
	"math/rand/v2"
)

const (
	letters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits   = "0123456789"
	specials = "!@#$%^&*"

	// AccountNumberLength is the length of every generated account number.
	AccountNumberLength = 7
)

// NumberGenerator produces candidate account numbers.
type NumberGenerator func() string

// NewAccountNumber returns 3 letters, 3 digits and 1 special character in
// random order.
func NewAccountNumber() string {
	chars := make([]byte, 0, AccountNumberLength)
	for range 3 {
		chars = append(chars, letters[rand.IntN(len(letters))])
	}
	for range 3 {
		chars = append(chars, digits[rand.IntN(len(digits))])
	}
	chars = append(chars, specials[rand.IntN(len(specials))])

	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})
	return string(chars)
}
