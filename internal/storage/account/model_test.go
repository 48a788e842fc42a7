package account

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecord_MissingBalanceIsZero(t *testing.T) {
	a, err := FromRecord(Record{Name: "A", AccountNumber: "ab1#2c3", PIN: 1234})

	require.NoError(t, err)
	assert.True(t, a.Balance.IsZero())
}

func TestFromRecord_InvalidBalance(t *testing.T) {
	_, err := FromRecord(Record{AccountNumber: "ab1#2c3", Balance: json.Number("1e")})

	assert.Error(t, err)
}

func TestToRecord_BalanceIsNumber(t *testing.T) {
	r := ToRecord(Account{AccountNumber: "ab1#2c3", Balance: decimal.RequireFromString("10.50")})

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"balance":10.5`)
}

func TestMatches(t *testing.T) {
	a := Account{AccountNumber: "ab1#2c3", PIN: 1234}

	assert.True(t, a.Matches("ab1#2c3", 1234))
	assert.False(t, a.Matches("ab1#2c3", 1235))
	assert.False(t, a.Matches("AB1#2c3", 1234))
}
