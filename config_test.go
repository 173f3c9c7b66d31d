package creditcalc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskmanagement123/creditcalc"
)

func TestStartFillsDefaults(t *testing.T) {
	require.NoError(t, creditcalc.Start(creditcalc.Config{}))
	assert.True(t, creditcalc.RoundMoney(dec(1.005)).Equal(dec(1.01)),
		"default rounding stays the half-up money rule")
}

func TestStartCustomRoundStrategy(t *testing.T) {
	bank := func(d decimal.Decimal) decimal.Decimal { return d.RoundBank(2) }
	require.NoError(t, creditcalc.Start(creditcalc.Config{RoundStrategy: bank}))
	defer func() { require.NoError(t, creditcalc.Start(creditcalc.Config{})) }()

	assert.True(t, creditcalc.RoundMoney(dec(1.005)).Equal(dec(1.00)),
		"banker's rounding takes the even neighbor at the midpoint")
}
