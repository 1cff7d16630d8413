package fees_test

import (
	"testing"

	"github.com/Upkraft/Upkraft-Backend/services/fees"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewPolicyBounds(t *testing.T) {
	_, err := fees.NewPolicy(decimal.NewFromFloat(-0.01))
	require.Error(t, err)

	_, err = fees.NewPolicy(decimal.NewFromInt(1))
	require.Error(t, err)

	policy, err := fees.NewPolicy(decimal.Zero)
	require.NoError(t, err)
	fee, net := policy.Split(decimal.RequireFromString("250.00"))
	require.True(t, fee.IsZero())
	require.True(t, net.Equal(decimal.RequireFromString("250.00")))
}

func TestNewPolicyFromConfig(t *testing.T) {
	policy, err := fees.NewPolicyFromConfig("")
	require.NoError(t, err)
	require.True(t, policy.Rate().Equal(fees.DefaultRate))

	policy, err = fees.NewPolicyFromConfig("0.15")
	require.NoError(t, err)
	require.True(t, policy.Rate().Equal(decimal.RequireFromString("0.15")))

	_, err = fees.NewPolicyFromConfig("thirty")
	require.Error(t, err)

	_, err = fees.NewPolicyFromConfig("1.5")
	require.Error(t, err)
}

func TestSplitAddsBackToGross(t *testing.T) {
	policy, err := fees.NewPolicy(decimal.NewFromFloat(0.30))
	require.NoError(t, err)

	cases := []struct {
		gross string
		fee   string
		net   string
	}{
		{"1000.00", "300.00", "700.00"},
		{"400.00", "120.00", "280.00"},
		{"0.01", "0.00", "0.01"},
		{"0.05", "0.02", "0.03"},
		{"99.99", "30.00", "69.99"},
	}
	for _, tc := range cases {
		gross := decimal.RequireFromString(tc.gross)
		fee, net := policy.Split(gross)
		require.True(t, fee.Equal(decimal.RequireFromString(tc.fee)), "fee for %s: got %s", tc.gross, fee)
		require.True(t, net.Equal(decimal.RequireFromString(tc.net)), "net for %s: got %s", tc.gross, net)
		require.True(t, fee.Add(net).Equal(gross))
	}
}

func TestRatePercent(t *testing.T) {
	policy, err := fees.NewPolicy(decimal.NewFromFloat(0.30))
	require.NoError(t, err)
	require.True(t, policy.RatePercent().Equal(decimal.NewFromInt(30)))
}
