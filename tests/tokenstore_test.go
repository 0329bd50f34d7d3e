package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreGuardsMutations(t *testing.T) {
	s := newConfiguredSystem(t)
	c := s.storeInvoker(t)

	acc := s.token.NewAccount(t)
	accHash := acc.ScriptHash()

	c.InvokeFail(t, "caller is not the token contract", "setConfiguration",
		"X", "X", 1, 1, 1, 0, accHash)
	c.InvokeFail(t, "caller is not the token contract", "setContributionMinimum", 1)
	c.InvokeFail(t, "caller is not the token contract", "setAllowance",
		accHash, s.tokenHash, 1)
	c.InvokeFail(t, "caller is not the token contract", "setVestingSchedule",
		accHash, 100, 0, 10, 100, true)
	c.InvokeFail(t, "caller is not the token contract", "releaseVestedTokens", accHash)
	c.InvokeFail(t, "caller is not the token contract", "revokeVesting", accHash)
}

func TestTokenStoreConfiguration(t *testing.T) {
	s := newConfiguredSystem(t)
	c := s.storeInvoker(t)

	c.Invoke(t, "Meridian", "tokenName")
	c.Invoke(t, "MRD", "tokenSymbol")
	c.Invoke(t, testBuyPrice, "buyPrice")
	c.Invoke(t, testCirculationCap, "circulationCap")
	c.Invoke(t, testBalanceLimit, "balanceLimit")
	c.Invoke(t, 0, "contributionMinimum")

	st, err := c.TestInvoke(t, "foundation")
	require.NoError(t, err)
	require.Equal(t, s.foundation.ScriptHash().BytesBE(), st.Pop().Bytes())

	s.token.Invoke(t, stackitem.Null{}, "setContributionMinimum", 50)
	c.Invoke(t, 50, "contributionMinimum")
}

func TestTokenStoreVestingEnumeration(t *testing.T) {
	s := newConfiguredSystem(t)
	c := s.storeInvoker(t)

	c.Invoke(t, 0, "vestingCount")
	c.Invoke(t, 0, "totalUnvestedAndUnreleased")
	c.InvokeFail(t, "index out of range", "vestingBeneficiary", 0)

	// A missing schedule reads back as all zeroes.
	st, err := c.TestInvoke(t, "getVestingSchedule", s.token.NewAccount(t).ScriptHash())
	require.NoError(t, err)
	fields := st.Pop().Value().([]stackitem.Item)
	require.Len(t, fields, 7)
	amount, err := fields[3].TryInteger()
	require.NoError(t, err)
	require.Equal(t, int64(0), amount.Int64())

	var beneficiaries []neotest.Signer
	for i := 0; i < 3; i++ {
		acc := s.token.NewAccount(t)
		beneficiaries = append(beneficiaries, acc)
		s.token.Invoke(t, stackitem.Null{}, "grantVestedTokens",
			acc.ScriptHash(), 100, 0, 10, 100, true)
	}

	c.Invoke(t, 3, "vestingCount")
	c.Invoke(t, 300, "totalUnvestedAndUnreleased")
	for i, acc := range beneficiaries {
		st, err := c.TestInvoke(t, "vestingBeneficiary", i)
		require.NoError(t, err)
		require.Equal(t, acc.ScriptHash().BytesBE(), st.Pop().Bytes())
	}

	st, err = c.TestInvoke(t, "vestingBeneficiaries")
	require.NoError(t, err)
	items := iteratorToArray(st.Pop().Value().(*storage.Iterator))
	require.Len(t, items, 3)
	require.Equal(t, beneficiaries[0].ScriptHash().BytesBE(), items[0].Value().([]byte))
}

func TestTokenStoreVestingSchedule(t *testing.T) {
	s := newConfiguredSystem(t)
	c := s.storeInvoker(t)

	acc := s.token.NewAccount(t)
	start := s.nowSec(t) + 100

	s.token.Invoke(t, stackitem.Null{}, "grantVestedTokens",
		acc.ScriptHash(), 1000, start, 100, 1000, false)

	st, err := c.TestInvoke(t, "getVestingSchedule", acc.ScriptHash())
	require.NoError(t, err)
	fields := st.Pop().Value().([]stackitem.Item)
	require.Len(t, fields, 7)
	require.Equal(t, big.NewInt(start), mustInteger(t, fields[0]))       // StartDate
	require.Equal(t, big.NewInt(start+100), mustInteger(t, fields[1]))   // CliffDate
	require.Equal(t, big.NewInt(1000), mustInteger(t, fields[2]))        // DurationSec
	require.Equal(t, big.NewInt(1000), mustInteger(t, fields[3]))        // FullyVestedAmount
	require.Equal(t, big.NewInt(0), mustInteger(t, fields[4]))           // ReleasedAmount
	require.Equal(t, big.NewInt(0), mustInteger(t, fields[5]))           // RevokeDate
	revocable, err := fields[6].TryBool()
	require.NoError(t, err)
	require.False(t, revocable)

	c.Invoke(t, 0, "vestedAmount", acc.ScriptHash())
	c.Invoke(t, 0, "releasableAmount", acc.ScriptHash())
}

func mustInteger(t *testing.T, item stackitem.Item) *big.Int {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v
}
