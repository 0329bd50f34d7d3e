package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestLedgerGuardsMutations(t *testing.T) {
	s := newConfiguredSystem(t)
	c := s.ledgerInvoker(t)

	acc := c.NewAccount(t)

	// Even the committee cannot move balances behind the token contract's
	// back.
	c.InvokeFail(t, "caller is not the token contract", "mintTokens", 100)
	c.InvokeFail(t, "caller is not the token contract", "transfer",
		s.tokenHash, acc.ScriptHash(), 100)
	c.InvokeFail(t, "caller is not the token contract", "debitAccount",
		acc.ScriptHash(), 100)
	c.InvokeFail(t, "caller is not the token contract", "creditAccount",
		s.tokenHash, 100)
}

func TestLedgerAccounting(t *testing.T) {
	s := newConfiguredSystem(t)
	c := s.ledgerInvoker(t)

	c.Invoke(t, testMinted, "totalTokens")
	c.Invoke(t, testMinted, "balanceOf", s.tokenHash)
	c.Invoke(t, 0, "totalInCirculation")
	c.Invoke(t, 0, "balanceOf", util.Uint160{1, 2, 3})

	// A purchase moves tokens out of the pool and into circulation.
	buyer := s.token.NewAccount(t)
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", buyer.ScriptHash())
	s.pay(t, buyer, 100)

	c.Invoke(t, testMinted, "totalTokens")
	c.Invoke(t, testMinted-10, "balanceOf", s.tokenHash)
	c.Invoke(t, 10, "balanceOf", buyer.ScriptHash())
	c.Invoke(t, 10, "totalInCirculation")
}

func TestLedgerConservation(t *testing.T) {
	s := newConfiguredSystem(t)
	c := s.ledgerInvoker(t)

	accounts := make([]util.Uint160, 3)
	for i := range accounts {
		buyer := s.token.NewAccount(t)
		accounts[i] = buyer.ScriptHash()
		s.token.Invoke(t, stackitem.Null{}, "addBuyer", accounts[i])
		s.pay(t, buyer, int64(100*(i+1)))
	}

	var sum int64
	for _, acc := range accounts {
		st, err := c.TestInvoke(t, "balanceOf", acc)
		require.NoError(t, err)
		sum += st.Pop().BigInt().Int64()
	}

	pool, err := c.TestInvoke(t, "balanceOf", s.tokenHash)
	require.NoError(t, err)

	total, err := c.TestInvoke(t, "totalTokens")
	require.NoError(t, err)
	require.Equal(t, total.Pop().BigInt().Int64(), pool.Pop().BigInt().Int64()+sum)
}
