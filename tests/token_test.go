package tests

import (
	"testing"

	"github.com/meridian-token/meridian-contract/common"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestTokenViews(t *testing.T) {
	s := newConfiguredSystem(t)

	s.token.Invoke(t, "Meridian", "name")
	s.token.Invoke(t, "MRD", "symbol")
	s.token.Invoke(t, 0, "decimals")
	s.token.Invoke(t, testMinted, "totalSupply")
	s.token.Invoke(t, 0, "totalInCirculation")
	s.token.Invoke(t, testMinted, "tokensAvailable")
	s.token.Invoke(t, stackitem.Null{}, "supersededBy")
	s.token.Invoke(t, false, "isFrozen")
	s.token.Invoke(t, false, "transfersAllowed")

	// The contract's own balance is the sellable pool.
	require.Equal(t, int64(testMinted), s.balanceOf(t, s.tokenHash))
}

func TestTokenPurchase(t *testing.T) {
	s := newConfiguredSystem(t)

	buyer := s.token.NewAccount(t)
	bh := buyer.ScriptHash()

	// Not approved yet.
	s.payFail(t, buyer, 100)

	s.token.Invoke(t, stackitem.Null{}, "addBuyer", bh)

	// The sub-unit remainder of the payment is kept by the contract.
	s.pay(t, buyer, 105)
	require.Equal(t, int64(10), s.balanceOf(t, bh))
	require.Equal(t, int64(10), s.intCall(t, "totalInCirculation"))
	require.Equal(t, int64(testMinted-10), s.intCall(t, "tokensAvailable"))

	s.pay(t, buyer, 40)
	require.Equal(t, int64(14), s.balanceOf(t, bh))

	// Below the price of a single token.
	s.payFail(t, buyer, testBuyPrice-1)

	s.token.Invoke(t, stackitem.Null{}, "removeBuyer", bh)
	s.payFail(t, buyer, 100)
}

func TestTokenPurchaseUnconfigured(t *testing.T) {
	s := newTokenSystem(t)

	s.token.Invoke(t, stackitem.Null{}, "mintTokens", testMinted)

	buyer := s.token.NewAccount(t)
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", buyer.ScriptHash())

	s.payFail(t, buyer, 100)
}

func TestTokenContributionMinimum(t *testing.T) {
	s := newConfiguredSystem(t)

	buyer := s.token.NewAccount(t)
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", buyer.ScriptHash())
	s.token.Invoke(t, stackitem.Null{}, "setContributionMinimum", 50)

	// 10 tokens would leave the balance below the minimum.
	s.payFail(t, buyer, 100)

	s.pay(t, buyer, 500)
	require.Equal(t, int64(50), s.balanceOf(t, buyer.ScriptHash()))

	// Top-ups of an already conforming balance can be small.
	s.pay(t, buyer, 100)
	require.Equal(t, int64(60), s.balanceOf(t, buyer.ScriptHash()))
}

func TestTokenBalanceLimit(t *testing.T) {
	s := newConfiguredSystem(t)

	buyer := s.token.NewAccount(t)
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", buyer.ScriptHash())

	s.payFail(t, buyer, (testBalanceLimit+1)*testBuyPrice)

	s.pay(t, buyer, testBalanceLimit*testBuyPrice)
	require.Equal(t, int64(testBalanceLimit), s.balanceOf(t, buyer.ScriptHash()))

	// Even one more token is over the limit now.
	s.payFail(t, buyer, testBuyPrice)
}

func TestTokenCustomBuyer(t *testing.T) {
	s := newConfiguredSystem(t)

	buyer := s.token.NewAccount(t)
	bh := buyer.ScriptHash()

	// SetCustomBuyer approves the account, no separate AddBuyer needed.
	s.token.Invoke(t, stackitem.Null{}, "setCustomBuyer", bh, 5)
	s.token.Invoke(t, true, "isBuyer", bh)
	s.token.Invoke(t, 5, "customLimit", bh)
	s.token.Invoke(t, 1, "totalCustomBuyers")

	st, err := s.token.TestInvoke(t, "customBuyerAtIndex", 0)
	require.NoError(t, err)
	require.Equal(t, bh.BytesBE(), st.Pop().Bytes())

	s.payFail(t, buyer, 6*testBuyPrice)

	s.pay(t, buyer, 5*testBuyPrice)
	require.Equal(t, int64(5), s.balanceOf(t, bh))

	s.payFail(t, buyer, testBuyPrice)

	// Dropping the override reverts the account to the default limit.
	s.token.Invoke(t, stackitem.Null{}, "setCustomBuyer", bh, 0)
	s.token.Invoke(t, 0, "customLimit", bh)
	s.pay(t, buyer, testBuyPrice)
	require.Equal(t, int64(6), s.balanceOf(t, bh))
}

func TestTokenCirculationCap(t *testing.T) {
	s := newConfiguredSystem(t)

	buyer := s.token.NewAccount(t)
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", buyer.ScriptHash())

	s.payFail(t, buyer, (testCirculationCap+1)*testBuyPrice)
}

func TestTokenPoolExhausted(t *testing.T) {
	s := newTokenSystem(t)

	s.token.Invoke(t, stackitem.Null{}, "mintTokens", 100)
	s.token.Invoke(t, stackitem.Null{}, "configure",
		"Meridian", "MRD", 1, 1000, 1000, s.foundation.ScriptHash())

	buyer := s.token.NewAccount(t)
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", buyer.ScriptHash())

	s.payFail(t, buyer, 101)

	s.pay(t, buyer, 100)
	require.Equal(t, int64(100), s.balanceOf(t, buyer.ScriptHash()))
	require.Equal(t, int64(0), s.intCall(t, "tokensAvailable"))
}

func TestTokenFoundationDeposit(t *testing.T) {
	s := newConfiguredSystem(t)

	// The marker routes the payment past the sale, no buyer status needed.
	acc := s.token.NewAccount(t)
	s.payWithData(t, acc, 100, common.FoundationDepositMarker)
	require.Equal(t, int64(0), s.balanceOf(t, acc.ScriptHash()))
	require.Equal(t, int64(0), s.intCall(t, "totalInCirculation"))

	foundationInv := s.token.WithSigners(s.foundation)
	foundationInv.Invoke(t, stackitem.Null{}, "foundationWithdraw", 50)

	s.token.InvokeFail(t, "owner witness check failed", "foundationWithdraw", 10)
	foundationInv.InvokeFail(t, "amount must be positive", "foundationWithdraw", 0)

	// Any other data payload goes through the regular sale.
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", acc.ScriptHash())
	s.payWithData(t, acc, 100, "invoice 1")
	require.Equal(t, int64(10), s.balanceOf(t, acc.ScriptHash()))
}

func TestTokenFoundationUnconfigured(t *testing.T) {
	s := newTokenSystem(t)

	s.token.InvokeFail(t, "foundation is not configured", "foundationWithdraw", 10)
}

func TestTokenTransfers(t *testing.T) {
	s := newConfiguredSystem(t)

	from := s.token.NewAccount(t)
	to := s.token.NewAccount(t)
	fh, th := from.ScriptHash(), to.ScriptHash()

	s.token.Invoke(t, stackitem.Null{}, "addBuyer", fh)
	s.pay(t, from, 100*testBuyPrice)

	fromInv := s.token.WithSigners(from)

	// Transfers are disabled until explicitly enabled.
	fromInv.InvokeFail(t, "transfers are disabled", "transfer", fh, th, 10)

	// A whitelisted transferer may move tokens regardless.
	s.token.Invoke(t, stackitem.Null{}, "setWhitelistedTransferer", fh, true)
	fromInv.Invoke(t, stackitem.Null{}, "transfer", fh, th, 10)
	require.Equal(t, int64(90), s.balanceOf(t, fh))
	require.Equal(t, int64(10), s.balanceOf(t, th))

	s.token.Invoke(t, stackitem.Null{}, "setWhitelistedTransferer", fh, false)
	fromInv.InvokeFail(t, "transfers are disabled", "transfer", fh, th, 10)

	s.token.Invoke(t, stackitem.Null{}, "setAllowTransfers", true)
	s.token.Invoke(t, true, "transfersAllowed")
	fromInv.Invoke(t, stackitem.Null{}, "transfer", fh, th, 10)
	require.Equal(t, int64(80), s.balanceOf(t, fh))

	fromInv.InvokeFail(t, "amount must be positive", "transfer", fh, th, 0)
	fromInv.InvokeFail(t, "insufficient balance", "transfer", fh, th, 1000)

	// Only the owner of the source account may transfer.
	s.token.InvokeFail(t, "owner witness check failed", "transfer", fh, th, 10)
}

func TestTokenFreezeAccount(t *testing.T) {
	s := newConfiguredSystem(t)
	s.token.Invoke(t, stackitem.Null{}, "setAllowTransfers", true)

	from := s.token.NewAccount(t)
	to := s.token.NewAccount(t)
	fh, th := from.ScriptHash(), to.ScriptHash()

	s.token.Invoke(t, stackitem.Null{}, "addBuyer", fh)
	s.pay(t, from, 100*testBuyPrice)

	fromInv := s.token.WithSigners(from)

	s.token.Invoke(t, stackitem.Null{}, "freezeAccount", th, true)
	s.token.Invoke(t, true, "isAccountFrozen", th)
	fromInv.InvokeFail(t, "account is frozen", "transfer", fh, th, 10)

	s.token.Invoke(t, stackitem.Null{}, "freezeAccount", th, false)
	s.token.Invoke(t, false, "isAccountFrozen", th)
	fromInv.Invoke(t, stackitem.Null{}, "transfer", fh, th, 10)

	// A frozen source cannot send either, and cannot buy.
	s.token.Invoke(t, stackitem.Null{}, "freezeAccount", fh, true)
	fromInv.InvokeFail(t, "account is frozen", "transfer", fh, th, 10)
}

func TestTokenFreeze(t *testing.T) {
	s := newConfiguredSystem(t)
	s.token.Invoke(t, stackitem.Null{}, "setAllowTransfers", true)

	acc := s.token.NewAccount(t)
	ah := acc.ScriptHash()

	s.token.Invoke(t, stackitem.Null{}, "addBuyer", ah)
	s.pay(t, acc, 100*testBuyPrice)

	s.token.Invoke(t, stackitem.Null{}, "freezeToken", true)
	s.token.Invoke(t, true, "isFrozen")

	accInv := s.token.WithSigners(acc)
	accInv.InvokeFail(t, "contract is frozen", "transfer", ah, s.tokenHash, 10)
	accInv.InvokeFail(t, "contract is frozen", "approve", ah, s.tokenHash, 10)
	s.token.InvokeFail(t, "contract is frozen", "addBuyer", s.tokenHash)
	s.token.InvokeFail(t, "contract is frozen", "grantVestedTokens",
		ah, 100, 0, 10, 100, false)
	s.payFail(t, acc, 100)

	// The freeze is the only state in which a non-zero buy price may change.
	s.token.Invoke(t, stackitem.Null{}, "configure",
		"Meridian", "MRD", 2*testBuyPrice, testCirculationCap, testBalanceLimit,
		s.foundation.ScriptHash())

	s.token.Invoke(t, stackitem.Null{}, "freezeToken", false)
	s.token.Invoke(t, false, "isFrozen")
	accInv.Invoke(t, stackitem.Null{}, "transfer", ah, s.tokenHash, 10)

	s.token.InvokeFail(t, "buy price can only change while frozen", "configure",
		"Meridian", "MRD", testBuyPrice, testCirculationCap, testBalanceLimit,
		s.foundation.ScriptHash())
}

func TestTokenSupersede(t *testing.T) {
	s := newConfiguredSystem(t)

	acc := s.token.NewAccount(t)
	ah := acc.ScriptHash()
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", ah)
	s.pay(t, acc, 100*testBuyPrice)

	successor := util.Uint160{1, 2, 3}

	s.token.WithSigners(acc).InvokeFail(t, "committee witness check failed",
		"upgradeTo", successor)
	s.token.Invoke(t, stackitem.Null{}, "upgradeTo", successor)

	st, err := s.token.TestInvoke(t, "supersededBy")
	require.NoError(t, err)
	require.Equal(t, successor.BytesBE(), st.Pop().Bytes())

	// Every state-changing operation is permanently disabled.
	s.token.InvokeFail(t, "contract has been superseded", "mintTokens", 1)
	s.token.InvokeFail(t, "contract has been superseded", "addBuyer", ah)
	s.token.InvokeFail(t, "contract has been superseded", "setAllowTransfers", true)
	s.token.InvokeFail(t, "contract has been superseded", "grantVestedTokens",
		ah, 100, 0, 10, 100, false)
	s.token.InvokeFail(t, "contract has been superseded", "releaseVestedTokens", ah)
	s.token.InvokeFail(t, "contract has been superseded", "upgradeTo", successor)
	s.token.WithSigners(acc).InvokeFail(t, "contract has been superseded",
		"transfer", ah, s.tokenHash, 10)
	s.payFail(t, acc, 100)

	// Views keep working.
	require.Equal(t, int64(100), s.balanceOf(t, ah))
	s.token.Invoke(t, "Meridian", "name")
}

func TestTokenApprovals(t *testing.T) {
	s := newConfiguredSystem(t)
	s.token.Invoke(t, stackitem.Null{}, "setAllowTransfers", true)

	owner := s.token.NewAccount(t)
	spender := s.token.NewAccount(t)
	receiver := s.token.NewAccount(t)
	oh, sh, rh := owner.ScriptHash(), spender.ScriptHash(), receiver.ScriptHash()

	s.token.Invoke(t, stackitem.Null{}, "addBuyer", oh)
	s.pay(t, owner, 100*testBuyPrice)

	ownerInv := s.token.WithSigners(owner)
	spenderInv := s.token.WithSigners(spender)

	ownerInv.InvokeFail(t, "cannot approve own account", "approve", oh, oh, 50)
	ownerInv.InvokeFail(t, "bad spender script hash", "approve", oh, util.Uint160{}, 50)
	s.token.InvokeFail(t, "owner witness check failed", "approve", oh, sh, 50)

	ownerInv.Invoke(t, stackitem.Null{}, "approve", oh, sh, 50)
	s.token.Invoke(t, 50, "allowance", oh, sh)

	spenderInv.Invoke(t, stackitem.Null{}, "transferFrom", sh, oh, rh, 30)
	require.Equal(t, int64(70), s.balanceOf(t, oh))
	require.Equal(t, int64(30), s.balanceOf(t, rh))
	s.token.Invoke(t, 20, "allowance", oh, sh)

	spenderInv.InvokeFail(t, "insufficient allowance", "transferFrom", sh, oh, rh, 30)
	spenderInv.InvokeFail(t, "spender must differ from owner", "transferFrom", sh, sh, rh, 1)

	ownerInv.Invoke(t, stackitem.Null{}, "increaseApproval", oh, sh, 10)
	s.token.Invoke(t, 30, "allowance", oh, sh)

	// Decrease floors at zero.
	ownerInv.Invoke(t, stackitem.Null{}, "decreaseApproval", oh, sh, 100)
	s.token.Invoke(t, 0, "allowance", oh, sh)

	spenderInv.InvokeFail(t, "insufficient allowance", "transferFrom", sh, oh, rh, 1)
}

func TestTokenBuyerEnumeration(t *testing.T) {
	s := newConfiguredSystem(t)

	a := s.token.NewAccount(t).ScriptHash()
	b := s.token.NewAccount(t).ScriptHash()

	s.token.Invoke(t, 0, "totalBuyers")
	s.token.InvokeFail(t, "index out of range", "buyerAtIndex", 0)

	s.token.Invoke(t, stackitem.Null{}, "addBuyer", a)
	s.token.Invoke(t, true, "isBuyer", a)
	s.token.Invoke(t, 1, "totalBuyers")

	// Removal clears the membership flag but keeps the enumeration entry.
	s.token.Invoke(t, stackitem.Null{}, "removeBuyer", a)
	s.token.Invoke(t, false, "isBuyer", a)
	s.token.Invoke(t, 1, "totalBuyers")

	// Re-approval does not duplicate the entry.
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", a)
	s.token.Invoke(t, 1, "totalBuyers")

	s.token.Invoke(t, stackitem.Null{}, "addBuyer", b)
	s.token.Invoke(t, 2, "totalBuyers")

	for i, h := range []util.Uint160{a, b} {
		st, err := s.token.TestInvoke(t, "buyerAtIndex", i)
		require.NoError(t, err)
		require.Equal(t, h.BytesBE(), st.Pop().Bytes())
	}

	// Entries are raw script hashes, the same bytes the buyer's Neo address
	// decodes to.
	addr, err := base58.Decode(address.Uint160ToString(a))
	require.NoError(t, err)
	st, err := s.token.TestInvoke(t, "buyerAtIndex", 0)
	require.NoError(t, err)
	require.Equal(t, addr[1:21], st.Pop().Bytes())
}

func TestTokenTransfererEnumeration(t *testing.T) {
	s := newConfiguredSystem(t)

	a := s.token.NewAccount(t).ScriptHash()

	s.token.Invoke(t, stackitem.Null{}, "setWhitelistedTransferer", a, true)
	s.token.Invoke(t, true, "isWhitelistedTransferer", a)
	s.token.Invoke(t, 1, "totalTransferers")

	s.token.Invoke(t, stackitem.Null{}, "setWhitelistedTransferer", a, false)
	s.token.Invoke(t, false, "isWhitelistedTransferer", a)
	s.token.Invoke(t, 1, "totalTransferers")

	st, err := s.token.TestInvoke(t, "transfererAtIndex", 0)
	require.NoError(t, err)
	require.Equal(t, a.BytesBE(), st.Pop().Bytes())
}

func TestTokenSuperAdmin(t *testing.T) {
	s := newConfiguredSystem(t)

	admin := s.token.NewAccount(t)
	adminInv := s.token.WithSigners(admin)

	adminInv.InvokeFail(t, "super admin witness check failed", "mintTokens", 1)
	adminInv.InvokeFail(t, "committee witness check failed",
		"addSuperAdmin", admin.ScriptHash())

	s.token.Invoke(t, stackitem.Null{}, "addSuperAdmin", admin.ScriptHash())
	adminInv.Invoke(t, stackitem.Null{}, "mintTokens", 1)

	s.token.Invoke(t, stackitem.Null{}, "removeSuperAdmin", admin.ScriptHash())
	adminInv.InvokeFail(t, "super admin witness check failed", "mintTokens", 1)
}

func TestTokenMint(t *testing.T) {
	s := newConfiguredSystem(t)

	s.token.Invoke(t, stackitem.Null{}, "mintTokens", 500)
	s.token.Invoke(t, testMinted+500, "totalSupply")
	s.token.Invoke(t, testMinted+500, "tokensAvailable")

	s.token.InvokeFail(t, "amount must be positive", "mintTokens", 0)
}

func TestTokenStorageRepoint(t *testing.T) {
	s := newConfiguredSystem(t)
	e := s.token.Executor

	buyer := s.token.NewAccount(t)
	s.token.Invoke(t, stackitem.Null{}, "addBuyer", buyer.ScriptHash())
	s.pay(t, buyer, 100)
	require.Equal(t, int64(10), s.balanceOf(t, buyer.ScriptHash()))

	spareStore := deploySpareStore(t, e)
	RegisterContractName(t, e, "tokenstore2", spareStore)

	s.token.InvokeFail(t, "empty contract name", "updateStorage", "", "ledger")
	s.token.InvokeFail(t, "unknown name", "updateStorage", "nosuchstore", "ledger")

	s.token.Invoke(t, stackitem.Null{}, "updateStorage", "tokenstore2", "ledger")

	// The spare store is empty, so the configuration mirrors reset and the
	// sale stops.
	s.token.Invoke(t, "", "name")
	s.payFail(t, buyer, 100)

	// Configuring while repointed writes the spare store and the mirrors,
	// the doubled price takes effect on the sale path immediately.
	s.token.Invoke(t, stackitem.Null{}, "configure",
		"Meridian2", "MRD2", 2*testBuyPrice, testCirculationCap, testBalanceLimit,
		s.foundation.ScriptHash())
	s.token.Invoke(t, "Meridian2", "name")
	s.pay(t, buyer, 100)
	require.Equal(t, int64(15), s.balanceOf(t, buyer.ScriptHash()))

	// Switching back resynchronizes the original configuration, the spare
	// store keeps its own untouched.
	s.token.Invoke(t, stackitem.Null{}, "updateStorage", "tokenstore", "ledger")
	s.token.Invoke(t, "Meridian", "name")
	s.pay(t, buyer, 100)
	require.Equal(t, int64(25), s.balanceOf(t, buyer.ScriptHash()))
}

// vestingBase pins the chain clock to a whole second so subsequent blocks
// can be placed at exact schedule boundaries.
func vestingBase(t *testing.T, s *tokenSystem) int64 {
	base := (s.token.TopBlock(t).Timestamp/1000 + 10) * 1000
	s.addBlockAt(t, base)
	return int64(base / 1000)
}

func TestTokenVestingRelease(t *testing.T) {
	s := newConfiguredSystem(t)
	start := vestingBase(t, s)

	acc := s.token.NewAccount(t)
	ah := acc.ScriptHash()

	s.token.Invoke(t, stackitem.Null{}, "grantVestedTokens",
		ah, 1000, start, 100, 1000, false)

	// The whole grant counts as circulating from the moment it is made.
	s.token.Invoke(t, 1000, "totalInCirculation")
	s.token.Invoke(t, testMinted-1000, "tokensAvailable")
	s.token.Invoke(t, 1, "vestingCount")
	s.token.Invoke(t, 1000, "totalUnvestedAndUnreleased")

	st, err := s.token.TestInvoke(t, "vestingBeneficiaryAtIndex", 0)
	require.NoError(t, err)
	require.Equal(t, ah.BytesBE(), st.Pop().Bytes())

	// Before the cliff nothing is vested.
	s.addBlockAt(t, uint64(start+50)*1000)
	s.token.Invoke(t, 0, "vestedAmount", ah)
	s.token.Invoke(t, 0, "releaseVestedTokens", ah)
	require.Equal(t, int64(0), s.balanceOf(t, ah))

	// Halfway through the duration half the grant is vested.
	s.addBlockAt(t, uint64(start+500)*1000)
	s.token.Invoke(t, 500, "vestedAmount", ah)
	s.token.Invoke(t, 500, "releasableAmount", ah)
	s.token.Invoke(t, 500, "releaseVestedTokens", ah)
	require.Equal(t, int64(500), s.balanceOf(t, ah))
	s.token.Invoke(t, 0, "releaseVestedTokens", ah)

	// Releasing moves tokens within the circulating amount.
	s.token.Invoke(t, 1000, "totalInCirculation")
	s.token.Invoke(t, 500, "totalUnvestedAndUnreleased")

	s.addBlockAt(t, uint64(start+1000)*1000)
	s.token.Invoke(t, 1000, "vestedAmount", ah)
	s.token.Invoke(t, 500, "releaseVestedTokens", ah)
	require.Equal(t, int64(1000), s.balanceOf(t, ah))
	s.token.Invoke(t, 0, "totalUnvestedAndUnreleased")
	s.token.Invoke(t, 1000, "totalInCirculation")

	// A fully released schedule is no longer active, re-granting is fine.
	s.token.Invoke(t, stackitem.Null{}, "grantVestedTokens",
		ah, 200, start+2000, 0, 100, false)
	s.token.Invoke(t, 1, "vestingCount")
}

func TestTokenVestingRevocation(t *testing.T) {
	s := newConfiguredSystem(t)
	start := vestingBase(t, s)

	acc := s.token.NewAccount(t)
	ah := acc.ScriptHash()

	s.token.Invoke(t, stackitem.Null{}, "grantVestedTokens",
		ah, 1000, start, 100, 1000, true)

	s.token.InvokeFail(t, "beneficiary already has an active vesting schedule",
		"grantVestedTokens", ah, 500, start, 100, 1000, true)

	// Revocation releases whatever is releasable first, then freezes the
	// vested amount forever. The unvested remainder returns to the pool.
	s.addBlockAt(t, uint64(start+300)*1000)
	s.token.Invoke(t, stackitem.Null{}, "revokeVesting", ah)
	require.Equal(t, int64(300), s.balanceOf(t, ah))
	s.token.Invoke(t, 300, "vestedAmount", ah)
	s.token.Invoke(t, 0, "totalUnvestedAndUnreleased")
	s.token.Invoke(t, 300, "totalInCirculation")
	s.token.Invoke(t, testMinted-300, "tokensAvailable")

	s.addBlockAt(t, uint64(start+800)*1000)
	s.token.Invoke(t, 300, "vestedAmount", ah)
	s.token.Invoke(t, 0, "releasableAmount", ah)
	s.token.Invoke(t, 0, "releaseVestedTokens", ah)

	s.token.InvokeFail(t, "schedule is already revoked", "revokeVesting", ah)

	// A revoked beneficiary may receive a fresh grant.
	s.token.Invoke(t, stackitem.Null{}, "grantVestedTokens",
		ah, 500, start+1000, 100, 1000, true)
	s.token.Invoke(t, 1, "vestingCount")
	s.token.Invoke(t, 500, "totalUnvestedAndUnreleased")
}

func TestTokenVestingGuards(t *testing.T) {
	s := newConfiguredSystem(t)

	acc := s.token.NewAccount(t)
	ah := acc.ScriptHash()

	s.token.InvokeFail(t, "bad beneficiary script hash", "grantVestedTokens",
		util.Uint160{}, 100, 0, 10, 100, false)
	s.token.InvokeFail(t, "amount must be positive", "grantVestedTokens",
		ah, 0, 0, 10, 100, false)
	s.token.InvokeFail(t, "duration shorter than cliff", "grantVestedTokens",
		ah, 100, 0, 100, 10, false)
	s.token.InvokeFail(t, "circulation cap exceeded", "grantVestedTokens",
		ah, testCirculationCap+1, 0, 10, 100, false)
	s.token.InvokeFail(t, "cannot grant to the token contract", "grantVestedTokens",
		s.tokenHash, 100, 0, 10, 100, false)
	s.token.WithSigners(acc).InvokeFail(t, "super admin witness check failed",
		"grantVestedTokens", ah, 100, 0, 10, 100, false)

	s.token.InvokeFail(t, "no vesting schedule", "revokeVesting", ah)

	s.token.Invoke(t, stackitem.Null{}, "grantVestedTokens",
		ah, 100, 0, 10, 100, false)
	s.token.InvokeFail(t, "schedule is not revocable", "revokeVesting", ah)
}

func TestTokenVestingReleaseWhileFrozen(t *testing.T) {
	s := newConfiguredSystem(t)
	start := vestingBase(t, s)

	acc := s.token.NewAccount(t)
	ah := acc.ScriptHash()

	s.token.Invoke(t, stackitem.Null{}, "grantVestedTokens",
		ah, 1000, start, 0, 1000, false)

	// The freeze stops grants and transfers but never withholds already
	// vested tokens.
	s.token.Invoke(t, stackitem.Null{}, "freezeToken", true)

	s.addBlockAt(t, uint64(start+500)*1000)
	s.token.Invoke(t, 500, "releaseVestedTokens", ah)
	require.Equal(t, int64(500), s.balanceOf(t, ah))
}
