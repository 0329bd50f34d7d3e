package token

import (
	"github.com/meridian-token/meridian-contract/common"
	"github.com/meridian-token/meridian-contract/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// vestingSchedule is a copy of
// github.com/meridian-token/meridian-contract/contracts/tokenstore.VestingSchedule
// to prevent cross-contract imports that may fail due to internal `_deploy` calls.
type vestingSchedule struct {
	StartDate         int
	CliffDate         int
	DurationSec       int
	FullyVestedAmount int
	ReleasedAmount    int
	RevokeDate        int
	IsRevocable       bool
}

// whitelist describes one enumerable membership set: a membership (or limit)
// map, an insertion-ordered index and a seen marker so that membership can be
// toggled repeatedly without the index growing more than once per account.
type whitelist struct {
	memberPrefix byte
	indexPrefix  byte
	seenPrefix   byte
	countKey     string
}

const (
	superAdminPrefix = 'm'
	frozenAccPrefix  = 'f'

	storageNameKey = "storageName"
	ledgerNameKey  = "ledgerName"

	buyPriceKey       = "buyPrice"
	circulationCapKey = "circulationCap"
	balanceLimitKey   = "balanceLimit"
	contribMinKey     = "contributionMinimum"
	foundationKey     = "foundation"

	frozenKey         = "frozen"
	allowTransfersKey = "allowTransfers"
	supersededKey     = "supersededBy"
)

// Error messages of the guard checks, produced verbatim by panics.
const (
	ErrSuperAdminWitnessFailed = "super admin witness check failed"
	ErrFrozen                  = "contract is frozen"
	ErrSuperseded              = "contract has been superseded"
	ErrTransfersDisabled       = "transfers are disabled"
	ErrAccountFrozen           = "account is frozen"
)

var (
	buyers       = whitelist{'b', 'B', 'c', "totalBuyers"}
	customBuyers = whitelist{'k', 'K', 'q', "totalCustomBuyers"}
	transferers  = whitelist{'t', 'T', 'u', "totalTransferers"}
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	storageName := tokenconst.DefaultStorageName
	ledgerName := tokenconst.DefaultLedgerName

	if data != nil {
		args := data.(struct {
			storageName string
			ledgerName  string
		})
		if len(args.storageName) != 0 {
			storageName = args.storageName
		}
		if len(args.ledgerName) != 0 {
			ledgerName = args.ledgerName
		}
	}

	storage.Put(ctx, storageNameKey, storageName)
	storage.Put(ctx, ledgerNameKey, ledgerName)

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Configure stores the token configuration in the token store contract and
// mirrors the scalars needed on the sale path locally. Once the buy price
// has been set non-zero it may only change while the contract is frozen,
// which rules out mid-sale price manipulation. It can be invoked only by a
// super admin and is disabled once the contract is superseded.
//
// It produces ConfigChanged notification.
func Configure(name, symbol string, buyPrice, circulationCap, balanceLimit int, foundation interop.Hash160) {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotSuperseded(ctx)

	if buyPrice < 0 || circulationCap < 0 || balanceLimit < 0 {
		panic("negative configuration value")
	}
	if len(foundation) != 0 && len(foundation) != interop.Hash160Len {
		panic("bad foundation script hash")
	}

	oldPrice := common.GetInt(ctx, buyPriceKey)
	if oldPrice != 0 && buyPrice != oldPrice && !isFrozen(ctx) {
		panic("buy price can only change while frozen")
	}

	storageHash := resolveStorage(ctx)
	contribMin := common.GetInt(ctx, contribMinKey)
	contract.Call(storageHash, "setConfiguration", contract.All,
		name, symbol, buyPrice, circulationCap, balanceLimit, contribMin, foundation)

	storage.Put(ctx, buyPriceKey, buyPrice)
	storage.Put(ctx, circulationCapKey, circulationCap)
	storage.Put(ctx, balanceLimitKey, balanceLimit)
	storage.Put(ctx, foundationKey, foundation)

	runtime.Notify("ConfigChanged", buyPrice, circulationCap, balanceLimit)
}

// SetContributionMinimum stores the minimum resulting balance a purchase
// must produce. It can be invoked only by a super admin and is disabled once
// the contract is superseded.
//
// It produces ConfigChanged notification.
func SetContributionMinimum(value int) {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotSuperseded(ctx)

	if value < 0 {
		panic("negative contribution minimum")
	}

	contract.Call(resolveStorage(ctx), "setContributionMinimum", contract.All, value)
	storage.Put(ctx, contribMinKey, value)

	runtime.Notify("ConfigChanged",
		common.GetInt(ctx, buyPriceKey),
		common.GetInt(ctx, circulationCapKey),
		common.GetInt(ctx, balanceLimitKey))
}

// ConfigureFromStorage re-reads the mirrored configuration scalars from the
// token store contract. It is used after UpdateStorage repoints the store so
// the local mirrors resynchronize. Same access rules as Configure.
func ConfigureFromStorage() {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotSuperseded(ctx)

	configureFromStorage(ctx)
}

// UpdateStorage repoints the contract at a different token store and ledger
// pair via the registry and resynchronizes the configuration mirrors. It can
// be invoked only by a super admin and is disabled once the contract is
// superseded.
//
// It produces StorageUpdated notification.
func UpdateStorage(newStorageName, newLedgerName string) {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotSuperseded(ctx)

	if len(newStorageName) == 0 || len(newLedgerName) == 0 {
		panic("empty contract name")
	}

	storage.Put(ctx, storageNameKey, newStorageName)
	storage.Put(ctx, ledgerNameKey, newLedgerName)

	configureFromStorage(ctx)

	runtime.Notify("StorageUpdated", resolveStorage(ctx), resolveLedger(ctx))
}

// Name returns the configured token name.
func Name() string {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(resolveStorage(ctx), "tokenName", contract.ReadOnly).(string)
}

// Symbol returns the configured token symbol.
func Symbol() string {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(resolveStorage(ctx), "tokenSymbol", contract.ReadOnly).(string)
}

// Decimals returns the precision of Meridian tokens.
func Decimals() int {
	return tokenconst.Decimals
}

// TotalSupply returns the total amount of tokens ever minted, the unissued
// pool included.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(resolveLedger(ctx), "totalTokens", contract.ReadOnly).(int)
}

// TotalInCirculation returns the amount of tokens outstanding: everything
// held outside the unissued pool plus everything promised by live vesting
// schedules but not yet released.
func TotalInCirculation() int {
	ctx := storage.GetReadOnlyContext()
	return totalInCirculation(ctx)
}

// TokensAvailable returns the amount of tokens that can still be sold or
// granted without minting.
func TokensAvailable() int {
	ctx := storage.GetReadOnlyContext()
	return tokensAvailable(ctx)
}

// BalanceOf returns the token balance of the specified account. For the
// token contract's own account it reports the available (sellable) supply
// rather than the raw pool balance, which still includes unreleased vesting
// promises.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	if account.Equals(runtime.GetExecutingScriptHash()) {
		return tokensAvailable(ctx)
	}

	return contract.Call(resolveLedger(ctx), "balanceOf", contract.ReadOnly, account).(int)
}

// Transfer moves tokens between accounts. It can be invoked only by the
// owner of the source account, requires transfers to be globally enabled
// (unless the source is a whitelisted transferer) and both accounts to be
// unfrozen.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int) {
	common.CheckOwnerWitness(from)

	ctx := storage.GetContext()
	checkNotFrozen(ctx)
	checkNotSuperseded(ctx)

	if !transfersAllowed(ctx) && !isMember(ctx, transferers, from) {
		panic(ErrTransfersDisabled)
	}
	if amount <= 0 {
		panic("amount must be positive")
	}
	checkAccountNotFrozen(ctx, from)
	checkAccountNotFrozen(ctx, to)

	contract.Call(resolveLedger(ctx), "transfer", contract.All, from, to, amount)

	runtime.Notify("Transfer", from, to, amount)
}

// Approve sets the allowance of spender over owner's tokens. Note the usual
// race: changing a non-zero allowance directly can be front-run, the safe
// path is IncreaseApproval/DecreaseApproval (or approving 0 first). It can
// be invoked only by the owner of the tokens.
//
// It produces Approval notification.
func Approve(owner, spender interop.Hash160, value int) {
	setAllowance(owner, spender, value)
}

// IncreaseApproval raises the allowance of spender over owner's tokens by
// the given delta. It can be invoked only by the owner of the tokens.
//
// It produces Approval notification.
func IncreaseApproval(owner, spender interop.Hash160, delta int) {
	if delta <= 0 {
		panic("amount must be positive")
	}

	setAllowance(owner, spender, allowance(storage.GetReadOnlyContext(), owner, spender)+delta)
}

// DecreaseApproval lowers the allowance of spender over owner's tokens by
// the given delta, flooring at zero. It can be invoked only by the owner of
// the tokens.
//
// It produces Approval notification.
func DecreaseApproval(owner, spender interop.Hash160, delta int) {
	if delta <= 0 {
		panic("amount must be positive")
	}

	current := allowance(storage.GetReadOnlyContext(), owner, spender)
	if delta > current {
		delta = current
	}

	setAllowance(owner, spender, current-delta)
}

// Allowance returns the amount spender is still allowed to transfer on
// behalf of owner.
func Allowance(owner, spender interop.Hash160) int {
	return allowance(storage.GetReadOnlyContext(), owner, spender)
}

// TransferFrom moves tokens on behalf of their owner within the spender's
// allowance. The allowance decrement and the ledger move happen in a single
// call, so there is no state in which one succeeded without the other. It
// can be invoked only by the spender.
//
// It produces Transfer notification.
func TransferFrom(spender, from, to interop.Hash160, amount int) {
	common.CheckWitness(spender)

	ctx := storage.GetContext()
	checkNotFrozen(ctx)
	checkNotSuperseded(ctx)

	if !transfersAllowed(ctx) && !isMember(ctx, transferers, from) {
		panic(ErrTransfersDisabled)
	}
	if spender.Equals(from) {
		panic("spender must differ from owner")
	}
	if amount <= 0 {
		panic("amount must be positive")
	}
	checkAccountNotFrozen(ctx, from)
	checkAccountNotFrozen(ctx, to)

	approved := allowance(ctx, from, spender)
	if approved < amount {
		panic("insufficient allowance")
	}

	storageHash := resolveStorage(ctx)
	contract.Call(storageHash, "setAllowance", contract.All, from, spender, approved-amount)
	contract.Call(resolveLedger(ctx), "transfer", contract.All, from, to, amount)

	runtime.Notify("Transfer", from, to, amount)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract and
// the token sale entry point. Sending GAS to the contract buys tokens for
// the sender at the configured buy price; the sub-unit remainder of the
// payment is retained by the contract, not refunded. A payment carrying the
// foundation deposit marker as data skips the sale and just tops up the
// treasury. Any guard failure aborts the whole transaction, so the GAS
// returns to the sender.
//
// It produces Purchase and Transfer notifications.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("only GAS is accepted")
	}

	if data != nil && data.(string) == common.FoundationDepositMarker {
		runtime.Notify("FoundationDeposit", from, amount)
		return
	}

	ctx := storage.GetContext()
	if isFrozen(ctx) {
		common.AbortWithMessage(ErrFrozen)
	}
	if isSuperseded(ctx) {
		common.AbortWithMessage(ErrSuperseded)
	}

	buyPrice := common.GetInt(ctx, buyPriceKey)
	circulationCap := common.GetInt(ctx, circulationCapKey)
	if buyPrice <= 0 || circulationCap <= 0 {
		common.AbortWithMessage("token sale is not configured")
	}
	if amount < buyPrice {
		common.AbortWithMessage("payment below token price")
	}
	if !isMember(ctx, buyers, from) {
		common.AbortWithMessage("buyer is not approved")
	}

	// Sub-unit overpayment is deliberately kept by the contract.
	tokens := amount / buyPrice

	if totalInCirculation(ctx)+tokens > circulationCap {
		common.AbortWithMessage("circulation cap exceeded")
	}
	if tokens > tokensAvailable(ctx) {
		common.AbortWithMessage("not enough tokens available")
	}

	ledgerHash := resolveLedger(ctx)
	balance := contract.Call(ledgerHash, "balanceOf", contract.ReadOnly, from).(int)

	contribMin := common.GetInt(ctx, contribMinKey)
	if contribMin > 0 && balance+tokens < contribMin {
		common.AbortWithMessage("contribution below minimum")
	}

	limit := customLimit(ctx, from)
	if limit == 0 {
		limit = common.GetInt(ctx, balanceLimitKey)
	}
	if limit == 0 || balance+tokens > limit {
		common.AbortWithMessage("balance limit exceeded")
	}

	contract.Call(ledgerHash, "debitAccount", contract.All, from, tokens)

	runtime.Notify("Purchase", from, amount, tokens)
	runtime.Notify("Transfer", runtime.GetExecutingScriptHash(), from, tokens)
}

// FoundationWithdraw sends GAS accumulated by the token sale from the
// contract account to the foundation. It can be invoked only by the
// configured foundation account.
//
// It produces FoundationWithdraw notification.
func FoundationWithdraw(amount int) {
	ctx := storage.GetContext()

	foundation := getFoundation(ctx)
	if len(foundation) != interop.Hash160Len {
		panic("foundation is not configured")
	}
	common.CheckOwnerWitness(foundation)

	if amount <= 0 {
		panic("amount must be positive")
	}

	if !gas.Transfer(runtime.GetExecutingScriptHash(), foundation, amount, nil) {
		panic("failed to transfer funds, aborting")
	}

	runtime.Notify("FoundationWithdraw", foundation, amount)
}

// MintTokens mints new tokens into the unissued pool. It can be invoked only
// by a super admin and is disabled once the contract is superseded.
//
// It produces Mint notification.
func MintTokens(amount int) {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotSuperseded(ctx)

	if amount <= 0 {
		panic("amount must be positive")
	}

	ledgerHash := resolveLedger(ctx)
	contract.Call(ledgerHash, "mintTokens", contract.All, amount)

	total := contract.Call(ledgerHash, "totalTokens", contract.ReadOnly).(int)
	runtime.Notify("Mint", amount, total, common.GetInt(ctx, circulationCapKey))
}

// AddSuperAdmin registers an account as a super admin. It can be invoked
// only by committee.
func AddSuperAdmin(admin interop.Hash160) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	checkNotSuperseded(ctx)

	if len(admin) != interop.Hash160Len {
		panic("bad admin script hash")
	}

	storage.Put(ctx, append([]byte{superAdminPrefix}, admin...), []byte{1})
	runtime.Log("super admin added")
}

// RemoveSuperAdmin drops an account from the super admin set. It can be
// invoked only by committee.
func RemoveSuperAdmin(admin interop.Hash160) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	checkNotSuperseded(ctx)

	storage.Delete(ctx, append([]byte{superAdminPrefix}, admin...))
	runtime.Log("super admin removed")
}

// FreezeToken toggles the contract-wide freeze. While frozen, transfers,
// purchases, grants and whitelist changes are rejected; freezing is also the
// only state in which a non-zero buy price may change. It can be invoked
// only by a super admin.
func FreezeToken(frozen bool) {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotSuperseded(ctx)

	if frozen {
		storage.Put(ctx, frozenKey, []byte{1})
	} else {
		storage.Delete(ctx, frozenKey)
	}
}

// IsFrozen returns true if the contract-wide freeze is in effect.
func IsFrozen() bool {
	return isFrozen(storage.GetReadOnlyContext())
}

// FreezeAccount toggles the freeze of a single account. A frozen account can
// neither send nor receive tokens. It can be invoked only by a super admin.
func FreezeAccount(account interop.Hash160, frozen bool) {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotSuperseded(ctx)

	if len(account) != interop.Hash160Len {
		panic("bad account script hash")
	}

	key := append([]byte{frozenAccPrefix}, account...)
	if frozen {
		storage.Put(ctx, key, []byte{1})
	} else {
		storage.Delete(ctx, key)
	}
}

// IsAccountFrozen returns true if the account is frozen.
func IsAccountFrozen(account interop.Hash160) bool {
	return isAccountFrozen(storage.GetReadOnlyContext(), account)
}

// SetAllowTransfers toggles the global transfer switch. While transfers are
// disabled only whitelisted transferers can move their tokens. It can be
// invoked only by a super admin.
func SetAllowTransfers(allow bool) {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotSuperseded(ctx)

	if allow {
		storage.Put(ctx, allowTransfersKey, []byte{1})
	} else {
		storage.Delete(ctx, allowTransfersKey)
	}
}

// TransfersAllowed returns true if the global transfer switch is on.
func TransfersAllowed() bool {
	return transfersAllowed(storage.GetReadOnlyContext())
}

// UpgradeTo marks the contract as superseded by a newer version. This is a
// one-way switch: once set, every state-changing operation of this contract
// is permanently disabled. It can be invoked only by committee.
func UpgradeTo(successor interop.Hash160) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	checkNotSuperseded(ctx)

	if len(successor) != interop.Hash160Len {
		panic("bad successor script hash")
	}

	storage.Put(ctx, supersededKey, successor)
	runtime.Log("token contract superseded")
}

// SupersededBy returns the successor contract hash or nil if the contract
// has not been superseded.
func SupersededBy() interop.Hash160 {
	data := storage.Get(storage.GetReadOnlyContext(), supersededKey)
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

// AddBuyer approves an account for the token sale. It can be invoked only by
// a super admin.
//
// It produces WhitelistChanged notification.
func AddBuyer(buyer interop.Hash160) {
	ctx := storage.GetContext()
	checkWhitelistMutation(ctx)

	addBuyer(ctx, buyer)
}

// RemoveBuyer withdraws the sale approval of an account. Only the membership
// flag is cleared: the account stays in the buyer enumeration forever, which
// preserves the purchase eligibility history. It can be invoked only by a
// super admin.
//
// It produces WhitelistChanged notification.
func RemoveBuyer(buyer interop.Hash160) {
	ctx := storage.GetContext()
	checkWhitelistMutation(ctx)

	storage.Delete(ctx, memberKey(buyers, buyer))
	runtime.Notify("WhitelistChanged", buyer, 0)
}

// IsBuyer returns true if the account is approved for the token sale.
func IsBuyer(buyer interop.Hash160) bool {
	return isMember(storage.GetReadOnlyContext(), buyers, buyer)
}

// TotalBuyers returns the size of the buyer enumeration. Removed buyers stay
// counted.
func TotalBuyers() int {
	return common.GetInt(storage.GetReadOnlyContext(), buyers.countKey)
}

// BuyerAtIndex returns the buyer at the given enumeration index, in first
// approval order.
func BuyerAtIndex(index int) interop.Hash160 {
	return atIndex(storage.GetReadOnlyContext(), buyers, index)
}

// SetCustomBuyer sets a per-account balance limit overriding the default one
// and approves the account for the token sale. A zero limit removes the
// override, the account then falls back to the default limit. It can be
// invoked only by a super admin.
//
// It produces WhitelistChanged notifications.
func SetCustomBuyer(buyer interop.Hash160, limit int) {
	ctx := storage.GetContext()
	checkWhitelistMutation(ctx)

	if limit < 0 {
		panic("negative balance limit")
	}

	key := memberKey(customBuyers, buyer)
	if limit == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, limit)
	}
	indexMember(ctx, customBuyers, buyer)

	addBuyer(ctx, buyer)
}

// CustomLimit returns the custom balance limit of the account or zero if
// none is set.
func CustomLimit(buyer interop.Hash160) int {
	return customLimit(storage.GetReadOnlyContext(), buyer)
}

// TotalCustomBuyers returns the size of the custom buyer enumeration.
func TotalCustomBuyers() int {
	return common.GetInt(storage.GetReadOnlyContext(), customBuyers.countKey)
}

// CustomBuyerAtIndex returns the custom buyer at the given enumeration
// index.
func CustomBuyerAtIndex(index int) interop.Hash160 {
	return atIndex(storage.GetReadOnlyContext(), customBuyers, index)
}

// SetWhitelistedTransferer allows or disallows an account to transfer tokens
// while transfers are globally disabled. It can be invoked only by a super
// admin.
//
// It produces WhitelistChanged notification.
func SetWhitelistedTransferer(account interop.Hash160, allowed bool) {
	ctx := storage.GetContext()
	checkWhitelistMutation(ctx)

	key := memberKey(transferers, account)
	if allowed {
		storage.Put(ctx, key, []byte{1})
	} else {
		storage.Delete(ctx, key)
	}
	indexMember(ctx, transferers, account)

	runtime.Notify("WhitelistChanged", account, effectiveLimit(ctx, account))
}

// IsWhitelistedTransferer returns true if the account may transfer while
// transfers are globally disabled.
func IsWhitelistedTransferer(account interop.Hash160) bool {
	return isMember(storage.GetReadOnlyContext(), transferers, account)
}

// TotalTransferers returns the size of the transferer enumeration.
func TotalTransferers() int {
	return common.GetInt(storage.GetReadOnlyContext(), transferers.countKey)
}

// TransfererAtIndex returns the transferer at the given enumeration index.
func TransfererAtIndex(index int) interop.Hash160 {
	return atIndex(storage.GetReadOnlyContext(), transferers, index)
}

// GrantVestedTokens creates a linear vesting schedule for the beneficiary. A
// zero start date means now. The granted amount counts against both the
// circulation cap and the available pool from the moment of the grant. A
// beneficiary with a live (not fully released, not revoked) schedule cannot
// receive a second one. It can be invoked only by a super admin.
//
// It produces VestingGranted notification.
func GrantVestedTokens(beneficiary interop.Hash160, fullyVestedAmount, startDate, cliffSec, durationSec int, isRevocable bool) {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotFrozen(ctx)
	checkNotSuperseded(ctx)

	if len(beneficiary) != interop.Hash160Len || isZeroHash(beneficiary) {
		panic("bad beneficiary script hash")
	}
	if beneficiary.Equals(runtime.GetExecutingScriptHash()) {
		panic("cannot grant to the token contract")
	}
	checkAccountNotFrozen(ctx, beneficiary)

	if fullyVestedAmount <= 0 {
		panic("amount must be positive")
	}
	if durationSec < cliffSec {
		panic("duration shorter than cliff")
	}
	if startDate == 0 {
		startDate = runtime.GetTime() / 1000
	}

	if totalInCirculation(ctx)+fullyVestedAmount > common.GetInt(ctx, circulationCapKey) {
		panic("circulation cap exceeded")
	}
	if fullyVestedAmount > tokensAvailable(ctx) {
		panic("not enough tokens available")
	}

	storageHash := resolveStorage(ctx)
	old := getSchedule(storageHash, beneficiary)
	if old.FullyVestedAmount != 0 && old.ReleasedAmount < old.FullyVestedAmount && old.RevokeDate == 0 {
		panic("beneficiary already has an active vesting schedule")
	}

	contract.Call(storageHash, "setVestingSchedule", contract.All,
		beneficiary, fullyVestedAmount, startDate, cliffSec, durationSec, isRevocable)

	runtime.Notify("VestingGranted", beneficiary, startDate, cliffSec, durationSec, fullyVestedAmount, isRevocable)
}

// ReleaseVestedTokens moves the currently releasable amount of the
// beneficiary's schedule from the pool to the beneficiary and returns that
// amount. Zero releasable is not an error, the call succeeds without any
// state change then. Access is deliberately open: anyone may trigger a
// release for any beneficiary, the tokens always go to the beneficiary.
//
// It produces VestingReleased and Transfer notifications.
func ReleaseVestedTokens(beneficiary interop.Hash160) int {
	ctx := storage.GetContext()
	checkNotSuperseded(ctx)

	return releaseVestedTokens(ctx, beneficiary)
}

// RevokeVesting revokes the beneficiary's schedule: any currently releasable
// amount is released first, then the schedule is stamped revoked, freezing
// its vested amount forever. The unvested remainder returns to the sellable
// pool. It can be invoked only by a super admin and only for revocable
// schedules.
//
// It produces VestingRevoked notification (and the release notifications if
// anything was still releasable).
func RevokeVesting(beneficiary interop.Hash160) {
	ctx := storage.GetContext()
	checkSuperAdmin(ctx)
	checkNotSuperseded(ctx)

	releaseVestedTokens(ctx, beneficiary)

	contract.Call(resolveStorage(ctx), "revokeVesting", contract.All, beneficiary)

	runtime.Notify("VestingRevoked", beneficiary)
}

// VestedAmount returns the amount of the beneficiary's grant vested by now.
func VestedAmount(beneficiary interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(resolveStorage(ctx), "vestedAmount", contract.ReadOnly, beneficiary).(int)
}

// ReleasableAmount returns the vested but not yet released amount of the
// beneficiary's grant.
func ReleasableAmount(beneficiary interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(resolveStorage(ctx), "releasableAmount", contract.ReadOnly, beneficiary).(int)
}

// TotalUnvestedAndUnreleased returns the aggregate amount promised by live
// vesting schedules but not yet released.
func TotalUnvestedAndUnreleased() int {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(resolveStorage(ctx), "totalUnvestedAndUnreleased", contract.ReadOnly).(int)
}

// VestingCount returns the number of accounts that have ever had a vesting
// schedule.
func VestingCount() int {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(resolveStorage(ctx), "vestingCount", contract.ReadOnly).(int)
}

// VestingBeneficiaryAtIndex returns the beneficiary at the given index of
// the vesting enumeration, in grant order.
func VestingBeneficiaryAtIndex(index int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(resolveStorage(ctx), "vestingBeneficiary", contract.ReadOnly, index).(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func releaseVestedTokens(ctx storage.Context, beneficiary interop.Hash160) int {
	if len(beneficiary) != interop.Hash160Len {
		panic("bad beneficiary script hash")
	}

	amount := contract.Call(resolveStorage(ctx), "releaseVestedTokens", contract.All, beneficiary).(int)
	if amount == 0 {
		return 0
	}

	contract.Call(resolveLedger(ctx), "debitAccount", contract.All, beneficiary, amount)

	runtime.Notify("VestingReleased", beneficiary, amount)
	runtime.Notify("Transfer", runtime.GetExecutingScriptHash(), beneficiary, amount)

	return amount
}

func setAllowance(owner, spender interop.Hash160, value int) {
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	checkNotFrozen(ctx)
	checkNotSuperseded(ctx)

	if len(spender) != interop.Hash160Len || isZeroHash(spender) {
		panic("bad spender script hash")
	}
	if spender.Equals(owner) {
		panic("cannot approve own account")
	}
	if value < 0 {
		panic("negative allowance")
	}

	contract.Call(resolveStorage(ctx), "setAllowance", contract.All, owner, spender, value)

	runtime.Notify("Approval", owner, spender, value)
}

func allowance(ctx storage.Context, owner, spender interop.Hash160) int {
	return contract.Call(resolveStorage(ctx), "allowance", contract.ReadOnly, owner, spender).(int)
}

func getSchedule(storageHash interop.Hash160, beneficiary interop.Hash160) vestingSchedule {
	return contract.Call(storageHash, "getVestingSchedule", contract.ReadOnly, beneficiary).(vestingSchedule)
}

func addBuyer(ctx storage.Context, buyer interop.Hash160) {
	if len(buyer) != interop.Hash160Len {
		panic("bad buyer script hash")
	}

	storage.Put(ctx, memberKey(buyers, buyer), []byte{1})
	indexMember(ctx, buyers, buyer)

	runtime.Notify("WhitelistChanged", buyer, effectiveLimit(ctx, buyer))
}

func effectiveLimit(ctx storage.Context, buyer interop.Hash160) int {
	limit := customLimit(ctx, buyer)
	if limit == 0 {
		limit = common.GetInt(ctx, balanceLimitKey)
	}

	return limit
}

func customLimit(ctx storage.Context, buyer interop.Hash160) int {
	return common.GetInt(ctx, memberKey(customBuyers, buyer))
}

func isZeroHash(h interop.Hash160) bool {
	for i := 0; i < len(h); i++ {
		if h[i] != 0 {
			return false
		}
	}

	return true
}

func isMember(ctx storage.Context, w whitelist, account interop.Hash160) bool {
	return storage.Get(ctx, memberKey(w, account)) != nil
}

func indexMember(ctx storage.Context, w whitelist, account interop.Hash160) {
	seenKey := append([]byte{w.seenPrefix}, account...)
	if storage.Get(ctx, seenKey) != nil {
		return
	}

	count := common.GetInt(ctx, w.countKey)
	storage.Put(ctx, indexKey(w, count), account)
	storage.Put(ctx, w.countKey, count+1)
	storage.Put(ctx, seenKey, []byte{1})
}

func atIndex(ctx storage.Context, w whitelist, index int) interop.Hash160 {
	data := storage.Get(ctx, indexKey(w, index))
	if data == nil {
		panic("index out of range")
	}

	return data.(interop.Hash160)
}

func memberKey(w whitelist, account interop.Hash160) []byte {
	return append([]byte{w.memberPrefix}, account...)
}

func indexKey(w whitelist, index int) []byte {
	return append([]byte{w.indexPrefix}, convert.ToBytes(index)...)
}

func checkWhitelistMutation(ctx storage.Context) {
	checkSuperAdmin(ctx)
	checkNotFrozen(ctx)
	checkNotSuperseded(ctx)
}

func checkSuperAdmin(ctx storage.Context) {
	if runtime.CheckWitness(common.CommitteeAddress()) {
		return
	}

	it := storage.Find(ctx, []byte{superAdminPrefix}, storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		admin := iterator.Value(it).(interop.Hash160)
		if len(admin) == interop.Hash160Len && runtime.CheckWitness(admin) {
			return
		}
	}

	panic(ErrSuperAdminWitnessFailed)
}

func checkNotFrozen(ctx storage.Context) {
	if isFrozen(ctx) {
		panic(ErrFrozen)
	}
}

func isFrozen(ctx storage.Context) bool {
	return storage.Get(ctx, frozenKey) != nil
}

func checkAccountNotFrozen(ctx storage.Context, account interop.Hash160) {
	if isAccountFrozen(ctx, account) {
		panic(ErrAccountFrozen)
	}
}

func isAccountFrozen(ctx storage.Context, account interop.Hash160) bool {
	return storage.Get(ctx, append([]byte{frozenAccPrefix}, account...)) != nil
}

func checkNotSuperseded(ctx storage.Context) {
	if isSuperseded(ctx) {
		panic(ErrSuperseded)
	}
}

func isSuperseded(ctx storage.Context) bool {
	return storage.Get(ctx, supersededKey) != nil
}

func transfersAllowed(ctx storage.Context) bool {
	return storage.Get(ctx, allowTransfersKey) != nil
}

func totalInCirculation(ctx storage.Context) int {
	circulating := contract.Call(resolveLedger(ctx), "totalInCirculation", contract.ReadOnly).(int)
	unvested := contract.Call(resolveStorage(ctx), "totalUnvestedAndUnreleased", contract.ReadOnly).(int)

	return circulating + unvested
}

func tokensAvailable(ctx storage.Context) int {
	total := contract.Call(resolveLedger(ctx), "totalTokens", contract.ReadOnly).(int)
	return total - totalInCirculation(ctx)
}

func getFoundation(ctx storage.Context) interop.Hash160 {
	data := storage.Get(ctx, foundationKey)
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

// configureFromStorage reads the configuration scalars back from the token
// store contract and rewrites the local mirrors, so after a repoint the sale
// path reflects whatever the new store holds.
func configureFromStorage(ctx storage.Context) {
	storageHash := resolveStorage(ctx)

	storage.Put(ctx, buyPriceKey,
		contract.Call(storageHash, "buyPrice", contract.ReadOnly).(int))
	storage.Put(ctx, circulationCapKey,
		contract.Call(storageHash, "circulationCap", contract.ReadOnly).(int))
	storage.Put(ctx, balanceLimitKey,
		contract.Call(storageHash, "balanceLimit", contract.ReadOnly).(int))
	storage.Put(ctx, contribMinKey,
		contract.Call(storageHash, "contributionMinimum", contract.ReadOnly).(int))

	data := contract.Call(storageHash, "foundation", contract.ReadOnly)
	if data == nil {
		storage.Delete(ctx, foundationKey)
	} else {
		storage.Put(ctx, foundationKey, data.(interop.Hash160))
	}
}

func resolveStorage(ctx storage.Context) interop.Hash160 {
	return common.ResolveContractHash(common.GetString(ctx, storageNameKey))
}

func resolveLedger(ctx storage.Context) interop.Hash160 {
	return common.ResolveContractHash(common.GetString(ctx, ledgerNameKey))
}
