package tokenstore

import (
	"github.com/meridian-token/meridian-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// VestingSchedule is a linear release plan of a single beneficiary. All
// dates are UNIX seconds. A zero RevokeDate means the schedule is live.
type VestingSchedule struct {
	StartDate         int
	CliffDate         int
	DurationSec       int
	FullyVestedAmount int
	ReleasedAmount    int
	RevokeDate        int
	IsRevocable       bool
}

const (
	allowancePrefix   = 'l'
	vestingPrefix     = 'v'
	vestingIdxPrefix  = 'i'
	vestingSeenPrefix = 's'

	tokenNameKey      = "tokenName"
	tokenSymbolKey    = "tokenSymbol"
	buyPriceKey       = "buyPrice"
	circulationCapKey = "circulationCap"
	balanceLimitKey   = "balanceLimit"
	contribMinKey     = "contributionMinimum"
	foundationKey     = "foundation"

	vestingCountKey  = "vestingCount"
	totalUnvestedKey = "totalUnvestedAndUnreleased"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("token store contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token store contract updated")
}

// SetConfiguration stores the whole token configuration. It can be invoked
// only by the registered token contract.
func SetConfiguration(name, symbol string, buyPrice, circulationCap, balanceLimit, contributionMinimum int, foundation interop.Hash160) {
	common.CheckTokenContract()

	ctx := storage.GetContext()
	storage.Put(ctx, tokenNameKey, name)
	storage.Put(ctx, tokenSymbolKey, symbol)
	storage.Put(ctx, buyPriceKey, buyPrice)
	storage.Put(ctx, circulationCapKey, circulationCap)
	storage.Put(ctx, balanceLimitKey, balanceLimit)
	storage.Put(ctx, contribMinKey, contributionMinimum)
	storage.Put(ctx, foundationKey, foundation)
}

// SetContributionMinimum stores the minimum resulting balance a purchase
// must produce. It can be invoked only by the registered token contract.
func SetContributionMinimum(value int) {
	common.CheckTokenContract()

	if value < 0 {
		panic("negative contribution minimum")
	}

	storage.Put(storage.GetContext(), contribMinKey, value)
}

// TokenName returns the stored token name.
func TokenName() string {
	return common.GetString(storage.GetReadOnlyContext(), tokenNameKey)
}

// TokenSymbol returns the stored token symbol.
func TokenSymbol() string {
	return common.GetString(storage.GetReadOnlyContext(), tokenSymbolKey)
}

// BuyPrice returns the stored price (in GAS fractions) of one token unit.
func BuyPrice() int {
	return common.GetInt(storage.GetReadOnlyContext(), buyPriceKey)
}

// CirculationCap returns the stored circulation cap.
func CirculationCap() int {
	return common.GetInt(storage.GetReadOnlyContext(), circulationCapKey)
}

// BalanceLimit returns the stored default per-account holding cap.
func BalanceLimit() int {
	return common.GetInt(storage.GetReadOnlyContext(), balanceLimitKey)
}

// ContributionMinimum returns the stored minimum resulting purchase balance.
func ContributionMinimum() int {
	return common.GetInt(storage.GetReadOnlyContext(), contribMinKey)
}

// Foundation returns the stored treasury account.
func Foundation() interop.Hash160 {
	data := storage.Get(storage.GetReadOnlyContext(), foundationKey)
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

// Allowance returns the amount spender is still allowed to transfer on
// behalf of owner.
func Allowance(owner, spender interop.Hash160) int {
	return common.GetInt(storage.GetReadOnlyContext(), allowanceKey(owner, spender))
}

// SetAllowance stores the allowance of spender over owner's tokens. It can
// be invoked only by the registered token contract.
func SetAllowance(owner, spender interop.Hash160, value int) {
	common.CheckTokenContract()

	if value < 0 {
		panic("negative allowance")
	}

	key := allowanceKey(owner, spender)
	ctx := storage.GetContext()
	if value == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, value)
	}
}

// SetVestingSchedule stores a new vesting schedule for the beneficiary,
// replacing any previous one. Outstanding (unreleased) tokens of a replaced
// schedule leave the unvested aggregate. It can be invoked only by the
// registered token contract, which is responsible for double-grant policy.
func SetVestingSchedule(beneficiary interop.Hash160, fullyVestedAmount, startDate, cliffSec, durationSec int, isRevocable bool) {
	common.CheckTokenContract()

	if len(beneficiary) != interop.Hash160Len {
		panic("bad beneficiary script hash")
	}
	if fullyVestedAmount <= 0 {
		panic("amount must be positive")
	}
	if durationSec < cliffSec {
		panic("duration shorter than cliff")
	}
	if startDate == 0 {
		startDate = now()
	}

	ctx := storage.GetContext()
	aggregate := common.GetInt(ctx, totalUnvestedKey)

	old := getSchedule(ctx, beneficiary)
	if old.FullyVestedAmount != 0 && old.RevokeDate == 0 {
		aggregate -= old.FullyVestedAmount - old.ReleasedAmount
	}

	sched := VestingSchedule{
		StartDate:         startDate,
		CliffDate:         startDate + cliffSec,
		DurationSec:       durationSec,
		FullyVestedAmount: fullyVestedAmount,
		ReleasedAmount:    0,
		RevokeDate:        0,
		IsRevocable:       isRevocable,
	}
	common.SetSerialized(ctx, vestingKey(beneficiary), sched)
	storage.Put(ctx, totalUnvestedKey, aggregate+fullyVestedAmount)

	indexBeneficiary(ctx, beneficiary)
}

// GetVestingSchedule returns the stored schedule of the beneficiary. All
// fields are zero if there is none.
func GetVestingSchedule(beneficiary interop.Hash160) VestingSchedule {
	return getSchedule(storage.GetReadOnlyContext(), beneficiary)
}

// VestedAmount returns the amount of the beneficiary's grant vested by now:
// zero before the cliff, the full amount after the vesting duration, a
// linear interpolation in between. A revoked schedule is frozen at the
// amount vested at revocation time.
func VestedAmount(beneficiary interop.Hash160) int {
	sched := getSchedule(storage.GetReadOnlyContext(), beneficiary)
	return vestedAt(sched, now())
}

// VestedAvailableAmount returns the vested but not yet released amount of
// the beneficiary's grant.
func VestedAvailableAmount(beneficiary interop.Hash160) int {
	sched := getSchedule(storage.GetReadOnlyContext(), beneficiary)
	return vestedAt(sched, now()) - sched.ReleasedAmount
}

// ReleasableAmount is an alias of [VestedAvailableAmount] matching the
// release operation wording.
func ReleasableAmount(beneficiary interop.Hash160) int {
	return VestedAvailableAmount(beneficiary)
}

// ReleaseVestedTokens moves the currently releasable amount of the
// beneficiary's schedule into its released counter and returns that amount.
// Zero releasable is not an error, the call is a no-op then. It can be
// invoked only by the registered token contract, which performs the
// corresponding ledger move.
func ReleaseVestedTokens(beneficiary interop.Hash160) int {
	common.CheckTokenContract()

	ctx := storage.GetContext()
	sched := getSchedule(ctx, beneficiary)

	releasable := vestedAt(sched, now()) - sched.ReleasedAmount
	if releasable <= 0 {
		return 0
	}

	sched.ReleasedAmount += releasable
	common.SetSerialized(ctx, vestingKey(beneficiary), sched)

	if sched.RevokeDate == 0 {
		aggregate := common.GetInt(ctx, totalUnvestedKey)
		storage.Put(ctx, totalUnvestedKey, aggregate-releasable)
	}

	return releasable
}

// RevokeVesting stamps the beneficiary's schedule as revoked, freezing its
// vested amount at the current value. The not-yet-vested remainder leaves
// the unvested aggregate and thereby returns to the sellable pool. It can
// be invoked only by the registered token contract.
func RevokeVesting(beneficiary interop.Hash160) {
	common.CheckTokenContract()

	ctx := storage.GetContext()
	sched := getSchedule(ctx, beneficiary)

	if sched.FullyVestedAmount == 0 {
		panic("no vesting schedule")
	}
	if !sched.IsRevocable {
		panic("schedule is not revocable")
	}
	if sched.RevokeDate != 0 {
		panic("schedule is already revoked")
	}

	sched.RevokeDate = now()
	common.SetSerialized(ctx, vestingKey(beneficiary), sched)

	aggregate := common.GetInt(ctx, totalUnvestedKey)
	storage.Put(ctx, totalUnvestedKey, aggregate-(sched.FullyVestedAmount-sched.ReleasedAmount))
}

// TotalUnvestedAndUnreleased returns the aggregate amount promised by live
// schedules but not yet released to their beneficiaries.
func TotalUnvestedAndUnreleased() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalUnvestedKey)
}

// VestingCount returns the number of accounts that have ever had a vesting
// schedule. The enumeration index never shrinks.
func VestingCount() int {
	return common.GetInt(storage.GetReadOnlyContext(), vestingCountKey)
}

// VestingBeneficiary returns the beneficiary at the given index of the
// enumeration, in grant order.
func VestingBeneficiary(index int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{vestingIdxPrefix}, convert.ToBytes(index)...))
	if data == nil {
		panic("index out of range")
	}

	return data.(interop.Hash160)
}

// VestingBeneficiaries iterates over all indexed beneficiaries.
func VestingBeneficiaries() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{vestingIdxPrefix}, storage.ValuesOnly)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func now() int {
	return runtime.GetTime() / 1000
}

func vestedAt(sched VestingSchedule, at int) int {
	if sched.FullyVestedAmount == 0 {
		return 0
	}

	if sched.RevokeDate != 0 && at > sched.RevokeDate {
		at = sched.RevokeDate
	}

	if at < sched.CliffDate {
		return 0
	}
	if at >= sched.StartDate+sched.DurationSec {
		return sched.FullyVestedAmount
	}

	return sched.FullyVestedAmount * (at - sched.StartDate) / sched.DurationSec
}

func getSchedule(ctx storage.Context, beneficiary interop.Hash160) VestingSchedule {
	data := storage.Get(ctx, vestingKey(beneficiary))
	if data != nil {
		return std.Deserialize(data.([]byte)).(VestingSchedule)
	}

	return VestingSchedule{}
}

func indexBeneficiary(ctx storage.Context, beneficiary interop.Hash160) {
	seenKey := append([]byte{vestingSeenPrefix}, beneficiary...)
	if storage.Get(ctx, seenKey) != nil {
		return
	}

	count := common.GetInt(ctx, vestingCountKey)
	storage.Put(ctx, append([]byte{vestingIdxPrefix}, convert.ToBytes(count)...), beneficiary)
	storage.Put(ctx, vestingCountKey, count+1)
	storage.Put(ctx, seenKey, []byte{1})
}

func vestingKey(beneficiary interop.Hash160) []byte {
	return append([]byte{vestingPrefix}, beneficiary...)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}
