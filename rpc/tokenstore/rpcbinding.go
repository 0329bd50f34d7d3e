// Package tokenstore contains RPC wrappers for Meridian Token Store contract.
package tokenstore

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// VestingSchedule is a contract-specific tokenstore.VestingSchedule type used by its methods.
type VestingSchedule struct {
	StartDate         *big.Int
	CliffDate         *big.Int
	DurationSec       *big.Int
	FullyVestedAmount *big.Int
	ReleasedAmount    *big.Int
	RevokeDate        *big.Int
	IsRevocable       bool
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// Allowance invokes `allowance` method of contract.
func (c *ContractReader) Allowance(owner util.Uint160, spender util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "allowance", owner, spender))
}

// BalanceLimit invokes `balanceLimit` method of contract.
func (c *ContractReader) BalanceLimit() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceLimit"))
}

// BuyPrice invokes `buyPrice` method of contract.
func (c *ContractReader) BuyPrice() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "buyPrice"))
}

// CirculationCap invokes `circulationCap` method of contract.
func (c *ContractReader) CirculationCap() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "circulationCap"))
}

// ContributionMinimum invokes `contributionMinimum` method of contract.
func (c *ContractReader) ContributionMinimum() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "contributionMinimum"))
}

// Foundation invokes `foundation` method of contract.
func (c *ContractReader) Foundation() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "foundation"))
}

// GetVestingSchedule invokes `getVestingSchedule` method of contract.
func (c *ContractReader) GetVestingSchedule(beneficiary util.Uint160) (*VestingSchedule, error) {
	return itemToVestingSchedule(unwrap.Item(c.invoker.Call(c.hash, "getVestingSchedule", beneficiary)))
}

// ReleasableAmount invokes `releasableAmount` method of contract.
func (c *ContractReader) ReleasableAmount(beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "releasableAmount", beneficiary))
}

// TokenName invokes `tokenName` method of contract.
func (c *ContractReader) TokenName() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "tokenName"))
}

// TokenSymbol invokes `tokenSymbol` method of contract.
func (c *ContractReader) TokenSymbol() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "tokenSymbol"))
}

// TotalUnvestedAndUnreleased invokes `totalUnvestedAndUnreleased` method of contract.
func (c *ContractReader) TotalUnvestedAndUnreleased() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalUnvestedAndUnreleased"))
}

// VestedAmount invokes `vestedAmount` method of contract.
func (c *ContractReader) VestedAmount(beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "vestedAmount", beneficiary))
}

// VestedAvailableAmount invokes `vestedAvailableAmount` method of contract.
func (c *ContractReader) VestedAvailableAmount(beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "vestedAvailableAmount", beneficiary))
}

// VestingBeneficiaries invokes `vestingBeneficiaries` method of contract.
func (c *ContractReader) VestingBeneficiaries() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "vestingBeneficiaries"))
}

// VestingBeneficiariesExpanded is similar to VestingBeneficiaries (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) VestingBeneficiariesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "vestingBeneficiaries", _numOfIteratorItems))
}

// VestingBeneficiary invokes `vestingBeneficiary` method of contract.
func (c *ContractReader) VestingBeneficiary(index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "vestingBeneficiary", index))
}

// VestingCount invokes `vestingCount` method of contract.
func (c *ContractReader) VestingCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "vestingCount"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// itemToVestingSchedule converts stack item into *VestingSchedule.
func itemToVestingSchedule(item stackitem.Item, err error) (*VestingSchedule, error) {
	if err != nil {
		return nil, err
	}
	var res = new(VestingSchedule)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of VestingSchedule from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *VestingSchedule) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.StartDate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StartDate: %w", err)
	}

	index++
	res.CliffDate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CliffDate: %w", err)
	}

	index++
	res.DurationSec, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DurationSec: %w", err)
	}

	index++
	res.FullyVestedAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FullyVestedAmount: %w", err)
	}

	index++
	res.ReleasedAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReleasedAmount: %w", err)
	}

	index++
	res.RevokeDate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RevokeDate: %w", err)
	}

	index++
	res.IsRevocable, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field IsRevocable: %w", err)
	}

	return nil
}
