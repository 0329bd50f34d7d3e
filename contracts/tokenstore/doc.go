/*
Package tokenstore implements Token Store contract.

Token Store contract holds the mutable state of the Meridian token that must
survive a logic-contract replacement: the token configuration scalars, the
allowance table and the vesting schedule table. Like the ledger, it accepts
mutations only from the contract currently registered under the "token" name
and contains no policy of its own beyond basic argument validation; whitelist
and role checks are the token contract's job.

The vesting table implements linear schedules. A schedule vests nothing
before its cliff date, everything at and after startDate+durationSec and a
linearly interpolated (integer-truncated) amount in between. Revocation
stamps a revoke date which freezes the vested amount at its value as of that
moment. The contract also maintains the total-unvested-and-unreleased
aggregate, which the token contract adds to the ledger circulation to obtain
the effective tokens in circulation.
*/
package tokenstore

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'tokenName' / 'tokenSymbol' -> string
 - 'buyPrice' / 'circulationCap' / 'balanceLimit' / 'contributionMinimum' -> int
 - 'foundation' -> interop.Hash160
   token configuration scalars
 - 'l' + owner + spender -> int
   allowance table; zero allowances are deleted
 - 'v' + interop.Hash160 -> std.Serialize(VestingSchedule)
   vesting schedule of a beneficiary
 - 'i' + index -> interop.Hash160
   insertion-ordered beneficiary enumeration; it only ever grows
 - 's' + interop.Hash160 -> 1
   marks accounts already present in the enumeration
 - 'vestingCount' -> int
   size of the beneficiary enumeration
 - 'totalUnvestedAndUnreleased' -> int
   aggregate amount promised by live schedules but not yet released
*/
