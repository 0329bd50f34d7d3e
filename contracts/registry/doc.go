/*
Package registry implements Registry contract.

Registry contract maps logical contract names to the hashes of the contracts
currently serving them. It is deployed first in a Meridian network, so it
always has contract ID 1 and can be located without any configuration. Other
contracts resolve names through it on every call, which makes repointing a
name (committee operation) an instant hot-swap: account history stays in the
ledger and token store contracts while the logic contract is replaced.

# Contract notifications

Registered notification. Produced on every (re-)binding of a name.

	Registered:
	  - name: name
	    type: String
	  - name: hash
	    type: Hash160
*/
package registry

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'r' + logical name -> interop.Hash160
   contract hash bound to the name

# Registry
Contract stores hashes of all contracts of the Meridian suite keyed by their
logical names ("token", "ledger", "tokenstore").
*/
