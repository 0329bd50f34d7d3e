package tokenconst

// Meridian tokens are indivisible units, there is no fractional part.
const Decimals = 0

// Default logical names the token contract resolves its collaborators by.
// UpdateStorage repoints them at runtime.
const (
	DefaultLedgerName  = "ledger"
	DefaultStorageName = "tokenstore"
)
