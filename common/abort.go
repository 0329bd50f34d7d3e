package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// FoundationDepositMarker is a payment data payload that routes an incoming
// GAS transfer to the treasury instead of the token sale path.
const FoundationDepositMarker = "\x4d\x44"

// AbortWithMessage calls `runtime.Log` with passed message
// and calls `ABORT` opcode.
func AbortWithMessage(msg string) {
	runtime.Log(msg)
	util.Abort()
}
