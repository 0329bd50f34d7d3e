package deploy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsErrContractNotFound(t *testing.T) {
	require.True(t, isErrContractNotFound(errors.New("Unknown contract (-102)")))
	require.False(t, isErrContractNotFound(errors.New("connection refused")))
}
