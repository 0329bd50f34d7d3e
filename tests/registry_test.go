package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func newRegistryInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployDefaultContract(t, e, registryPath, nil)
	return e.CommitteeInvoker(h)
}

func TestRegistryRegister(t *testing.T) {
	c := newRegistryInvoker(t)

	hash := util.Uint160{1, 2, 3}
	c.Invoke(t, stackitem.Null{}, "register", "ledger", hash)

	st, err := c.TestInvoke(t, "resolve", "ledger")
	require.NoError(t, err)
	require.Equal(t, hash.BytesBE(), st.Pop().Bytes())

	c.InvokeFail(t, "unknown name", "resolve", "tokenstore")
	c.InvokeFail(t, "empty name", "register", "", hash)
	c.InvokeFail(t, "incorrect contract script hash length", "register", "ledger", []byte{1, 2, 3})

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, "committee witness check failed", "register", "ledger", hash)
}

func TestRegistryRepoint(t *testing.T) {
	c := newRegistryInvoker(t)

	oldHash := util.Uint160{1, 2, 3}
	newHash := util.Uint160{4, 5, 6}

	c.Invoke(t, stackitem.Null{}, "register", "token", oldHash)
	c.Invoke(t, stackitem.Null{}, "register", "token", newHash)

	st, err := c.TestInvoke(t, "resolve", "token")
	require.NoError(t, err)
	require.Equal(t, newHash.BytesBE(), st.Pop().Bytes())
}

func TestRegistryRecords(t *testing.T) {
	c := newRegistryInvoker(t)

	c.Invoke(t, stackitem.Null{}, "register", "ledger", util.Uint160{1})
	c.Invoke(t, stackitem.Null{}, "register", "token", util.Uint160{2})

	st, err := c.TestInvoke(t, "records")
	require.NoError(t, err)

	iter, ok := st.Pop().Value().(*storage.Iterator)
	require.True(t, ok)
	require.Len(t, iteratorToArray(iter), 2)
}
