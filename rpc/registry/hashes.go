package registry

import (
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// ID is the default registry contract ID in all Meridian networks. Meridian
// networks always deploy the registry first and can't work without it,
// therefore it always gets an ID of 1.
const ID = 1

// ContractStateGetter is the interface required for contract state resolution
// using a known contract ID.
type ContractStateGetter interface {
	GetContractStateByID(int32) (*state.Contract, error)
}

// InferHash simplifies resolving the registry contract hash in existing
// Meridian networks. It assumes that the registry follows [ID] assignment
// assumptions which likely won't be the case for any non-Meridian network.
func InferHash(sg ContractStateGetter) (util.Uint160, error) {
	c, err := sg.GetContractStateByID(ID)
	if err != nil {
		return util.Uint160{}, err
	}

	return c.Hash, nil
}
