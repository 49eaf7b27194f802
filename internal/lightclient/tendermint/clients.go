package tendermint

import (
	"context"

	ctypes "github.com/cometbft/cometbft/rpc/core/types"
)

// RPCClient is the slice of the CometBFT RPC the light client reads from.
type RPCClient interface {
	Status(ctx context.Context) (*ctypes.ResultStatus, error)
	Commit(ctx context.Context, height *int64) (*ctypes.ResultCommit, error)
}
