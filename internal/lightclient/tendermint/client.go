package tendermint

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	cmtjson "github.com/cometbft/cometbft/libs/json"
	tmhttp "github.com/cometbft/cometbft/rpc/client/http"
	ctypes "github.com/cometbft/cometbft/rpc/core/types"
	jsonrpcclient "github.com/cometbft/cometbft/rpc/jsonrpc/client"
	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/relay"
)

var (
	rtyAttNum = uint(5)
	rtyAtt    = retry.Attempts(rtyAttNum)
	rtyDel    = retry.Delay(time.Millisecond * 400)
	rtyErr    = retry.LastErrorOnly(true)
)

// Client observes a CometBFT chain through its RPC. The proof payload is
// the JSON serialized signed header of the latest committed block, the root
// is the app hash from the same header. It implements relay.Proofer.
type Client struct {
	rpcClient RPCClient
	logger    *zap.Logger
}

func NewClient(rpcClient RPCClient, logger *zap.Logger) *Client {
	return &Client{
		rpcClient: rpcClient,
		logger:    logger,
	}
}

// NewRPCClient creates a CometBFT RPC http client with the given timeout.
func NewRPCClient(rpcAddr string, timeout time.Duration) (*tmhttp.HTTP, error) {
	httpClient, err := jsonrpcclient.DefaultHTTPClient(rpcAddr)
	if err != nil {
		return nil, err
	}
	httpClient.Timeout = timeout
	rpcClient, err := tmhttp.NewWithClient(rpcAddr, "/websocket", httpClient)
	if err != nil {
		return nil, err
	}
	return rpcClient, nil
}

// FetchLatestState reads the node status and the commit at the reported
// height. Each RPC read is retried a few times inside the call, the poll
// loop still sees exactly one fetch per cycle.
func (c *Client) FetchLatestState(ctx context.Context) (*relay.ChainState, error) {
	var status *ctypes.ResultStatus
	if err := retry.Do(func() error {
		var err error
		status, err = c.rpcClient.Status(ctx)
		return err
	}, retry.Context(ctx), rtyAtt, rtyDel, rtyErr, retry.OnRetry(func(n uint, err error) {
		c.logger.Debug("failed to get node status", zap.Uint("attempt", n+1), zap.Error(err))
	})); err != nil {
		return nil, fmt.Errorf("failed to get node status: %w", err)
	}

	height := status.SyncInfo.LatestBlockHeight
	if height <= 0 {
		return nil, fmt.Errorf("node has no committed blocks yet")
	}

	var commit *ctypes.ResultCommit
	if err := retry.Do(func() error {
		var err error
		commit, err = c.rpcClient.Commit(ctx, &height)
		return err
	}, retry.Context(ctx), rtyAtt, rtyDel, rtyErr, retry.OnRetry(func(n uint, err error) {
		c.logger.Debug("failed to get commit",
			zap.Int64("height", height), zap.Uint("attempt", n+1), zap.Error(err))
	})); err != nil {
		return nil, fmt.Errorf("failed to get commit for height %d: %w", height, err)
	}

	payload, err := cmtjson.Marshal(commit.SignedHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal signed header: %w", err)
	}

	return &relay.ChainState{
		Payload:    payload,
		Height:     uint64(commit.Header.Height),
		Root:       commit.Header.AppHash,
		ObservedAt: time.Now(),
	}, nil
}
