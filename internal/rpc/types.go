package rpc

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// request is a JSON-RPC 2.0 request envelope. Requests and responses are
// matched over a single synchronous HTTP exchange, so the ID is fixed.
type request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

// response is a JSON-RPC 2.0 response envelope. Result stays raw because its
// shape depends on the method; decoding is deferred to the caller. Error is
// a pointer so an absent "error" key is distinguishable from a zero-valued one.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Block is the typed view of a block-fetch response. All quantity fields are
// non-nil; absent or malformed wire fields decode to zero.
type Block struct {
	Number       *uint256.Int
	Hash         common.Hash
	ParentHash   common.Hash
	Timestamp    *uint256.Int // seconds since epoch
	GasUsed      *uint256.Int
	GasLimit     *uint256.Int
	Transactions []common.Hash
	Miner        common.Address
	Difficulty   *uint256.Int
	Size         *uint256.Int // bytes
}

// Transaction merges a transaction body with its receipt. GasUsed and Status
// stay nil until a receipt exists, which classifies the transaction as
// pending; a Status of 0 means failed, nonzero means success.
type Transaction struct {
	Hash        common.Hash
	BlockNumber *uint256.Int // nil while pending
	From        common.Address
	To          *common.Address // nil for contract creation
	Value       *uint256.Int    // wei
	Gas         *uint256.Int    // gas limit of the transaction
	GasPrice    *uint256.Int    // wei
	GasUsed     *uint256.Int
	Status      *uint64
}

// Pending reports whether no receipt was available for the transaction.
func (t *Transaction) Pending() bool {
	return t.Status == nil && t.GasUsed == nil
}

// Account is the merged view of the balance, nonce, and code queries for one
// address at one block tag.
type Account struct {
	Address  common.Address
	Balance  *uint256.Int // wei
	Nonce    *uint256.Int
	CodeSize uint64 // bytes of deployed code
}

// IsContract reports whether the account carries deployed code. A zero code
// size means an externally owned account.
func (a *Account) IsContract() bool {
	return a.CodeSize > 0
}
