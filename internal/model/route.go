package model

import "github.com/ethereum/go-ethereum/common"

// Route describes one quote request: a liquidity source plus an ordered
// token path of at least two addresses.
type Route struct {
	Source Source
	Path   []common.Address
}
