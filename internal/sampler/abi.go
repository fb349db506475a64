package sampler

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const entrypointABIJSON = `[
  {
    "inputs": [{"internalType": "bytes[]", "name": "callDatas", "type": "bytes[]"}],
    "name": "batchCall",
    "outputs": [
      {
        "components": [
          {"internalType": "bool", "name": "success", "type": "bool"},
          {"internalType": "bytes", "name": "data", "type": "bytes"}
        ],
        "internalType": "struct IQuoteSampler.CallResult[]",
        "name": "callResults",
        "type": "tuple[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address[]", "name": "path", "type": "address[]"},
      {"internalType": "uint256[]", "name": "takerTokenAmounts", "type": "uint256[]"}
    ],
    "name": "sampleSellsFromUniswapV2",
    "outputs": [{"internalType": "uint256[]", "name": "makerTokenAmounts", "type": "uint256[]"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address[]", "name": "path", "type": "address[]"},
      {"internalType": "uint256[]", "name": "makerTokenAmounts", "type": "uint256[]"}
    ],
    "name": "sampleBuysFromUniswapV2",
    "outputs": [{"internalType": "uint256[]", "name": "takerTokenAmounts", "type": "uint256[]"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address[]", "name": "path", "type": "address[]"},
      {"internalType": "uint256[]", "name": "takerTokenAmounts", "type": "uint256[]"}
    ],
    "name": "sampleSellsFromUniswapV3",
    "outputs": [{"internalType": "uint256[]", "name": "makerTokenAmounts", "type": "uint256[]"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address[]", "name": "path", "type": "address[]"},
      {"internalType": "uint256[]", "name": "makerTokenAmounts", "type": "uint256[]"}
    ],
    "name": "sampleBuysFromUniswapV3",
    "outputs": [{"internalType": "uint256[]", "name": "takerTokenAmounts", "type": "uint256[]"}],
    "stateMutability": "view",
    "type": "function"
  }
]`

var (
	entrypointABI     abi.ABI
	entrypointABIOnce sync.Once
	entrypointABIErr  error
)

// EntrypointABI returns the parsed sampler entrypoint ABI.
func EntrypointABI() (abi.ABI, error) {
	entrypointABIOnce.Do(func() {
		entrypointABI, entrypointABIErr = abi.JSON(strings.NewReader(entrypointABIJSON))
	})
	return entrypointABI, entrypointABIErr
}

// PackBatchCall encodes a batchCall payload wrapping the given call datas.
func PackBatchCall(callDatas [][]byte) ([]byte, error) {
	entryABI, err := EntrypointABI()
	if err != nil {
		return nil, fmt.Errorf("parse entrypoint abi: %w", err)
	}
	payload, err := entryABI.Pack("batchCall", callDatas)
	if err != nil {
		return nil, fmt.Errorf("pack batchCall: %w", err)
	}
	return payload, nil
}

// UnpackBatchCall decodes a batchCall return value into per-slot results.
func UnpackBatchCall(raw []byte) ([]CallResult, error) {
	entryABI, err := EntrypointABI()
	if err != nil {
		return nil, fmt.Errorf("parse entrypoint abi: %w", err)
	}
	values, err := entryABI.Methods["batchCall"].Outputs.Unpack(raw)
	if err != nil {
		return nil, fmt.Errorf("unpack batchCall: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected batchCall values: %d", len(values))
	}
	results := *abi.ConvertType(values[0], new([]CallResult)).(*[]CallResult)
	return results, nil
}
