package model

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Sample is one observed quote: the input amount sent to a source and
// the output amount it returned.
type Sample struct {
	Source Source   `json:"source"`
	Input  *big.Int `json:"input"`
	Output *big.Int `json:"output"`
}

type sampleJSON struct {
	Source Source `json:"source"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// MarshalJSON encodes the amounts as decimal strings.
func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal(sampleJSON{
		Source: s.Source,
		Input:  bigString(s.Input),
		Output: bigString(s.Output),
	})
}

// UnmarshalJSON decodes the decimal string amounts.
func (s *Sample) UnmarshalJSON(data []byte) error {
	var raw sampleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	input, err := parseBig(raw.Input)
	if err != nil {
		return fmt.Errorf("sample input: %w", err)
	}
	output, err := parseBig(raw.Output)
	if err != nil {
		return fmt.Errorf("sample output: %w", err)
	}

	s.Source = raw.Source
	s.Input = input
	s.Output = output
	return nil
}

func bigString(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return value.String()
}

func parseBig(text string) (*big.Int, error) {
	if text == "" {
		return big.NewInt(0), nil
	}
	value, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount: %s", text)
	}
	return value, nil
}

// SampleBatch groups the samples observed for one route at one block,
// the unit written to storage.
type SampleBatch struct {
	ChainID     uint64   `json:"chain_id"`
	BlockNumber uint64   `json:"block_number"`
	Side        string   `json:"side"`
	Source      Source   `json:"source"`
	TokenIn     string   `json:"token_in"`
	TokenOut    string   `json:"token_out"`
	Samples     []Sample `json:"samples"`
	SampledAt   string   `json:"sampled_at"`
}
