package chain

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWatches reads the operational wallet watch list from a JSON file.
// The file is an array of WalletWatch objects.
func LoadWatches(path string) ([]WalletWatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read watch file: %w", err)
	}

	var watches []WalletWatch
	if err := json.Unmarshal(data, &watches); err != nil {
		return nil, fmt.Errorf("failed to parse watch file: %w", err)
	}

	for i, w := range watches {
		if w.Address == "" {
			return nil, fmt.Errorf("watch %d: address is required", i)
		}
		if w.Name == "" {
			return nil, fmt.Errorf("watch %d: name is required", i)
		}
		for j, cw := range w.Chains {
			if cw.RPCURL == "" {
				return nil, fmt.Errorf("watch %d chain %d: rpcUrl is required", i, j)
			}
			if cw.ChainID == 0 {
				return nil, fmt.Errorf("watch %d chain %d: chainId is required", i, j)
			}
		}
	}

	return watches, nil
}
