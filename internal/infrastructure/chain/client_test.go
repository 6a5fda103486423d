package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		decimals int
		want     string
	}{
		{"one ether", "0xde0b6b3a7640000", 18, "1"},
		{"fractional", "0x6f05b59d3b20000", 18, "0.5"},
		{"zero", "0x0", 18, "0"},
		{"usdc six decimals", "0x2faf080", 6, "50"},
		{"no scaling", "0xff", 0, "255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatUnits(tt.hex, tt.decimals)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatUnitsInvalidHex(t *testing.T) {
	if _, err := formatUnits("0xzz", 18); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestFetchInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		var result string
		switch req.Method {
		case "eth_getBalance":
			result = "0xde0b6b3a7640000" // 1 native token
		case "eth_call":
			result = "0x2faf080" // 50 USDC at 6 decimals
		default:
			t.Fatalf("unexpected method %s", req.Method)
		}

		json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": result})
	}))
	defer server.Close()

	client := NewClient()
	info, err := client.FetchInfo(context.Background(), WalletWatch{
		Name:    "gas-tank",
		Address: "0x1234567890abcdef1234567890abcdef12345678",
		Chains: []ChainWatch{
			{
				ChainID:        122,
				ChainName:      "Fuse",
				RPCURL:         server.URL,
				GasTokenSymbol: "FUSE",
				GasThreshold:   "10",
				GasDecimals:    18,
				USDCAddress:    "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
				USDCThreshold:  "100",
				USDCDecimals:   6,
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(info.Chains) != 1 {
		t.Fatalf("expected 1 chain, got %d", len(info.Chains))
	}
	if info.Chains[0].GasBalance != "1" {
		t.Errorf("expected gas balance 1, got %q", info.Chains[0].GasBalance)
	}
	if info.Chains[0].USDCBalance != "50" {
		t.Errorf("expected usdc balance 50, got %q", info.Chains[0].USDCBalance)
	}
}

func TestFetchInfoUnreachableRPC(t *testing.T) {
	client := NewClient()
	info, err := client.FetchInfo(context.Background(), WalletWatch{
		Name:    "gas-tank",
		Address: "0x1234567890abcdef1234567890abcdef12345678",
		Chains: []ChainWatch{
			{ChainID: 1, ChainName: "Ethereum", RPCURL: "http://127.0.0.1:1", GasDecimals: 18},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unreachable chains report empty balances instead of failing.
	if info.Chains[0].GasBalance != "" {
		t.Errorf("expected empty gas balance, got %q", info.Chains[0].GasBalance)
	}
}
