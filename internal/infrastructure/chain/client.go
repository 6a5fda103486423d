package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"solidadmin/internal/domain/wallet"
)

const (
	defaultTimeout = 30 * time.Second

	// ERC-20 balanceOf(address) selector
	balanceOfSelector = "0x70a08231"
)

// ChainWatch describes one chain to poll for an operational wallet.
type ChainWatch struct {
	ChainID        int64  `json:"chainId"`
	ChainName      string `json:"chainName"`
	RPCURL         string `json:"rpcUrl"`
	GasTokenSymbol string `json:"gasTokenSymbol"`
	GasThreshold   string `json:"gasThreshold"`
	GasDecimals    int    `json:"gasDecimals"`
	USDCAddress    string `json:"usdcAddress"`
	USDCThreshold  string `json:"usdcThreshold"`
	USDCDecimals   int    `json:"usdcDecimals"`
}

// WalletWatch is an operational wallet and the chains it is monitored on.
type WalletWatch struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Address     string       `json:"address"`
	Chains      []ChainWatch `json:"chains"`
}

// Client polls EVM JSON-RPC endpoints for native and USDC balances.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FetchInfo reads current balances for every chain the wallet is watched on.
// A failing chain yields empty balance strings (classified N/A downstream)
// rather than failing the whole snapshot.
func (c *Client) FetchInfo(ctx context.Context, watch WalletWatch) (*wallet.Info, error) {
	info := &wallet.Info{
		Name:        watch.Name,
		Description: watch.Description,
		Address:     watch.Address,
	}

	for _, cw := range watch.Chains {
		cb := wallet.ChainBalance{
			ChainID:        cw.ChainID,
			ChainName:      cw.ChainName,
			GasThreshold:   cw.GasThreshold,
			GasTokenSymbol: cw.GasTokenSymbol,
			USDCThreshold:  cw.USDCThreshold,
			USDCAddress:    cw.USDCAddress,
		}

		if gas, err := c.nativeBalance(ctx, cw.RPCURL, watch.Address, cw.GasDecimals); err == nil {
			cb.GasBalance = gas
		}
		if cw.USDCAddress != "" {
			if usdc, err := c.tokenBalance(ctx, cw.RPCURL, cw.USDCAddress, watch.Address, cw.USDCDecimals); err == nil {
				cb.USDCBalance = usdc
			}
		}

		info.Chains = append(info.Chains, cb)
	}

	return info, nil
}

func (c *Client) nativeBalance(ctx context.Context, rpcURL, address string, decimals int) (string, error) {
	result, err := c.call(ctx, rpcURL, "eth_getBalance", []any{address, "latest"})
	if err != nil {
		return "", err
	}
	return formatUnits(result, decimals)
}

func (c *Client) tokenBalance(ctx context.Context, rpcURL, token, holder string, decimals int) (string, error) {
	data := balanceOfSelector + fmt.Sprintf("%064s", strings.TrimPrefix(strings.ToLower(holder), "0x"))
	result, err := c.call(ctx, rpcURL, "eth_call", []any{
		map[string]string{"to": token, "data": data},
		"latest",
	})
	if err != nil {
		return "", err
	}
	return formatUnits(result, decimals)
}

func (c *Client) call(ctx context.Context, rpcURL, method string, params []any) (string, error) {
	payload, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1})
	if err != nil {
		return "", fmt.Errorf("failed to marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rpcURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("rpc call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read rpc response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rpc returned status %d: %s", resp.StatusCode, body)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return "", fmt.Errorf("failed to parse rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		return "", fmt.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	return rpcResp.Result, nil
}

// formatUnits converts a hex-encoded integer to a decimal string scaled by
// 10^decimals, e.g. 0xde0b6b3a7640000 with 18 decimals -> "1".
func formatUnits(hexValue string, decimals int) (string, error) {
	value, ok := new(big.Int).SetString(strings.TrimPrefix(hexValue, "0x"), 16)
	if !ok {
		return "", fmt.Errorf("invalid hex value %q", hexValue)
	}

	if decimals <= 0 {
		return value.String(), nil
	}

	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	scaled := new(big.Float).Quo(new(big.Float).SetInt(value), scale)

	return strings.TrimRight(strings.TrimRight(scaled.Text('f', 6), "0"), "."), nil
}
