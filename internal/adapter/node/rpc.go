package node

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	rpcErrCodeInsufficientFunds = -6
	rpcErrCodeWalletError       = -4
	rpcErrCodeInvalidTxID       = -5
)

var ErrRPCResponse = errors.New("invalid rpc response")

type rpcRequest struct {
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int64         `json:"id"`
	JSONRpc string        `json:"jsonrpc"`
}

type rpcResponse struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Err    *RPCError       `json:"error"`
}

// RPCError is an error reported by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type RPCClient struct {
	url      string
	user     string
	password string
	client   *http.Client
	nextID   atomic.Int64
}

func NewRPCClient(host string, port int, user, password string) *RPCClient {
	return &RPCClient{
		url:      fmt.Sprintf("http://%s:%d", host, port),
		user:     user,
		password: password,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func newRPCClientFromURL(url, user, password string) *RPCClient {
	return &RPCClient{
		url:      url,
		user:     user,
		password: password,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func call[T any](ctx context.Context, c *RPCClient, method string, params ...interface{}) (T, error) {
	var result T

	if params == nil {
		params = []interface{}{}
	}

	payload := &bytes.Buffer{}
	err := json.NewEncoder(payload).Encode(rpcRequest{Method: method, Params: params, ID: c.nextID.Add(1), JSONRpc: "1.0"})
	if err != nil {
		return result, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, payload)
	if err != nil {
		return result, err
	}

	req.SetBasicAuth(c.user, c.password)
	req.Header.Add("Content-Type", "application/json;charset=utf-8")
	req.Header.Add("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, err
	}

	var response rpcResponse
	err = json.Unmarshal(data, &response)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			return result, errors.Join(ErrRPCResponse, fmt.Errorf("%s: HTTP error: %s", method, resp.Status))
		}
		return result, errors.Join(ErrRPCResponse, fmt.Errorf("%s: %v", method, err))
	}

	if response.Err != nil {
		return result, response.Err
	}

	if resp.StatusCode != http.StatusOK {
		return result, errors.Join(ErrRPCResponse, fmt.Errorf("%s: HTTP error: %s", method, resp.Status))
	}

	err = json.Unmarshal(response.Result, &result)
	if err != nil {
		return result, errors.Join(ErrRPCResponse, fmt.Errorf("failed to unmarshal %s result: %v", method, err))
	}

	return result, nil
}
