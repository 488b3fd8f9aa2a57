// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package jsonapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"
)

// HttpError is returned for any non 200 response. Receipt is set when the node executed the transaction
// and rejected it.
type HttpError struct {
	Code    int
	Message string
	Receipt *TransactionReceipt
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("got unexpected http status code %d: %s", e.Code, e.Message)
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient talks to a node at endpoint, e.g. http://localhost:8080.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) SendTransaction(ctx context.Context, tx *runtime.Transaction) (*TransactionReceipt, error) {
	raw := runtime.EncodeTransaction(tx)

	receipt := &TransactionReceipt{}
	err := c.post(ctx, "/api/v1/send-transaction", &SendTransactionRequest{Transaction: base64.StdEncoding.EncodeToString(raw)}, receipt)
	if httpErr, ok := err.(*HttpError); ok && httpErr.Receipt != nil {
		return httpErr.Receipt, err
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (c *Client) GetTransactionReceipt(ctx context.Context, txHash string) (*TransactionReceipt, error) {
	receipt := &TransactionReceipt{}
	if err := c.get(ctx, "/api/v1/transaction-receipt", url.Values{"tx_hash": {txHash}}, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (c *Client) GetAccount(ctx context.Context, addr address.Address) (*Account, error) {
	account := &Account{}
	if err := c.get(ctx, "/api/v1/account", url.Values{"address": {addr.String()}}, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *Client) GetLinkboard(ctx context.Context, addr address.Address) (*Linkboard, error) {
	board := &Linkboard{}
	if err := c.get(ctx, "/api/v1/linkboard", url.Values{"address": {addr.String()}}, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (c *Client) Airdrop(ctx context.Context, addr address.Address, lamports uint64) (*AirdropResponse, error) {
	res := &AirdropResponse{}
	if err := c.post(ctx, "/api/v1/airdrop", &AirdropRequest{Address: addr, Lamports: lamports}, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GetStatus(ctx context.Context) (*Status, error) {
	status := &Status{}
	if err := c.get(ctx, "/api/v1/status", nil, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request")
	}
	req, err := http.NewRequest(http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, req, out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.endpoint + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, req *http.Request, out interface{}) error {
	res, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", req.Method, req.URL.Path)
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(io.LimitReader(res.Body, 16*1024*1024))
	if err != nil {
		return errors.Wrap(err, "failed reading response body")
	}

	if res.StatusCode != http.StatusOK {
		return decodeHttpError(res.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "invalid response from %s", req.URL.Path)
	}
	return nil
}

func decodeHttpError(code int, body []byte) *HttpError {
	httpErr := &HttpError{Code: code, Message: string(body)}

	receipt := &TransactionReceipt{}
	if err := json.Unmarshal(body, receipt); err == nil && receipt.Status != "" {
		httpErr.Receipt = receipt
		httpErr.Message = receipt.Status
		if receipt.Error != "" {
			httpErr.Message += ": " + receipt.Error
		}
		return httpErr
	}

	errorResponse := &ErrorResponse{}
	if err := json.Unmarshal(body, errorResponse); err == nil && errorResponse.Error != "" {
		httpErr.Message = errorResponse.Error
	}
	return httpErr
}
