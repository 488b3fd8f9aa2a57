// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package jsonapi

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func serveBody(code int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		w.Write([]byte(body))
	}))
}

func TestDecodeHttpError_Receipt(t *testing.T) {
	e := decodeHttpError(http.StatusConflict, []byte(`{"tx_hash":"ab","slot":0,"status":"REJECTED_DUPLICATE","error":"seen before"}`))

	require.Equal(t, http.StatusConflict, e.Code)
	require.NotNil(t, e.Receipt)
	require.Equal(t, "REJECTED_DUPLICATE", e.Receipt.Status)
	require.Equal(t, "REJECTED_DUPLICATE: seen before", e.Message)
}

func TestDecodeHttpError_ErrorResponse(t *testing.T) {
	e := decodeHttpError(http.StatusNotFound, []byte(`{"error":"linkboard not found"}`))

	require.Nil(t, e.Receipt)
	require.Equal(t, "linkboard not found", e.Message)
	require.Contains(t, e.Error(), "404")
}

func TestDecodeHttpError_PlainText(t *testing.T) {
	e := decodeHttpError(http.StatusBadGateway, []byte("upstream down"))

	require.Nil(t, e.Receipt)
	require.Equal(t, "upstream down", e.Message)
}

func TestClient_GetLinkboard(t *testing.T) {
	store := address.Derive("store")
	server := serveBody(http.StatusOK, `{"address":"`+store.String()+`","total_count":1,"entries":[{"link":"a.gif","submitter":"`+store.String()+`"}]}`)
	defer server.Close()

	board, err := NewClient(server.URL, time.Second).GetLinkboard(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, &Linkboard{
		Address:    store,
		TotalCount: 1,
		Entries:    []Entry{{Link: "a.gif", Submitter: store}},
	}, board)
}

func TestClient_InvalidResponse(t *testing.T) {
	server := serveBody(http.StatusOK, "not json")
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).GetStatus(context.Background())
	require.Error(t, err)
	_, isHttpErr := err.(*HttpError)
	require.False(t, isHttpErr, "a 200 with a bad body is not an http error")
}

func TestClient_Unreachable(t *testing.T) {
	server := serveBody(http.StatusOK, "{}")
	server.Close()

	_, err := NewClient(server.URL, time.Second).GetStatus(context.Background())
	require.Error(t, err)
}
