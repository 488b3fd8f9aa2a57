// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"encoding/json"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/jsonapi"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
	"github.com/orbs-network/orbs-linkboard-go/services/processor/linkboard"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"time"
)

var LogTag = log.String("adapter", "http-server")

const maxRequestBodyBytes = 1024 * 1024

type httpErr struct {
	code     int
	logField *log.Field
	message  string
}

type Runtime interface {
	Execute(ctx context.Context, tx *runtime.Transaction) (*runtime.Receipt, error)
	GetReceipt(txHash primitives.Sha256) (*runtime.Receipt, bool)
	LastCommittedSlot() primitives.BlockHeight
	Airdrop(ctx context.Context, to address.Address, lamports uint64) (primitives.BlockHeight, error)
}

type AccountReader interface {
	ReadAccount(ctx context.Context, addr address.Address) (*accountstorage.Account, error)
}

type StoreReader interface {
	GetStore(ctx context.Context, addr address.Address) (*linkboard.Store, error)
}

type HttpServer struct {
	httpServer     *http.Server
	logger         log.Logger
	runtime        Runtime
	accounts       AccountReader
	stores         StoreReader
	metricRegistry metric.Registry
	config         config.HttpServerConfig
	limiter        *rate.Limiter
	startTime      time.Time

	port int
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlive(true)
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlivePeriod(35 * time.Second)
	if err != nil {
		return nil, err
	}
	return tc, nil
}

func NewHttpServer(cfg config.HttpServerConfig, logger log.Logger, rt Runtime, accounts AccountReader, stores StoreReader, metricRegistry metric.Registry) (*HttpServer, error) {
	server := newServer(cfg, logger, rt, accounts, stores, metricRegistry)

	listener, err := net.Listen("tcp", cfg.HttpAddress())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start http server on %s", cfg.HttpAddress())
	}

	server.port = listener.Addr().(*net.TCPAddr).Port
	server.httpServer = &http.Server{
		Handler: server.createRouter(),
	}

	// Serve rather than ListenAndServe so that a bad address fails here and not in the background
	go server.httpServer.Serve(tcpKeepAliveListener{listener.(*net.TCPListener)})

	server.logger.Info("started http server", log.String("address", cfg.HttpAddress()), log.Int("port", server.port))

	return server, nil
}

func newServer(cfg config.HttpServerConfig, logger log.Logger, rt Runtime, accounts AccountReader, stores StoreReader, metricRegistry metric.Registry) *HttpServer {
	return &HttpServer{
		logger:         logger.WithTags(LogTag),
		runtime:        rt,
		accounts:       accounts,
		stores:         stores,
		metricRegistry: metricRegistry,
		config:         cfg,
		limiter:        rate.NewLimiter(rate.Limit(cfg.HttpSendTransactionRatePerSecond()), int(cfg.HttpSendTransactionBurst())),
		startTime:      time.Now(),
	}
}

func (s *HttpServer) Port() int {
	return s.port
}

func (s *HttpServer) GracefulShutdown(ctx context.Context) {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("failed to stop http server gracefully", log.Error(err))
	}
}

func (s *HttpServer) createRouter() http.Handler {
	router := http.NewServeMux()
	router.Handle("/api/v1/send-transaction", http.HandlerFunc(wrapHandlerWithCORS(s.sendTransactionHandler)))
	router.Handle("/api/v1/transaction-receipt", http.HandlerFunc(wrapHandlerWithCORS(s.getTransactionReceiptHandler)))
	router.Handle("/api/v1/account", http.HandlerFunc(wrapHandlerWithCORS(s.getAccountHandler)))
	router.Handle("/api/v1/linkboard", http.HandlerFunc(wrapHandlerWithCORS(s.getLinkboardHandler)))
	router.Handle("/api/v1/airdrop", http.HandlerFunc(wrapHandlerWithCORS(s.airdropHandler)))
	router.Handle("/api/v1/status", http.HandlerFunc(wrapHandlerWithCORS(s.getStatus)))
	router.Handle("/metrics", http.HandlerFunc(wrapHandlerWithCORS(s.dumpMetrics)))
	router.Handle("/robots.txt", http.HandlerFunc(s.robots))
	return router
}

func readInput(r *http.Request) ([]byte, *httpErr) {
	if r.Body == nil {
		return nil, &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}

	bytes, err := ioutil.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes+1))
	if err != nil {
		return nil, &httpErr{http.StatusBadRequest, log.Error(err), "http request body is empty"}
	}
	if len(bytes) == 0 {
		return nil, &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}
	if len(bytes) > maxRequestBodyBytes {
		return nil, &httpErr{http.StatusRequestEntityTooLarge, log.Int("size", len(bytes)), "http request body is too large"}
	}
	return bytes, nil
}

func readJson(r *http.Request, out interface{}) *httpErr {
	bytes, e := readInput(r)
	if e != nil {
		return e
	}
	if err := json.Unmarshal(bytes, out); err != nil {
		return &httpErr{http.StatusBadRequest, log.Error(err), "http request is not valid json"}
	}
	return nil
}

func requireMethod(r *http.Request, method string) *httpErr {
	if r.Method != method {
		return &httpErr{http.StatusMethodNotAllowed, log.String("method", r.Method), "http method not allowed, use " + method}
	}
	return nil
}

func readAddressParam(r *http.Request, name string) (address.Address, *httpErr) {
	encoded := r.URL.Query().Get(name)
	if encoded == "" {
		return address.Address{}, &httpErr{http.StatusBadRequest, nil, "missing query parameter " + name}
	}
	addr, err := address.Parse(encoded)
	if err != nil {
		return address.Address{}, &httpErr{http.StatusBadRequest, log.Error(err), "invalid address in query parameter " + name}
	}
	return addr, nil
}

func translateExecutionStatusToHttpCode(status runtime.ExecutionStatus) int {
	switch status {
	case runtime.EXECUTION_STATUS_COMMITTED:
		return http.StatusOK
	case runtime.EXECUTION_STATUS_REJECTED_INVALID_TRANSACTION,
		runtime.EXECUTION_STATUS_REJECTED_SIGNATURE_MISSING,
		runtime.EXECUTION_STATUS_REJECTED_SIGNATURE_MISMATCH,
		runtime.EXECUTION_STATUS_REJECTED_UNKNOWN_PROGRAM,
		runtime.EXECUTION_STATUS_REJECTED_EXPIRED,
		runtime.EXECUTION_STATUS_ERROR_INVALID_INSTRUCTION,
		runtime.EXECUTION_STATUS_ERROR_CONSTRAINT_VIOLATION,
		runtime.EXECUTION_STATUS_ERROR_ALLOCATION:
		return http.StatusBadRequest
	case runtime.EXECUTION_STATUS_REJECTED_DUPLICATE,
		runtime.EXECUTION_STATUS_ERROR_ALREADY_INITIALIZED:
		return http.StatusConflict
	case runtime.EXECUTION_STATUS_ERROR_CAPACITY_EXCEEDED:
		return http.StatusInsufficientStorage
	case runtime.EXECUTION_STATUS_REJECTED_CONGESTION:
		return http.StatusServiceUnavailable
	case runtime.EXECUTION_STATUS_ERROR_UNEXPECTED,
		runtime.EXECUTION_STATUS_RESERVED:
		return http.StatusInternalServerError
	}
	return http.StatusNotImplemented
}

func (s *HttpServer) writeJsonResponse(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Error("failed to marshal response", log.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func (s *HttpServer) writeErrorResponseAndLog(w http.ResponseWriter, m *httpErr) {
	if m.logField == nil {
		s.logger.Info(m.message)
	} else {
		s.logger.Info(m.message, m.logField)
	}
	s.writeJsonResponse(w, m.code, &jsonapi.ErrorResponse{Error: m.message})
}

// Allows handler to be called via XHR requests from any host
func wrapHandlerWithCORS(f func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
		} else {
			f(w, r)
		}
	}
}
