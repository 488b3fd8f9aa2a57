// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/jsonapi"
	"net/http"
	"time"
)

func (s *HttpServer) getStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJsonResponse(w, http.StatusOK, &jsonapi.Status{
		LastCommittedSlot: uint64(s.runtime.LastCommittedSlot()),
		Uptime:            int64(time.Since(s.startTime) / time.Second),
		Version:           config.GetVersion(),
	})
}
