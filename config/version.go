// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

// set at build time with -ldflags "-X github.com/orbs-network/orbs-linkboard-go/config.SemanticVersion=..."
var SemanticVersion string
var CommitVersion string

const DEV_SEMANTIC_VERSION = "v0.0.0-dev"
const UNKNOWN_COMMIT = "unknown"

type Version struct {
	Semantic string `json:"semantic"`
	Commit   string `json:"commit"`
}

// GetVersion falls back to a dev version for binaries built without ldflags.
func GetVersion() Version {
	v := Version{Semantic: SemanticVersion, Commit: CommitVersion}
	if v.Semantic == "" {
		v.Semantic = DEV_SEMANTIC_VERSION
	}
	if v.Commit == "" {
		v.Commit = UNKNOWN_COMMIT
	}
	return v
}

func (v Version) IsDev() bool {
	return v.Semantic == DEV_SEMANTIC_VERSION
}

func (v Version) String() string {
	return "linkboard " + v.Semantic + " (" + v.Commit + ")"
}
