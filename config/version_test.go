// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func withBuildVersion(t *testing.T, semantic string, commit string) {
	prevSemantic, prevCommit := SemanticVersion, CommitVersion
	SemanticVersion, CommitVersion = semantic, commit
	t.Cleanup(func() {
		SemanticVersion, CommitVersion = prevSemantic, prevCommit
	})
}

func TestGetVersion_FallsBackToDevBuild(t *testing.T) {
	withBuildVersion(t, "", "")

	v := GetVersion()
	require.True(t, v.IsDev())
	require.Equal(t, UNKNOWN_COMMIT, v.Commit)
	require.Equal(t, "linkboard v0.0.0-dev (unknown)", v.String())
}

func TestGetVersion_ReportsBuildVersion(t *testing.T) {
	withBuildVersion(t, "v1.2.0", "3f2c9a1")

	v := GetVersion()
	require.False(t, v.IsDev())
	require.Equal(t, Version{Semantic: "v1.2.0", Commit: "3f2c9a1"}, v)
	require.Equal(t, "linkboard v1.2.0 (3f2c9a1)", v.String())
}
