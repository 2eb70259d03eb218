// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

const Client = "statsampler"

var (
	Current = &Semantic{
		Major: 0,
		Minor: 1,
		Patch: 0,
	}

	// GitCommit is set at build time with
	// -ldflags "-X github.com/azrael417/statsampler/version.GitCommit=<sha>"
	GitCommit string
)
