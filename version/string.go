// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// String describes [Current], including [commit] when it is known.
func String(commit string) string {
	format := "%s/%s"
	args := []interface{}{
		Client,
		Current,
	}

	if commit != "" {
		format += " [commit=%s]"
		args = append(args, commit)
	}
	return fmt.Sprintf(format, args...)
}
