//go:build !windows

package fsattr_test

import (
	"time"
)

var epoch = time.Unix(1700000000, 0)

const hasWinData = false

func winData(uint32) any { return nil }
