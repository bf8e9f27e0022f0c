// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
)

// epsilon below which cross products are treated as parallel.
const epsilon = 1e-6

func clamp(val, minimum, maximum float32) float32 {
	return min(max(val, minimum), maximum)
}

func square(a float32) float32 {
	return a * a
}

// finite is false for NaN and infinities.
func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
