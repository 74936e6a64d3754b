// SPDX-License-Identifier: MIT

// Command gridpath finds a route across an ASCII map.
//
// Usage:
//
//	gridpath -map FILE -from X,Y -to X,Y [-snap] [-geojson] [-max-cost N]
//
// Map characters: '#' wall, '.' open (weight 1), '1'..'9' open with that weight.
// With -snap, -from and -to may be fractional and are moved to the nearest open cell.
//
// Exit codes: 0 route found, 1 invalid endpoint, 2 no route, 3 usage or input error.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
