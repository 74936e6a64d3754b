// SPDX-License-Identifier: MIT

package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseASCII reads a text map into cell values, one row per non-empty line.
//
//	'#'        wall (0)
//	'.'        open (1)
//	'1'..'9'   open with that value
//
// Trailing whitespace is ignored. Row lengths are not checked here; NewGridGraph does that.
func ParseASCII(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			switch {
			case ch == '#':
				row = append(row, 0)
			case ch == '.':
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at line %d col %d", ErrBadCell, ch, line, col+1)
			}
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}

	return grid, nil
}
