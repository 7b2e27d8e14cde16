// SPDX-License-Identifier: MIT

package poet

import (
	"bufio"
	"io"
	"strings"
)

// scanWords feeds each whitespace-delimited token of r to yield, in order.
// It stops at the first error from yield or from r. A token longer than
// maxTokenSize is reported as bufio.ErrTooLong.
func scanWords(r io.Reader, maxTokenSize int, yield func(string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxTokenSize)), maxTokenSize)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if err := yield(sc.Text()); err != nil {
			return err
		}
	}

	return sc.Err()
}

// Words splits an in-memory sentence on whitespace, keeping each word's case.
func Words(s string) []string {
	return strings.Fields(s)
}
