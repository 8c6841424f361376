package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/leidenkit/leidenerr"
)

// WriteMembership writes one community ID per line, vertex v on line v,
// the only state the core persists per spec's external-interfaces design.
func WriteMembership(w io.Writer, membership []int) error {
	bw := bufio.NewWriter(w)
	for _, c := range membership {
		if _, err := fmt.Fprintln(bw, c); err != nil {
			return leidenerr.New("WriteMembership: %v", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return leidenerr.New("WriteMembership: %v", err)
	}
	return nil
}
