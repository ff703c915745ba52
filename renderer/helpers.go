package renderer

import (
	"bytes"
	"io"
)

// ConditionalBlock lets you fully write a block and decide at the end to
// print it or not. If the block function returns true, the content is
// printed to w; otherwise it is discarded and the optional fallback is
// printed instead (e.g. a "nothing found" line).
func ConditionalBlock(w io.Writer, block func(io.Writer) bool, otherwise ...func(io.Writer)) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
		return
	}
	for _, f := range otherwise {
		f(w)
	}
}
