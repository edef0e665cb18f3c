// Package textnorm normalizes line endings before scanning.
package textnorm

import (
	"strings"

	"golang.org/x/text/transform"
)

// LineEndings returns a transformer that rewrites CRLF and lone CR to LF.
// A CR at the end of a chunk is held back until the next byte is known.
func LineEndings() transform.Transformer {
	return lineEndings{}
}

// String returns s with every CRLF and lone CR replaced by LF.
func String(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}

	out, _, err := transform.String(LineEndings(), s)
	if err != nil {
		// lineEndings never fails on complete input
		panic(err)
	}

	return out
}

type lineEndings struct {
	transform.NopResetter
}

func (lineEndings) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c != '\r' {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}

			dst[nDst] = c
			nDst++
			nSrc++

			continue
		}

		if nSrc+1 >= len(src) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		dst[nDst] = '\n'
		nDst++
		nSrc++

		if nSrc < len(src) && src[nSrc] == '\n' {
			nSrc++
		}
	}

	return nDst, nSrc, nil
}
