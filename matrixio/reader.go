package matrixio

import (
	"bufio"
	"io"
	"strconv"
)

// ReadMatrix parses the wire format described in the package doc from r: one
// integer V, then V*V whitespace-separated integer tokens in row-major
// order. Returns ErrInvalidInput on a missing or negative V, fewer than V*V
// matrix tokens, a malformed integer token, or (with WithStrictSymmetry) an
// asymmetric entry. Tokens after the first V*V matrix entries are ignored.
//
// Complexity: O(V^2).
func ReadMatrix(r io.Reader, opts ...Option) ([][]int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	nextInt := func() (int64, bool) {
		if !scanner.Scan() {
			return 0, false
		}
		v, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	vTok, ok := nextInt()
	if !ok || vTok < 0 {
		return nil, ErrInvalidInput
	}
	v := int(vTok)

	m := make([][]int64, v)
	for i := range m {
		m[i] = make([]int64, v)
	}

	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			val, ok := nextInt()
			if !ok {
				return nil, ErrInvalidInput
			}
			m[i][j] = val
		}
	}

	if cfg.strictSymmetry {
		for i := 0; i < v; i++ {
			for j := i + 1; j < v; j++ {
				if m[i][j] != m[j][i] {
					return nil, ErrInvalidInput
				}
			}
		}
	}

	return m, nil
}
