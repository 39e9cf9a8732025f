package types

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidData marks input that does not contain exactly 81 digits.
var ErrInvalidData = errors.New("invalid data")

// FromReader extracts a board from a byte stream. Every byte that is
// not an ASCII digit is skipped; the digits that remain must number
// exactly 81, in row-major order, with '0' marking an unknown cell.
func FromReader(r io.Reader) (*Board, error) {
	digits := make([]uint8, 0, Cells)
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if b >= '0' && b <= '9' {
			digits = append(digits, b-'0')
		}
	}
	if len(digits) != Cells {
		return nil, fmt.Errorf("%w: got %d digits, want %d", ErrInvalidData, len(digits), Cells)
	}
	return NewBoard(digits)
}

// FromFile reads a board from the named file.
func FromFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f)
}
