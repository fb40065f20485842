package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// SPC files carry a 0x100 byte header (magic, ID666 tag, CPU
// registers) in front of the 64k RAM image.
const headerSize = 0x100
const ramSize = 0x10000

// ReadSPC loads the RAM image from an SPC file. Truncated dumps are
// returned as-is; files shorter than the header are rejected.
func ReadSPC(filename string) ([]byte, error) {
	file, err := os.Open(filename)

	if err != nil {
		return nil, err
	}
	defer file.Close()

	stats, statsErr := file.Stat()
	if statsErr != nil {
		return nil, statsErr
	}

	if stats.Size() < headerSize {
		return nil, fmt.Errorf("'%s' is too short to be an SPC file (%d bytes)",
			filename, stats.Size())
	}

	buf := bufio.NewReader(file)
	if _, err := buf.Discard(headerSize); err != nil {
		return nil, err
	}

	ram := make([]byte, ramSize)
	n, err := io.ReadFull(buf, ram)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}

	return ram[:n], nil
}
