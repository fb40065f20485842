package disasm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reformat rewrites an opcode listing ("mnemonic operands opcode len
// ...") with the opcode byte in binary, for eyeballing how the
// SPC700 encodes its instruction families:
//
//	#MOV        A,#$%02X   11101000 2
func Reformat(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo += 1
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			return fmt.Errorf("line %d: expected 'mnemonic operands "+
				"opcode len', got %q", lineNo, line)
		}

		opcode, err := strconv.ParseUint(
			strings.TrimPrefix(fields[2], "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("line %d: bad opcode %q: %s",
				lineNo, fields[2], err)
		}

		fmt.Fprintf(w, "#%-10s %-10s %08b %s\n",
			fields[0], fields[1], opcode, fields[3])
	}

	return scanner.Err()
}
