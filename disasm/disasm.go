package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/handegar/spcgen/base"
)

// PrintListing disassembles SPC RAM from 'startOffset' and writes one
// line per instruction:
//
//	$0812   8F 6C F2 MOV $6C,#$F2
//
// Unknown opcode bytes are skipped one byte at a time.
func PrintListing(w io.Writer, ram []byte, startOffset int) {
	table := base.DenseTable()

	pos := startOffset
	for pos < len(ram) && pos <= 0xFFFF {
		op := table[ram[pos]]
		if op.Len == 0 {
			pos += 1
			continue
		}

		if pos+op.Len > len(ram) {
			fmt.Fprintf(w, "Opcode on boundary: 0x%02X\n", ram[pos])
			break
		}

		raw := ram[pos : pos+op.Len]

		fmt.Fprintf(w, "$%04X   ", pos)
		for _, b := range raw {
			fmt.Fprintf(w, "%02X ", b)
		}
		for x := 0; x < 3-op.Len; x++ {
			fmt.Fprint(w, "   ")
		}
		fmt.Fprintf(w, "%s\n", instructionString(op, raw))

		pos += op.Len
	}
}

// instructionString expands the operand verbs in the mnemonic with
// the instruction's operand bytes, in memory order.
func instructionString(op base.Opcode, raw []byte) string {
	verbs := strings.Count(op.Name, "%0")

	var args []interface{}
	for i := 1; i < op.Len && len(args) < verbs; i++ {
		args = append(args, raw[i])
	}

	if len(args) == 0 {
		return op.Name
	}
	return fmt.Sprintf(op.Name, args...)
}
