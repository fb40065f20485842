package settings

var Version = "0.1"

// Which table(s) to generate: decay, sustain, attack, gain or all
var Table = "all"

// Print the per-cell diagnostics for every table (the sustain
// generator always prints them)
var Verbose = false

// SPC file to disassemble
var SPCFilename = ""

// Byte offset into SPC RAM where disassembly starts
var StartOffset = 0

// Reformat an opcode listing from stdin
var Reformat = false

// Emit the dense 256-entry opcode table literal
var PrintOpcodeTable = false

// Show the envelope curve for one sustain cell in the terminal
var PlotCurve = false

// Step through one simulation interactively
var Trace = false

// Render one table cell to a WAV file ("" = off)
var AuditionWav = ""

// Cell selected by -plot/-trace/-audition
var RateIndex = 0
var LevelIndex = 0
