/*
Package nandsim provides the values and the clock needed to simulate a small
16 bits machine built out of a single primitive: the NAND gate.

This package holds the data model (Bit, Word), the two-phase Clock and a
Circuit driver for clocked components. The gates themselves, from Nand up to
the ALU and flip-flops, live in the hwlib sub-package.

Words are 16 bits, two's complement. Bit 0 is the most significant (sign) bit
and bit 15 the least significant one:

	w := nandsim.MustParseWord("0000 0000 0000 0101") // 5
	w[15] == nandsim.I

There is no process-wide clock: each Circuit owns its own.

*/
package nandsim
