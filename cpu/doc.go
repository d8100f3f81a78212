// Package cpu simulates the ARM7TDMI register file seen by the BIOS.
//
// The register file holds the sixteen visible registers (r0-r15), the
// current program status register (CPSR), and the per-mode banked copies of
// the stack pointer (r13), link register (r14) and saved program status
// register (SPSR). FIQ mode additionally banks r8-r12.
//
// Instruction execution is not simulated. Instead, the package models the
// parts of the processor that the BIOS depends on: privileged mode switches,
// exception entry, and the privileged return that resumes the trapped code.
package cpu
