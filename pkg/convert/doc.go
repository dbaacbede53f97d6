// Package convert runs a signature dump through the conversion railway:
//
//	load -> bind -> group -> resolve -> prepare -> write
//
// Each stage is a chain step. The first failing stage stops the run and
// names itself in the returned result; files already written stay on disk.
// Groups are written one after another, in key order.
package convert
