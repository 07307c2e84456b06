// Package rotation moves the leading decimal digit of an integer to the end.
//
// It exposes the digit helpers (DigitCount, Decompose, Compose), Rotate with
// its formula and cyclic modes, ReadValue for parsing standard input, and a
// Service that ties reading, rotating and writing together with zap logging.
package rotation
