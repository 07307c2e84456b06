package rotation

import (
	"fmt"
	"strings"
)

const (
	modeFormulaNameConstant          = "formula"
	modeCyclicNameConstant           = "cyclic"
	unknownModeErrorTemplateConstant = "%w: %q (expected %s)"
	modeNamesSeparatorConstant       = ", "
)

// Mode selects how the leading digit is moved to the end.
type Mode string

// Supported rotation modes. ModeFormula exchanges the leading and trailing
// digits while every other digit keeps its place value, so 105 becomes 501.
// ModeCyclic shifts every digit one place up and wraps the leading digit
// around to the units position, so 105 becomes 51.
const (
	ModeFormula Mode = Mode(modeFormulaNameConstant)
	ModeCyclic  Mode = Mode(modeCyclicNameConstant)
)

// DefaultMode is the mode applied when none is configured.
const DefaultMode = ModeFormula

// Modes lists the supported modes in presentation order.
func Modes() []Mode {
	return []Mode{ModeFormula, ModeCyclic}
}

// ModeNames lists the supported mode names in presentation order.
func ModeNames() []string {
	modes := Modes()
	names := make([]string, 0, len(modes))
	for _, mode := range modes {
		names = append(names, string(mode))
	}
	return names
}

// ParseMode resolves a case-insensitive mode name. An empty name yields DefaultMode.
func ParseMode(rawMode string) (Mode, error) {
	normalizedMode := strings.ToLower(strings.TrimSpace(rawMode))
	if len(normalizedMode) == 0 {
		return DefaultMode, nil
	}

	for _, mode := range Modes() {
		if string(mode) == normalizedMode {
			return mode, nil
		}
	}

	return "", fmt.Errorf(unknownModeErrorTemplateConstant, ErrUnknownMode, rawMode, strings.Join(ModeNames(), modeNamesSeparatorConstant))
}

// String returns the mode name.
func (mode Mode) String() string {
	return string(mode)
}

// Rotate moves the leading decimal digit of value to the end according to mode.
// Single-digit values are returned unchanged. Zero is rejected with a DomainError.
func Rotate(value uint64, mode Mode) (uint64, error) {
	if value == 0 {
		return 0, DomainError{Value: value, Reason: zeroValueReasonConstant}
	}

	var rotatedDigits Digits
	digits := Decompose(value)
	if len(digits) == 1 {
		return value, nil
	}

	switch mode {
	case ModeFormula:
		rotatedDigits = exchangeBoundaryDigits(digits)
	case ModeCyclic:
		rotatedDigits = shiftLeadingDigitToEnd(digits)
	default:
		return 0, fmt.Errorf(unknownModeErrorTemplateConstant, ErrUnknownMode, string(mode), strings.Join(ModeNames(), modeNamesSeparatorConstant))
	}

	rotatedValue, composeError := Compose(rotatedDigits)
	if composeError != nil {
		return 0, OverflowError{Value: value, Mode: mode}
	}

	return rotatedValue, nil
}

// exchangeBoundaryDigits computes lead*10^0 + first*10^(d-1) + sum of digit[i]*10^i for 0 < i < d-1.
func exchangeBoundaryDigits(digits Digits) Digits {
	exchanged := make(Digits, len(digits))
	copy(exchanged, digits)
	lastIndex := len(exchanged) - 1
	exchanged[0], exchanged[lastIndex] = digits.Leading(), digits.Trailing()
	return exchanged
}

func shiftLeadingDigitToEnd(digits Digits) Digits {
	shifted := make(Digits, len(digits))
	shifted[0] = digits.Leading()
	copy(shifted[1:], digits[:len(digits)-1])
	return shifted
}
