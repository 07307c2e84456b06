package rotation

import (
	"errors"
	"math/bits"
)

const (
	decimalBaseConstant  = 10
	maximumDigitConstant = 9
)

var (
	errCompositionOverflow = errors.New("digit composition overflows uint64")
	errInvalidDigit        = errors.New("digit exceeds 9")
)

// Digits holds decimal digits ordered from least to most significant.
type Digits []uint8

// DigitCount returns the number of decimal digits in value. Zero has one digit.
func DigitCount(value uint64) int {
	digitCount := 1
	for remaining := value / decimalBaseConstant; remaining > 0; remaining /= decimalBaseConstant {
		digitCount++
	}
	return digitCount
}

// Decompose splits value into its decimal digits, least significant first.
func Decompose(value uint64) Digits {
	digits := make(Digits, DigitCount(value))
	remaining := value
	for digitIndex := range digits {
		digits[digitIndex] = uint8(remaining % decimalBaseConstant)
		remaining /= decimalBaseConstant
	}
	return digits
}

// Leading returns the most significant digit.
func (digits Digits) Leading() uint8 {
	if len(digits) == 0 {
		return 0
	}
	return digits[len(digits)-1]
}

// Trailing returns the least significant digit.
func (digits Digits) Trailing() uint8 {
	if len(digits) == 0 {
		return 0
	}
	return digits[0]
}

// Compose rebuilds the integer whose place values are given by digits.
// Leading zeros are permitted and contribute nothing.
func Compose(digits Digits) (uint64, error) {
	var composedValue uint64
	var placeValue uint64 = 1
	placeValueOverflowed := false

	for digitIndex, digit := range digits {
		if digit > maximumDigitConstant {
			return 0, errInvalidDigit
		}

		if digit != 0 {
			if placeValueOverflowed {
				return 0, errCompositionOverflow
			}
			high, weighted := bits.Mul64(uint64(digit), placeValue)
			if high != 0 {
				return 0, errCompositionOverflow
			}
			sum, carry := bits.Add64(composedValue, weighted, 0)
			if carry != 0 {
				return 0, errCompositionOverflow
			}
			composedValue = sum
		}

		if digitIndex == len(digits)-1 {
			break
		}
		high, nextPlaceValue := bits.Mul64(placeValue, decimalBaseConstant)
		if high != 0 {
			placeValueOverflowed = true
		}
		placeValue = nextPlaceValue
	}

	return composedValue, nil
}
