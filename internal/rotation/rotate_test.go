package rotation

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitCount(t *testing.T) {
	testCases := []struct {
		name          string
		value         uint64
		expectedCount int
	}{
		{name: "Zero", value: 0, expectedCount: 1},
		{name: "SingleDigit", value: 7, expectedCount: 1},
		{name: "PowerOfTen", value: 1000, expectedCount: 4},
		{name: "BelowPowerOfTen", value: 999, expectedCount: 3},
		{name: "LargestPowerOfTen", value: 10_000_000_000_000_000_000, expectedCount: 20},
		{name: "MaximumValue", value: math.MaxUint64, expectedCount: 20},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedCount, DigitCount(testCase.value))
		})
	}
}

func TestDecomposeOrdersDigitsFromLeastSignificant(t *testing.T) {
	digits := Decompose(105)
	require.Equal(t, Digits{5, 0, 1}, digits)
	require.Equal(t, uint8(1), digits.Leading())
	require.Equal(t, uint8(5), digits.Trailing())
}

func TestComposeInvertsDecompose(t *testing.T) {
	for _, value := range []uint64{0, 1, 10, 105, 4567, 1_000_000_007, math.MaxUint64} {
		value := value
		t.Run(fmt.Sprint(value), func(t *testing.T) {
			composed, composeError := Compose(Decompose(value))
			require.NoError(t, composeError)
			require.Equal(t, value, composed)
		})
	}
}

func TestComposeRejectsOverflowAndInvalidDigits(t *testing.T) {
	_, overflowError := Compose(Digits{6, 1, 5, 1, 5, 5, 9, 0, 7, 3, 7, 0, 4, 4, 7, 6, 4, 4, 8, 2})
	require.ErrorIs(t, overflowError, errCompositionOverflow)

	_, beyondWidthError := Compose(Digits{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1})
	require.ErrorIs(t, beyondWidthError, errCompositionOverflow)

	leadingZeros, leadingZerosError := Compose(Digits{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, leadingZerosError)
	require.Equal(t, uint64(1), leadingZeros)

	_, invalidDigitError := Compose(Digits{10})
	require.ErrorIs(t, invalidDigitError, errInvalidDigit)
}

func TestRotate(t *testing.T) {
	testCases := []struct {
		name          string
		value         uint64
		mode          Mode
		expectedValue uint64
	}{
		{name: "FormulaExchangesBoundaryDigits", value: 105, mode: ModeFormula, expectedValue: 501},
		{name: "FormulaThreeDigits", value: 123, mode: ModeFormula, expectedValue: 321},
		{name: "FormulaFourDigits", value: 4567, mode: ModeFormula, expectedValue: 7564},
		{name: "FormulaTwoDigits", value: 10, mode: ModeFormula, expectedValue: 1},
		{name: "FormulaMaximumWithoutOverflow", value: 10_000_000_000_000_000_001, mode: ModeFormula, expectedValue: 10_000_000_000_000_000_001},
		{name: "CyclicThreeDigits", value: 123, mode: ModeCyclic, expectedValue: 231},
		{name: "CyclicFourDigits", value: 4567, mode: ModeCyclic, expectedValue: 5674},
		{name: "CyclicDropsLeadingZero", value: 105, mode: ModeCyclic, expectedValue: 51},
		{name: "CyclicTwoDigits", value: 90, mode: ModeCyclic, expectedValue: 9},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			rotated, rotateError := Rotate(testCase.value, testCase.mode)
			require.NoError(t, rotateError)
			require.Equal(t, testCase.expectedValue, rotated)
		})
	}
}

func TestRotateSingleDigitsAreIdempotent(t *testing.T) {
	for _, mode := range Modes() {
		for value := uint64(1); value <= 9; value++ {
			rotated, rotateError := Rotate(value, mode)
			require.NoError(t, rotateError)
			require.Equal(t, value, rotated)

			rotatedTwice, rotateTwiceError := Rotate(rotated, mode)
			require.NoError(t, rotateTwiceError)
			require.Equal(t, rotated, rotatedTwice)
		}
	}
}

func TestRotateTwiceDoesNotRestoreCyclicValue(t *testing.T) {
	once, onceError := Rotate(123, ModeCyclic)
	require.NoError(t, onceError)
	twice, twiceError := Rotate(once, ModeCyclic)
	require.NoError(t, twiceError)
	require.Equal(t, uint64(312), twice)
	require.NotEqual(t, uint64(123), twice)
}

func TestRotateRejectsZero(t *testing.T) {
	_, rotateError := Rotate(0, ModeFormula)

	var domainError DomainError
	require.ErrorAs(t, rotateError, &domainError)
	require.Equal(t, uint64(0), domainError.Value)
}

func TestRotateReportsOverflow(t *testing.T) {
	testCases := []struct {
		name  string
		value uint64
		mode  Mode
	}{
		{name: "FormulaMaximumValue", value: math.MaxUint64, mode: ModeFormula},
		{name: "CyclicMaximumValue", value: math.MaxUint64, mode: ModeCyclic},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			_, rotateError := Rotate(testCase.value, testCase.mode)

			var overflowError OverflowError
			require.ErrorAs(t, rotateError, &overflowError)
			require.Equal(t, testCase.value, overflowError.Value)
			require.Equal(t, testCase.mode, overflowError.Mode)
		})
	}
}

func TestRotateRejectsUnknownMode(t *testing.T) {
	_, rotateError := Rotate(123, Mode("reverse"))
	require.ErrorIs(t, rotateError, ErrUnknownMode)
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		name         string
		rawMode      string
		expectedMode Mode
		expectError  bool
	}{
		{name: "EmptyUsesDefault", rawMode: "", expectedMode: ModeFormula},
		{name: "Formula", rawMode: "formula", expectedMode: ModeFormula},
		{name: "CyclicMixedCase", rawMode: "  Cyclic ", expectedMode: ModeCyclic},
		{name: "Unknown", rawMode: "reverse", expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mode, parseError := ParseMode(testCase.rawMode)
			if testCase.expectError {
				require.ErrorIs(t, parseError, ErrUnknownMode)
				return
			}
			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedMode, mode)
		})
	}
}
