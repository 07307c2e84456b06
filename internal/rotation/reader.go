package rotation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	decimalParseBaseConstant       = 10
	unsignedParseBitSizeConstant   = 64
	inputReadErrorTemplateConstant = "failed to read input: %w"
)

// ParseValue parses a base-10 non-negative integer token. Surrounding
// whitespace is ignored and leading zeros are accepted.
func ParseValue(token string) (uint64, error) {
	trimmedToken := strings.TrimSpace(token)
	if len(trimmedToken) == 0 {
		return 0, ParseError{Input: token, Err: ErrEmptyInput}
	}

	parsedValue, parseError := strconv.ParseUint(trimmedToken, decimalParseBaseConstant, unsignedParseBitSizeConstant)
	if parseError != nil {
		var numberError *strconv.NumError
		if errors.As(parseError, &numberError) {
			return 0, ParseError{Input: trimmedToken, Err: numberError.Err}
		}
		return 0, ParseError{Input: trimmedToken, Err: parseError}
	}

	return parsedValue, nil
}

// ReadValue reads the first whitespace-delimited token from reader and parses it.
// Tokens after the first are ignored. The raw token is returned alongside the value.
func ReadValue(executionContext context.Context, reader io.Reader) (uint64, string, error) {
	if executionContext != nil {
		if contextError := executionContext.Err(); contextError != nil {
			return 0, "", contextError
		}
	}

	if reader == nil {
		return 0, "", ParseError{Err: ErrEmptyInput}
	}

	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if scanError := scanner.Err(); scanError != nil {
			return 0, "", fmt.Errorf(inputReadErrorTemplateConstant, scanError)
		}
		return 0, "", ParseError{Err: ErrEmptyInput}
	}

	token := scanner.Text()
	parsedValue, parseError := ParseValue(token)
	if parseError != nil {
		return 0, token, parseError
	}

	return parsedValue, token, nil
}
