package rotation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
)

const (
	outputMissingMessageConstant     = "output writer not configured"
	outputWriteErrorTemplateConstant = "failed to write result: %w"
	rotationCompletedMessageConstant = "rotation completed"
	rotationFailedMessageConstant    = "rotation failed"
	logFieldInputConstant            = "input"
	logFieldRotatedConstant          = "rotated"
	logFieldModeConstant             = "mode"
	logFieldDigitCountConstant       = "digits"
	trailingNewlineConstant          = "\n"
)

// ErrOutputNotConfigured indicates Run was invoked without an output writer.
var ErrOutputNotConfigured = errors.New(outputMissingMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	Logger *zap.Logger
}

// Options configure a single rotation run.
type Options struct {
	Input           io.Reader
	Output          io.Writer
	Mode            Mode
	TrailingNewline bool
}

// Result captures the outcome of a rotation run.
type Result struct {
	Input   uint64
	Rotated uint64
	Mode    Mode
}

// Service reads one integer, rotates its leading digit and writes the result.
type Service struct {
	logger *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	return &Service{logger: dependencies.Logger}, nil
}

// Run reads the first token from options.Input, rotates it and writes the
// decimal result to options.Output with no surrounding text.
func (service *Service) Run(executionContext context.Context, options Options) (Result, error) {
	if options.Output == nil {
		return Result{}, ErrOutputNotConfigured
	}

	inputValue, rawToken, readError := ReadValue(executionContext, options.Input)
	if readError != nil {
		service.logger.Warn(rotationFailedMessageConstant, zap.String(logFieldInputConstant, rawToken), zap.Error(readError))
		return Result{}, readError
	}

	return service.rotateAndWrite(inputValue, options)
}

// RunValue rotates an already parsed value and writes the result.
func (service *Service) RunValue(executionContext context.Context, inputValue uint64, options Options) (Result, error) {
	if options.Output == nil {
		return Result{}, ErrOutputNotConfigured
	}
	if executionContext != nil {
		if contextError := executionContext.Err(); contextError != nil {
			return Result{}, contextError
		}
	}
	return service.rotateAndWrite(inputValue, options)
}

func (service *Service) rotateAndWrite(inputValue uint64, options Options) (Result, error) {
	mode := options.Mode
	if len(mode) == 0 {
		mode = DefaultMode
	}

	rotatedValue, rotateError := Rotate(inputValue, mode)
	if rotateError != nil {
		service.logger.Warn(
			rotationFailedMessageConstant,
			zap.Uint64(logFieldInputConstant, inputValue),
			zap.Stringer(logFieldModeConstant, mode),
			zap.Error(rotateError),
		)
		return Result{}, rotateError
	}

	formattedResult := strconv.FormatUint(rotatedValue, decimalParseBaseConstant)
	if options.TrailingNewline {
		formattedResult += trailingNewlineConstant
	}
	if _, writeError := io.WriteString(options.Output, formattedResult); writeError != nil {
		return Result{}, fmt.Errorf(outputWriteErrorTemplateConstant, writeError)
	}

	service.logger.Debug(
		rotationCompletedMessageConstant,
		zap.Uint64(logFieldInputConstant, inputValue),
		zap.Uint64(logFieldRotatedConstant, rotatedValue),
		zap.Stringer(logFieldModeConstant, mode),
		zap.Int(logFieldDigitCountConstant, DigitCount(inputValue)),
	)

	return Result{Input: inputValue, Rotated: rotatedValue, Mode: mode}, nil
}
