package calculator

import (
	"errors"
	gomath "math"
	"strconv"
	"strings"
)

// Operation represents an arithmetic operation tag.
type Operation string

// Supported operations.
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// User-facing error messages.
const (
	MsgInvalidNumbers   = "Please enter valid numbers"
	MsgDivisionByZero   = "Cannot divide by zero!"
	MsgInvalidOperation = "Invalid operation"
)

// Operations returns the supported operations in selector order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// ParseOperation maps a raw tag onto a supported Operation.
func ParseOperation(raw string) (Operation, bool) {
	op := Operation(raw)
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return op, true
	default:
		return op, false
	}
}

// Result is either a numeric value or an error message. Exactly one of the
// two is meaningful; check IsError before reading Value.
type Result struct {
	Value   float64
	Message string
	isError bool
}

// Value builds a numeric Result.
func Value(v float64) Result {
	return Result{Value: v}
}

// Failure builds an error Result carrying msg.
func Failure(msg string) Result {
	return Result{Message: msg, isError: true}
}

// IsError reports whether the result carries an error message.
func (r Result) IsError() bool {
	return r.isError
}

// Display renders the result as shown to the user.
func (r Result) Display() string {
	if r.isError {
		return r.Message
	}
	return "Result: " + FormatValue(r.Value)
}

// Evaluate parses rawA and rawB and applies op to them.
// Input errors are reported before the operation is looked at.
func Evaluate(op Operation, rawA, rawB string) Result {
	a, okA := parseNumber(rawA)
	b, okB := parseNumber(rawB)
	if !okA || !okB {
		return Failure(MsgInvalidNumbers)
	}

	switch op {
	case OpAdd:
		return Value(a + b)
	case OpSubtract:
		return Value(a - b)
	case OpMultiply:
		return Value(a * b)
	case OpDivide:
		if b == 0 {
			return Failure(MsgDivisionByZero)
		}
		return Value(a / b)
	default:
		return Failure(MsgInvalidOperation)
	}
}

func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals still parse to ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	if gomath.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// FormatValue renders v the way the browser console prints numbers.
func FormatValue(v float64) string {
	switch {
	case gomath.IsInf(v, 1):
		return "Infinity"
	case gomath.IsInf(v, -1):
		return "-Infinity"
	case gomath.IsNaN(v):
		return "NaN"
	case v == 0:
		return "0"
	}
	abs := gomath.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// Drop the zero padding strconv puts on one-digit exponents (1e-07).
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
