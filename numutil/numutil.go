/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package numutil provides arithmetic on decimal fractions that avoids the most visible
// floating-point artifacts (0.1 + 0.2 = 0.30000000000000004) by scaling operands to integers
// according to their decimal digit counts before combining them.
//
// Operands may be of any type accepted by github.com/spf13/cast (numbers and numeric strings).
package numutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

type operand struct {
	str    string
	value  float64
	digits int
}

func parseOperand(v interface{}) (operand, error) {
	str, err := cast.ToStringE(v)
	if err != nil {
		return operand{}, fmt.Errorf("convert %v to string: %w", v, err)
	}
	str = strings.TrimSpace(str)
	value, err := cast.ToFloat64E(str)
	if err != nil {
		return operand{}, fmt.Errorf("parse number %q: %w", str, err)
	}
	return operand{str: str, value: value, digits: decimalDigits(str)}, nil
}

// decimalDigits returns the number of characters after the decimal point, zero if there is none.
func decimalDigits(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// withoutPoint returns the operand scaled by 10^digits.
func (o operand) withoutPoint() (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(o.str, ".", "", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", o.str, err)
	}
	return v, nil
}

func parseOperands(a, b interface{}) (operand, operand, error) {
	x, err := parseOperand(a)
	if err != nil {
		return operand{}, operand{}, err
	}
	y, err := parseOperand(b)
	if err != nil {
		return operand{}, operand{}, err
	}
	return x, y, nil
}

// Add returns a + b.
func Add(a, b interface{}) (float64, error) {
	x, y, err := parseOperands(a, b)
	if err != nil {
		return 0, err
	}
	m := math.Pow10(maxInt(x.digits, y.digits))
	return (x.value*m + y.value*m) / m, nil
}

// Subtract returns a - b rounded to the larger decimal digit count of the operands.
func Subtract(a, b interface{}) (float64, error) {
	x, y, err := parseOperands(a, b)
	if err != nil {
		return 0, err
	}
	n := maxInt(x.digits, y.digits)
	m := math.Pow10(n)
	return strconv.ParseFloat(strconv.FormatFloat((x.value*m-y.value*m)/m, 'f', n, 64), 64)
}

// Multiply returns a * b.
func Multiply(a, b interface{}) (float64, error) {
	x, y, err := parseOperands(a, b)
	if err != nil {
		return 0, err
	}
	return multiply(x, y)
}

func multiply(x, y operand) (float64, error) {
	xs, err := x.withoutPoint()
	if err != nil {
		return 0, err
	}
	ys, err := y.withoutPoint()
	if err != nil {
		return 0, err
	}
	return xs * ys / math.Pow10(x.digits+y.digits), nil
}

// Divide returns a / b.
func Divide(a, b interface{}) (float64, error) {
	x, y, err := parseOperands(a, b)
	if err != nil {
		return 0, err
	}
	xs, err := x.withoutPoint()
	if err != nil {
		return 0, err
	}
	ys, err := y.withoutPoint()
	if err != nil {
		return 0, err
	}
	if ys == 0 {
		return 0, ErrDivisionByZero
	}
	quotient, err := parseOperand(xs / ys)
	if err != nil {
		return 0, err
	}
	scale, err := parseOperand(math.Pow10(y.digits - x.digits))
	if err != nil {
		return 0, err
	}
	return multiply(quotient, scale)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
