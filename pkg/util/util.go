package util

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// ErrorCode. returns the code of a wrapped *Error, or nil if err was not created by WrapErrorf.
func ErrorCode(err error) error {
	var uErr *Error
	if errors.As(err, &uErr) {
		return uErr.Code()
	}
	return nil
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrBadParamInput       = errors.New("given Param is not valid")
)

var MessageInternalServerError string = "internal server error"

// MeanStdDev. sample mean and standard deviation with Bessel's correction (divisor n-1).
// mean is NaN for an empty sample, the standard deviation is NaN when len(xs) < 2.
func MeanStdDev(xs []float64) (float64, float64) {
	switch len(xs) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return xs[0], math.NaN()
	}
	return stat.MeanStdDev(xs, nil)
}

func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

func StdDev(xs []float64) float64 {
	_, sd := MeanStdDev(xs)
	return sd
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
