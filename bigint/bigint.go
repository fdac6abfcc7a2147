package bigint

import (
	"context"
)

var defaultCalculator = New()

func Add(a, b string) (string, error) {
	return defaultCalculator.Add(context.Background(), a, b)
}

func Subtract(a, b string) (string, error) {
	return defaultCalculator.Subtract(context.Background(), a, b)
}

func Multiply(a, b string) (string, error) {
	return defaultCalculator.Multiply(context.Background(), a, b)
}

func Divide(a, b string) (string, error) {
	return defaultCalculator.Divide(context.Background(), a, b)
}

func Mod(a, b string) (string, error) {
	return defaultCalculator.Mod(context.Background(), a, b)
}

func Pow(base string, exponent uint32) (string, error) {
	return defaultCalculator.Pow(context.Background(), base, exponent)
}

func Abs(a string) (string, error) {
	return defaultCalculator.Abs(context.Background(), a)
}

func Signum(a string) (int, error) {
	return defaultCalculator.Signum(context.Background(), a)
}

func Compare(a, b string) (int, error) {
	return defaultCalculator.Compare(context.Background(), a, b)
}

func GCD(a, b string) (string, error) {
	return defaultCalculator.GCD(context.Background(), a, b)
}

func ToInt64(a string) (int64, error) {
	return defaultCalculator.ToInt64(context.Background(), a)
}
