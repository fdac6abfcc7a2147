package decimal

import (
	"context"
)

var defaultCalculator = New()

func Add(a, b string, scale int32) (string, error) {
	return defaultCalculator.Add(context.Background(), a, b, scale)
}

func Subtract(a, b string, scale int32) (string, error) {
	return defaultCalculator.Subtract(context.Background(), a, b, scale)
}

func Multiply(a, b string, scale int32) (string, error) {
	return defaultCalculator.Multiply(context.Background(), a, b, scale)
}

func Divide(a, b string, scale int32) (string, error) {
	return defaultCalculator.Divide(context.Background(), a, b, scale)
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

func SetScale(a string, scale int32, mode RoundingMode) (string, error) {
	return defaultCalculator.SetScale(context.Background(), a, scale, mode)
}

func ToInteger(a string) (string, error) {
	return defaultCalculator.ToInteger(context.Background(), a)
}
