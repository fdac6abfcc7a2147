package trace

import (
	"context"
)

type (
	// Bigint contains hooks of arbitrary-precision integer operations
	Bigint struct {
		OnParse     func(BigintParseStartInfo) func(BigintParseDoneInfo)
		OnOperation func(BigintOperationStartInfo) func(BigintOperationDoneInfo)
	}
	BigintParseStartInfo struct {
		Context *context.Context
		Call    call
		Input   string
	}
	BigintParseDoneInfo struct {
		Error error
	}
	BigintOperationStartInfo struct {
		Context   *context.Context
		Call      call
		Operation string
	}
	BigintOperationDoneInfo struct {
		Result string
		Error  error
	}
)

// Compose returns a new Bigint which has functional fields composed both from t and x.
func (t *Bigint) Compose(x *Bigint) *Bigint {
	if t == nil {
		return x
	}
	if x == nil {
		return t
	}
	var ret Bigint
	{
		h1 := t.OnParse
		h2 := x.OnParse
		ret.OnParse = func(b BigintParseStartInfo) func(BigintParseDoneInfo) {
			var r1, r2 func(BigintParseDoneInfo)
			if h1 != nil {
				r1 = h1(b)
			}
			if h2 != nil {
				r2 = h2(b)
			}

			return func(b BigintParseDoneInfo) {
				if r1 != nil {
					r1(b)
				}
				if r2 != nil {
					r2(b)
				}
			}
		}
	}
	{
		h1 := t.OnOperation
		h2 := x.OnOperation
		ret.OnOperation = func(b BigintOperationStartInfo) func(BigintOperationDoneInfo) {
			var r1, r2 func(BigintOperationDoneInfo)
			if h1 != nil {
				r1 = h1(b)
			}
			if h2 != nil {
				r2 = h2(b)
			}

			return func(b BigintOperationDoneInfo) {
				if r1 != nil {
					r1(b)
				}
				if r2 != nil {
					r2(b)
				}
			}
		}
	}

	return &ret
}

func (t *Bigint) onParse(b BigintParseStartInfo) func(BigintParseDoneInfo) {
	if t == nil {
		return func(BigintParseDoneInfo) {}
	}
	fn := t.OnParse
	if fn == nil {
		return func(BigintParseDoneInfo) {}
	}
	res := fn(b)
	if res == nil {
		return func(BigintParseDoneInfo) {}
	}

	return res
}

func (t *Bigint) onOperation(b BigintOperationStartInfo) func(BigintOperationDoneInfo) {
	if t == nil {
		return func(BigintOperationDoneInfo) {}
	}
	fn := t.OnOperation
	if fn == nil {
		return func(BigintOperationDoneInfo) {}
	}
	res := fn(b)
	if res == nil {
		return func(BigintOperationDoneInfo) {}
	}

	return res
}

func BigintOnParse(t *Bigint, c *context.Context, call call, input string) func(error) {
	var p BigintParseStartInfo
	p.Context = c
	p.Call = call
	p.Input = input
	res := t.onParse(p)

	return func(e error) {
		var p BigintParseDoneInfo
		p.Error = e
		res(p)
	}
}

func BigintOnOperation(t *Bigint, c *context.Context, call call, operation string) func(result string, _ error) {
	var p BigintOperationStartInfo
	p.Context = c
	p.Call = call
	p.Operation = operation
	res := t.onOperation(p)

	return func(result string, e error) {
		var p BigintOperationDoneInfo
		p.Result = result
		p.Error = e
		res(p)
	}
}
