package trace

import (
	"context"
)

type (
	// Decimal contains hooks of fixed-point decimal calculator
	Decimal struct {
		OnParse     func(DecimalParseStartInfo) func(DecimalParseDoneInfo)
		OnOperation func(DecimalOperationStartInfo) func(DecimalOperationDoneInfo)
		OnRound     func(DecimalRoundInfo)
	}
	DecimalParseStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
		Input   string
		Lenient bool
	}
	DecimalParseDoneInfo struct {
		Scale int32
		Error error
	}
	DecimalOperationStartInfo struct {
		Context   *context.Context
		Call      call
		Operation string
		Scale     int32
	}
	DecimalOperationDoneInfo struct {
		Result string
		Error  error
	}
	DecimalRoundInfo struct {
		Context  *context.Context
		Call     call
		Mode     string
		From     int32
		To       int32
		Accuracy string
	}
)

// Compose returns a new Decimal which has functional fields composed both from t and x.
func (t *Decimal) Compose(x *Decimal) *Decimal {
	if t == nil {
		return x
	}
	if x == nil {
		return t
	}
	var ret Decimal
	{
		h1 := t.OnParse
		h2 := x.OnParse
		ret.OnParse = func(d DecimalParseStartInfo) func(DecimalParseDoneInfo) {
			var r1, r2 func(DecimalParseDoneInfo)
			if h1 != nil {
				r1 = h1(d)
			}
			if h2 != nil {
				r2 = h2(d)
			}

			return func(d DecimalParseDoneInfo) {
				if r1 != nil {
					r1(d)
				}
				if r2 != nil {
					r2(d)
				}
			}
		}
	}
	{
		h1 := t.OnOperation
		h2 := x.OnOperation
		ret.OnOperation = func(d DecimalOperationStartInfo) func(DecimalOperationDoneInfo) {
			var r1, r2 func(DecimalOperationDoneInfo)
			if h1 != nil {
				r1 = h1(d)
			}
			if h2 != nil {
				r2 = h2(d)
			}

			return func(d DecimalOperationDoneInfo) {
				if r1 != nil {
					r1(d)
				}
				if r2 != nil {
					r2(d)
				}
			}
		}
	}
	{
		h1 := t.OnRound
		h2 := x.OnRound
		ret.OnRound = func(d DecimalRoundInfo) {
			if h1 != nil {
				h1(d)
			}
			if h2 != nil {
				h2(d)
			}
		}
	}

	return &ret
}

func (t *Decimal) onParse(d DecimalParseStartInfo) func(DecimalParseDoneInfo) {
	if t == nil {
		return func(DecimalParseDoneInfo) {}
	}
	fn := t.OnParse
	if fn == nil {
		return func(DecimalParseDoneInfo) {}
	}
	res := fn(d)
	if res == nil {
		return func(DecimalParseDoneInfo) {}
	}

	return res
}

func (t *Decimal) onOperation(d DecimalOperationStartInfo) func(DecimalOperationDoneInfo) {
	if t == nil {
		return func(DecimalOperationDoneInfo) {}
	}
	fn := t.OnOperation
	if fn == nil {
		return func(DecimalOperationDoneInfo) {}
	}
	res := fn(d)
	if res == nil {
		return func(DecimalOperationDoneInfo) {}
	}

	return res
}

func (t *Decimal) onRound(d DecimalRoundInfo) {
	if t == nil {
		return
	}
	fn := t.OnRound
	if fn == nil {
		return
	}
	fn(d)
}

func DecimalOnParse(t *Decimal, c *context.Context, call call, input string, lenient bool) func(scale int32, _ error) {
	var p DecimalParseStartInfo
	p.Context = c
	p.Call = call
	p.Input = input
	p.Lenient = lenient
	res := t.onParse(p)

	return func(scale int32, e error) {
		var p DecimalParseDoneInfo
		p.Scale = scale
		p.Error = e
		res(p)
	}
}

func DecimalOnOperation(t *Decimal, c *context.Context, call call, operation string, scale int32) func(result string, _ error) {
	var p DecimalOperationStartInfo
	p.Context = c
	p.Call = call
	p.Operation = operation
	p.Scale = scale
	res := t.onOperation(p)

	return func(result string, e error) {
		var p DecimalOperationDoneInfo
		p.Result = result
		p.Error = e
		res(p)
	}
}

func DecimalOnRound(t *Decimal, c *context.Context, call call, mode string, from, to int32, accuracy string) {
	var p DecimalRoundInfo
	p.Context = c
	p.Call = call
	p.Mode = mode
	p.From = from
	p.To = to
	p.Accuracy = accuracy
	t.onRound(p)
}
