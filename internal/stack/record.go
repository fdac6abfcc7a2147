package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/ydb-platform/ydb-go-bignum/internal/xstring"
)

type recordOptions struct {
	packagePath  bool
	functionName bool
	lambdas      bool
	fileName     bool
	line         bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

func FunctionName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.functionName = b
	}
}

func Lambda(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.lambdas = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

type call struct {
	function uintptr
	file     string
	line     int
}

// Call captures the caller at given depth. Depth 0 is the function which calls Call.
func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

func (c call) Record(opts ...recordOption) string {
	options := recordOptions{
		packagePath:  true,
		functionName: true,
		lambdas:      true,
		fileName:     true,
		line:         true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	var name string
	if f := runtime.FuncForPC(c.function); f != nil {
		name = strings.ReplaceAll(f.Name(), "[...]", "")
	}
	file := c.file
	if i := strings.LastIndexByte(file, '/'); i > -1 {
		file = file[i+1:]
	}

	buffer := xstring.Buffer()
	defer buffer.Free()

	if options.functionName {
		if !options.packagePath {
			if i := strings.LastIndexByte(name, '/'); i > -1 {
				name = name[i+1:]
			}
		}
		if !options.lambdas {
			name = trimLambdas(name)
		}
		buffer.WriteString(name)
	}
	if options.fileName {
		closeBrace := buffer.Len() > 0
		if closeBrace {
			buffer.WriteByte('(')
		}
		buffer.WriteString(file)
		if options.line {
			buffer.WriteByte(':')
			buffer.WriteString(strconv.Itoa(c.line))
		}
		if closeBrace {
			buffer.WriteByte(')')
		}
	}

	return buffer.String()
}

// trimLambdas cuts trailing anonymous function segments like `.func1.1`
func trimLambdas(name string) string {
	for {
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return name
		}
		tail := name[i+1:]
		if !strings.HasPrefix(tail, "func") && !isNumber(tail) {
			return name
		}
		name = name[:i]
	}
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}

// FunctionID is a short identifier of called function: package path and
// function name without lambdas and file position.
func (c call) FunctionID() string {
	return c.Record(Lambda(false), FileName(false), Line(false))
}
