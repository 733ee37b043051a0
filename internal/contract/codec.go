package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"astralnexus/internal/txerr"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	errUnknownMethod = errors.New("method not found in interface definition")
	errShortCallData = errors.New("call data shorter than a method selector")
)

var bigIntType = reflect.TypeOf(&big.Int{})

// EncodeCall packs the selector and arguments of method. Numeric arguments
// are narrowed or widened to the exact width the definition declares.
func EncodeCall(b *Binding, method string, args ...any) ([]byte, error) {
	m, ok := b.ABI.Methods[method]
	if !ok {
		return nil, &txerr.EncodingError{Contract: string(b.Name), Method: method, Err: errUnknownMethod}
	}

	coerced, err := coerceArgs(m.Inputs, args)
	if err != nil {
		return nil, &txerr.EncodingError{Contract: string(b.Name), Method: method, Err: err}
	}

	data, err := b.ABI.Pack(method, coerced...)
	if err != nil {
		return nil, &txerr.EncodingError{Contract: string(b.Name), Method: method, Err: err}
	}

	return data, nil
}

// DecodeResult unpacks the return data of method. A single tuple output is
// flattened into its fields so callers index results the same way for both
// output styles.
func DecodeResult(b *Binding, method string, data []byte) ([]any, error) {
	m, ok := b.ABI.Methods[method]
	if !ok {
		return nil, &txerr.DecodingError{Contract: string(b.Name), Method: method, Err: errUnknownMethod}
	}

	values, err := m.Outputs.Unpack(data)
	if err != nil {
		return nil, &txerr.DecodingError{Contract: string(b.Name), Method: method, Err: err}
	}

	return flattenTuple(values), nil
}

// DecodeCall reverses EncodeCall: it resolves the selector and unpacks the
// arguments.
func DecodeCall(b *Binding, data []byte) (string, []any, error) {
	if len(data) < 4 {
		return "", nil, &txerr.DecodingError{Contract: string(b.Name), Err: errShortCallData}
	}

	m, err := b.ABI.MethodById(data[:4])
	if err != nil {
		return "", nil, &txerr.DecodingError{Contract: string(b.Name), Err: err}
	}

	args, err := m.Inputs.Unpack(data[4:])
	if err != nil {
		return m.Name, nil, &txerr.DecodingError{Contract: string(b.Name), Method: m.Name, Err: err}
	}

	return m.Name, args, nil
}

func coerceArgs(inputs abi.Arguments, values []any) ([]any, error) {
	if len(inputs) != len(values) {
		return nil, fmt.Errorf("argument count mismatch: got %d, want %d", len(values), len(inputs))
	}

	out := make([]any, len(values))
	for i, input := range inputs {
		v, err := coerce(input.Type, values[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s %s): %w", i, input.Name, input.Type.String(), err)
		}
		out[i] = v
	}
	return out, nil
}

// coerce converts v to the Go type abi.Pack expects for t when the
// conversion is lossless. Values it does not recognise are passed through so
// Pack reports the mismatch.
func coerce(t abi.Type, v any) (any, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, ok := toBigInt(v)
		if !ok {
			return v, nil
		}
		return fitInteger(t, n)

	case abi.AddressTy:
		s, ok := v.(string)
		if !ok {
			return v, nil
		}
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("%q is not a hex address", s)
		}
		return common.HexToAddress(s), nil

	case abi.SliceTy, abi.ArrayTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return v, nil
		}
		if t.T == abi.ArrayTy && rv.Len() != t.Size {
			return nil, fmt.Errorf("array length %d, want %d", rv.Len(), t.Size)
		}

		var out reflect.Value
		if t.T == abi.SliceTy {
			out = reflect.MakeSlice(t.GetType(), rv.Len(), rv.Len())
		} else {
			out = reflect.New(t.GetType()).Elem()
		}

		elemType := t.Elem.GetType()
		for i := 0; i < rv.Len(); i++ {
			elem, err := coerce(*t.Elem, rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			ev := reflect.ValueOf(elem)
			if !ev.IsValid() || !ev.Type().AssignableTo(elemType) {
				// leave the original value so Pack produces its own error
				return v, nil
			}
			out.Index(i).Set(ev)
		}
		return out.Interface(), nil

	default:
		return v, nil
	}
}

func fitInteger(t abi.Type, n *big.Int) (any, error) {
	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for %s", n, t.String())
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("value %s overflows %s", n, t.String())
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		lowest := new(big.Int).Neg(limit)
		highest := new(big.Int).Sub(limit, big.NewInt(1))
		if n.Cmp(lowest) < 0 || n.Cmp(highest) > 0 {
			return nil, fmt.Errorf("value %s overflows %s", n, t.String())
		}
	}

	goType := t.GetType()
	if goType == bigIntType {
		return new(big.Int).Set(n), nil
	}

	rv := reflect.New(goType).Elem()
	switch goType.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		rv.SetUint(n.Uint64())
	default:
		rv.SetInt(n.Int64())
	}
	return rv.Interface(), nil
}

func toBigInt(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, false
		}
		return n, true
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case json.Number:
		parsed, ok := new(big.Int).SetString(n.String(), 10)
		return parsed, ok
	default:
		return nil, false
	}
}

func flattenTuple(values []any) []any {
	if len(values) != 1 {
		return values
	}

	rv := reflect.ValueOf(values[0])
	if rv.Kind() != reflect.Struct {
		return values
	}

	fields := make([]any, rv.NumField())
	for i := range fields {
		fields[i] = rv.Field(i).Interface()
	}
	return fields
}
