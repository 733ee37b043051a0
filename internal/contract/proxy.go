package contract

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Intent is the network-free half of a write: the target contract and the
// encoded call. The submitter completes it into a transaction.
type Intent struct {
	From     common.Address
	To       common.Address
	Data     []byte
	Contract Name
	Method   string
}

type Proxy struct {
	caller Caller
}

func NewProxy(caller Caller) *Proxy {
	return &Proxy{
		caller: caller,
	}
}

// Read encodes a call, executes it against the latest state and decodes the
// result. It holds no state of its own and may be called concurrently.
func (p *Proxy) Read(ctx context.Context, b *Binding, method string, args ...any) ([]any, error) {
	data, err := EncodeCall(b, method, args...)
	if err != nil {
		return nil, err
	}

	out, err := p.caller.Call(ctx, b.Address, data)
	if err != nil {
		return nil, fmt.Errorf("call %s.%s: %w", b.Name, method, err)
	}

	return DecodeResult(b, method, out)
}

func (p *Proxy) BuildTransactIntent(b *Binding, method string, from common.Address, args ...any) (Intent, error) {
	data, err := EncodeCall(b, method, args...)
	if err != nil {
		return Intent{}, err
	}

	return Intent{
		From:     from,
		To:       b.Address,
		Data:     data,
		Contract: b.Name,
		Method:   method,
	}, nil
}
