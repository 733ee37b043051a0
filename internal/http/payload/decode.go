package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies. Character and item payloads are a few
// hundred bytes.
const MaxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("request body is empty")

func DecodePayload(r *http.Request, object any) (err error) {
	if r.Body == nil {
		return ErrEmptyBody
	}
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
