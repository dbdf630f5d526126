package provider

import "errors"

// ErrProvider is wrapped around every upstream failure — transport errors as
// well as non-2xx API responses. Callers match it with [errors.Is] and map
// it to 502 at the request boundary; the upstream response body is logged
// but never forwarded to API callers.
var ErrProvider = errors.New("financial data provider error")
