package client

import "errors"

// ErrTransport wraps network failures, 5xx responses and undecodable bodies.
// 4xx responses are translated back into the sentinel the server mapped from.
var ErrTransport = errors.New("transport failure")

// ErrBadRequest covers 400 responses the server rejected at the edge.
var ErrBadRequest = errors.New("request rejected")
