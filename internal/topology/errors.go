package topology

import (
	"errors"
	"fmt"
)

var (
	ErrMissingNetwork      = errors.New("no network defined")
	ErrMalformedNetwork    = errors.New("malformed network")
	ErrNoNodes             = errors.New("no nodes defined")
	ErrMissingNodeName     = errors.New("node has no name")
	ErrDuplicateNodeName   = errors.New("duplicate node name")
	ErrMalformedAddress    = errors.New("malformed address")
	ErrDuplicateAddress    = errors.New("duplicate address")
	ErrAddressOutOfNetwork = errors.New("address not in network")
	ErrDuplicatePrivateKey = errors.New("duplicate private key")
	ErrUnknownRouteTarget  = errors.New("unknown route target")

	// ErrNodeNotFound is returned by Resolve for names absent from the declaration.
	ErrNodeNotFound = errors.New("node not found")
)

// ValidationError identifies the first violated declaration invariant.
// Err is one of the sentinel errors above.
type ValidationError struct {
	Err    error
	Node   string // empty for declaration-level failures
	Detail string
}

func (e *ValidationError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Node != "" {
		return fmt.Sprintf("node %q: %s", e.Node, msg)
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(err error, node, format string, args ...any) *ValidationError {
	return &ValidationError{Err: err, Node: node, Detail: fmt.Sprintf(format, args...)}
}
