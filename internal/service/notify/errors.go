package notify

import "errors"

var (
	ErrUnknownEvent = errors.New("unknown notification event")
	ErrNoRecipients = errors.New("package has no reachable recipients")
)
