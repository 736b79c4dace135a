package mailto

import "errors"

// ErrNoRecipient indicates no recipient address was specified.
var ErrNoRecipient = errors.New("mailto link must have a recipient")
