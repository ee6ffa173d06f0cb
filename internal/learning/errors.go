package learning

import "errors"

var ErrUnknownOutcome = errors.New("unknown review outcome")
