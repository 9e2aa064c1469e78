package quota

import "errors"

// ErrQuotaExceeded indicates the user has used up the daily generation limit.
var ErrQuotaExceeded = errors.New("daily quota exceeded")
