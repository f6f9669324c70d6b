// File: utils/constants.go
package utils

import "time"

// QuoteSessionPrefix is the prefix used for Redis quote-session keys.
const QuoteSessionPrefix = "quote:"

// QuoteSessionTTL is the time-to-live for quote sessions awaiting confirmation.
const QuoteSessionTTL = 10 * time.Minute
