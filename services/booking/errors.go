package booking

import "errors"

// ErrSlotTaken means the commit-time revalidation found the slot occupied.
// Surfaced to the visitor as "please pick another time", never retried.
var ErrSlotTaken = errors.New("slot no longer available")

// ErrCalendarUnavailable wraps upstream calendar failures. Bookings are not
// idempotent-safe to retry blindly, so callers surface a generic failure.
var ErrCalendarUnavailable = errors.New("calendar service unavailable")

// ErrInvalidSlot covers malformed or out-of-hours booking requests.
var ErrInvalidSlot = errors.New("invalid slot request")
