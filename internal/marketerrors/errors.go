package marketerrors

import "errors"

// Repository-level errors
var (
	ErrGigNotFound  = errors.New("gig not found")
	ErrBidNotFound  = errors.New("bid not found")
	ErrDuplicateBid = errors.New("bid already placed on this gig")
)

// business logic errors
var (
	ErrInvalidGig  = errors.New("invalid gig")
	ErrInvalidBid  = errors.New("invalid bid")
	ErrOwnGigBid   = errors.New("cannot bid on your own gig")
	ErrNotGigOwner = errors.New("not the gig owner")
	ErrGigNotOpen  = errors.New("gig is no longer open")
	ErrHireFailed  = errors.New("hiring failed")
)
