package creditcalc

import (
	"errors"
)

var (
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrPaymentTooSmall      = errors.New("payment does not cover interest")
	ErrTermUnreachable      = errors.New("loan cannot be repaid within the given term")
	ErrEmptySchedule        = errors.New("payment schedule is empty")
	ErrLoanAlreadyPaid      = errors.New("loan is already paid off")
	ErrNoPaymentsLeft       = errors.New("no payments left to recalculate")
	ErrMissingSecondary     = errors.New("combined strategy requires a secondary amount")
	ErrMissingSecondaryDate = errors.New("combined strategy requires a secondary payment count")
	ErrUnexpectedSecondary  = errors.New("simple strategy does not take secondary fields")
	ErrSecondaryOutOfRange  = errors.New("secondary payment count is out of schedule range")
	ErrUnknownStrategy      = errors.New("unknown early repayment strategy")
)
