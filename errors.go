package trading

import (
	"errors"
	"fmt"
)

var (
	ErrDataUnavailable     = errors.New("data unavailable")
	ErrAccountUnavailable  = errors.New("account unavailable")
	ErrOrderRejected       = errors.New("order rejected")
	ErrConfiguration       = errors.New("configuration error")
	ErrInsufficientData    = errors.New("insufficient data")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCycleInProgress     = errors.New("trading cycle in progress")
)

// OrderRejectedError carries the reason given by the exchange.
type OrderRejectedError struct {
	Reason string
	Err    error
}

func NewOrderRejectedError(reason string, err error) *OrderRejectedError {
	return &OrderRejectedError{Reason: reason, Err: err}
}

func (ore *OrderRejectedError) Error() string {
	if ore.Err != nil {
		return fmt.Sprintf("%v: %v: [%v]", ErrOrderRejected, ore.Reason, ore.Err)
	}

	return fmt.Sprintf("%v: %v", ErrOrderRejected, ore.Reason)
}

func (ore *OrderRejectedError) Is(target error) bool {
	return target == ErrOrderRejected
}

func (ore *OrderRejectedError) Unwrap() error {
	return ore.Err
}
