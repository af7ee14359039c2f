package trading

import "fmt"

// ID identifies trade records and doubles as the client order ID sent to
// the exchange.
type ID interface {
	fmt.Stringer
}

type IDService interface {
	NewID() ID

	NewIDFromString(id string) (ID, error)
}
