package trading

import (
	"fmt"
	"strings"
)

// Environment selects the ledger and the order executor a trader binds to.
type Environment int

const (
	EnvironmentSimulated Environment = iota
	EnvironmentSandbox
	EnvironmentLive
)

func ParseEnvironment(value string) (Environment, error) {
	switch strings.ToUpper(value) {
	case "SIMULATED", "SIM":
		return EnvironmentSimulated, nil
	case "SANDBOX", "TEST":
		return EnvironmentSandbox, nil
	case "LIVE", "PROD":
		return EnvironmentLive, nil
	}

	return -1, fmt.Errorf(
		"%w: unknown environment: [%v]",
		ErrConfiguration,
		value,
	)
}

func (e Environment) String() string {
	switch e {
	case EnvironmentSimulated:
		return "SIMULATED"
	case EnvironmentSandbox:
		return "SANDBOX"
	case EnvironmentLive:
		return "LIVE"
	default:
		return fmt.Sprintf("Environment(%d)", int(e))
	}
}
