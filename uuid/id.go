package uuid

import (
	"github.com/google/uuid"
	"github.com/lukasz-zimnoch/trading"
)

// IDService issues random (version 4) UUIDs.
type IDService struct{}

func NewIDService() *IDService {
	return &IDService{}
}

func (ids *IDService) NewID() trading.ID {
	return uuid.New()
}

func (ids *IDService) NewIDFromString(id string) (trading.ID, error) {
	return uuid.Parse(id)
}
