package inmem

import (
	"sync"

	"github.com/lukasz-zimnoch/trading"
)

// TradeRecordRepository keeps the most recent trade records in memory. It is
// used when no durable journal is configured.
type TradeRecordRepository struct {
	recordsMutex sync.RWMutex
	records      []*trading.TradeRecord

	windowSize int
}

func NewTradeRecordRepository(windowSize int) *TradeRecordRepository {
	return &TradeRecordRepository{
		records:    make([]*trading.TradeRecord, 0),
		windowSize: windowSize,
	}
}

func (trr *TradeRecordRepository) CreateTradeRecord(
	record *trading.TradeRecord,
) error {
	trr.recordsMutex.Lock()
	defer trr.recordsMutex.Unlock()

	trr.records = append(trr.records, record)

	// remove oldest record if repository size has been exceeded
	if trr.windowSize > 0 && len(trr.records) > trr.windowSize {
		index := 0
		copy(trr.records[index:], trr.records[index+1:])
		trr.records[len(trr.records)-1] = nil
		trr.records = trr.records[:len(trr.records)-1]
	}

	return nil
}

func (trr *TradeRecordRepository) TradeRecords() []*trading.TradeRecord {
	trr.recordsMutex.RLock()
	defer trr.recordsMutex.RUnlock()

	snapshot := make([]*trading.TradeRecord, len(trr.records))
	copy(snapshot, trr.records)

	return snapshot
}
