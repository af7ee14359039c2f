package inmem

import (
	"testing"
	"time"

	"github.com/lukasz-zimnoch/trading"
)

func TestTradeRecordRepository_CreateTradeRecord(t *testing.T) {
	windowSize := 3
	repository := NewTradeRecordRepository(windowSize)

	start := time.Date(2021, 6, 11, 15, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repository.CreateTradeRecord(&trading.TradeRecord{
			Time: start.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	records := repository.TradeRecords()

	if len(records) != windowSize {
		t.Fatalf(
			"unexpected records count\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			windowSize,
			len(records),
		)
	}

	for index, record := range records {
		expectedTime := start.Add(time.Duration(index+2) * time.Minute)
		if !record.Time.Equal(expectedTime) {
			t.Errorf(
				"unexpected record time at [%v]\n"+
					"expected: [%v]\n"+
					"actual:   [%v]",
				index,
				expectedTime,
				record.Time,
			)
		}
	}
}
