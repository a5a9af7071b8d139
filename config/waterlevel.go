package config

import (
	"sync"
	"time"
)

// waterLevelCache holds the most recent fill-level reading in memory.
// It is not persisted: after a restart it stays empty until the next
// sample carrying a fill level arrives.
type waterLevelCache struct {
	Level      float64
	ReceivedAt time.Time
	set        bool
}

var (
	currentWaterLevel waterLevelCache
	waterLevelMutex   sync.Mutex
)

// SetLatestWaterLevel overwrites the cached fill level. Last write wins.
func SetLatestWaterLevel(level float64, receivedAt time.Time) {
	waterLevelMutex.Lock()
	defer waterLevelMutex.Unlock()
	currentWaterLevel = waterLevelCache{Level: level, ReceivedAt: receivedAt, set: true}
}

// GetLatestWaterLevel returns the cached fill level, its receive time and
// whether any value has been received since the process started.
func GetLatestWaterLevel() (level float64, receivedAt time.Time, ok bool) {
	waterLevelMutex.Lock()
	defer waterLevelMutex.Unlock()
	return currentWaterLevel.Level, currentWaterLevel.ReceivedAt, currentWaterLevel.set
}

// ResetLatestWaterLevel clears the cache, restoring the empty state the
// process starts with.
func ResetLatestWaterLevel() {
	waterLevelMutex.Lock()
	defer waterLevelMutex.Unlock()
	currentWaterLevel = waterLevelCache{}
}
