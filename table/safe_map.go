package table

import (
	"sync"
)

// Basic thread-safe (T -> U) map
type safeMap[T comparable, U any] struct {
	mutex sync.Mutex
	data  map[T]U
}

func newSafeMap[T comparable, U any]() safeMap[T, U] {
	return safeMap[T, U]{
		data: make(map[T]U),
	}
}

// Safely get a value of the map
func (sm *safeMap[T, U]) get(key T) (U, bool) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	val, exists := sm.data[key]
	return val, exists
}

// Safely set a value of the map. Returns false if the key was already
// present, in which case the previous value is kept.
func (sm *safeMap[T, U]) setIfAbsent(key T, val U) bool {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if _, exists := sm.data[key]; exists {
		return false
	}

	sm.data[key] = val
	return true
}

// Safely delete a key of the map. Returns whether the key was present.
func (sm *safeMap[T, U]) delete(key T) bool {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	_, exists := sm.data[key]
	delete(sm.data, key)

	return exists
}

func (sm *safeMap[T, U]) len() int {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	return len(sm.data)
}

// Returns a copy of the internal map
func (sm *safeMap[T, U]) clone() map[T]U {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	newMap := make(map[T]U)
	for key, val := range sm.data {
		newMap[key] = val
	}

	return newMap
}
