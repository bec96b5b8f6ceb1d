package models

import "container/list"

// internEntry is one slot in the intern pool's LRU list.
type internEntry struct {
	value       string
	accessCount int64
	listElement *list.Element
}

// stringIntern is a bounded string interning pool: repeated model names and
// attribute names (typically a handful of distinct strings shared across
// thousands of entities) are stored once and handed out by reference,
// evicting the least-recently-used entry once the pool is full. Access is
// single-threaded, serialized by the caller like everything else in this
// package, so the pool carries no locking.
type stringIntern struct {
	entries map[string]*internEntry
	lru     *list.List
	maxSize int
}

const defaultInternPoolSize = 4096

func newStringIntern(maxSize int) *stringIntern {
	if maxSize <= 0 {
		maxSize = defaultInternPoolSize
	}
	return &stringIntern{
		entries: make(map[string]*internEntry),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

// intern returns the pooled copy of s, interning it first if necessary.
func (si *stringIntern) intern(s string) string {
	if s == "" {
		return ""
	}
	if entry, ok := si.entries[s]; ok {
		entry.accessCount++
		si.lru.MoveToFront(entry.listElement)
		return entry.value
	}
	if len(si.entries) >= si.maxSize {
		si.evictOldest()
	}
	entry := &internEntry{value: s, accessCount: 1}
	entry.listElement = si.lru.PushFront(entry)
	si.entries[s] = entry
	return s
}

func (si *stringIntern) evictOldest() {
	oldest := si.lru.Back()
	if oldest == nil {
		return
	}
	entry := oldest.Value.(*internEntry)
	si.lru.Remove(oldest)
	delete(si.entries, entry.value)
}

// len reports the number of distinct strings currently pooled.
func (si *stringIntern) len() int {
	return len(si.entries)
}

// names is the package-level pool shared by every EntityStore constructed
// in this process for model names and attribute names.
var names = newStringIntern(defaultInternPoolSize)
