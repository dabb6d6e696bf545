package main

import "sync"

// MemoryClipboard is a process-local clipboard. Each open document gets its own.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (c *MemoryClipboard) Read() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemoryClipboard) Write(text string) error {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
	return nil
}
