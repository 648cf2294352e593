package main

import (
	"testing"
	"time"

	"pywrap/internal/driver"
)

// Производитель с маленьким буфером не должен виснуть после выхода из TUI:
// drainEvents дочитывает канал до конца.
func TestDrainEventsUnblocksProducer(t *testing.T) {
	events := make(chan driver.Event, 1)
	done := make(chan struct{})

	go func() {
		for i := 0; i < 64; i++ {
			events <- driver.Event{File: "file.py", Status: driver.StatusDone}
		}
		close(events)
		close(done)
	}()

	drainEvents(events)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("producer still blocked after drain")
	}
}
