// Package terminal hosts the game on a tcell screen.
//
// It owns the screen lifecycle, polls key events on a dedicated goroutine,
// and provides the frame and timer scheduler the engine runs on. All engine
// work is delivered to the caller's select loop, so the engine only ever
// runs on one goroutine. EmergencyReset restores a sane terminal after a
// crash.
package terminal
