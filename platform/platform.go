// platform/platform.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package platform owns the native windowing layer: library lifetime, the
// single application window and its OpenGL context, display tracking, and
// the translation of native events into the package's closed Event set.
package platform

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/muikit/mui/log"
)

// SDLPlatform is the process-wide platform handle. Like the underlying
// library it is not safe for concurrent use; every call must come from the
// main OS thread, which the host locks in its init.
type SDLPlatform struct {
	lg *log.Logger

	// Tracked displays keyed by native index, mutated only while
	// translating display events.
	displays map[int32]*DisplayInfo

	journal *Journal

	hasWindow bool
}

// New initializes the video, events, joystick, haptic and game controller
// subsystems and enumerates the displays connected at startup.
func New(lg *log.Logger) (*SDLPlatform, error) {
	lg.Infof("Starting SDL initialization")
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_JOYSTICK |
		sdl.INIT_HAPTIC | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}
	lg.Infof("SDL %d.%d.%d", sdl.MAJOR_VERSION, sdl.MINOR_VERSION, sdl.PATCHLEVEL)

	p := &SDLPlatform{
		lg:       lg,
		displays: make(map[int32]*DisplayInfo),
	}

	count, err := sdl.GetNumVideoDisplays()
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to count displays: %w", err)
	}
	for i := 0; i < count; i++ {
		p.displayConnected(int32(i))
	}
	lg.Infof("Finished SDL initialization, tracking %d displays", len(p.displays))

	return p, nil
}

// Poll pumps the native event queue and drains it, translating each native
// event in arrival order. Native events outside the Event set disappear; an
// empty queue yields nil. With a journal attached the batch, empty ones
// included, is recorded and flushed before it is returned, so a crash loses
// at most the frame in flight.
func (p *SDLPlatform) Poll() []Event {
	sdl.PumpEvents()

	var events []Event
	for {
		native := sdl.PollEvent()
		if native == nil {
			break
		}
		if ev, ok := p.translate(native); ok {
			events = append(events, ev)
		}
	}

	if p.journal != nil {
		err := p.journal.Record(events)
		if err == nil {
			err = p.journal.Flush()
		}
		if err != nil {
			p.lg.Errorf("failed to record event batch, detaching journal: %v", err)
			p.journal = nil
		}
	}
	return events
}

// AttachJournal records every subsequent Poll batch to j. A recording error
// is logged and detaches the journal; nil detaches it immediately. The
// journal's lifetime stays with the caller.
func (p *SDLPlatform) AttachJournal(j *Journal) {
	p.journal = j
}

// Dispose shuts the platform down. Any window must be disposed first.
func (p *SDLPlatform) Dispose() {
	sdl.Quit()
}
