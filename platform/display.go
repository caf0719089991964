// platform/display.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/brunoga/deep"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vmihailenco/msgpack/v5"
)

// DisplayHandle is an opaque reference to a display known to the platform.
// Handles arrive in display events and resolve to records via DisplayInfo.
type DisplayHandle struct {
	index int32
}

var (
	_ msgpack.CustomEncoder = DisplayHandle{}
	_ msgpack.CustomDecoder = (*DisplayHandle)(nil)
)

// EncodeMsgpack journals the handle as its bare native index.
func (h DisplayHandle) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt(int64(h.index))
}

// DecodeMsgpack restores a handle journaled by EncodeMsgpack.
func (h *DisplayHandle) DecodeMsgpack(dec *msgpack.Decoder) error {
	i, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	h.index = int32(i)
	return nil
}

// Rect is a rectangle in screen coordinates.
type Rect struct {
	X, Y          int32
	Width, Height int32
}

// DisplayMode describes one fullscreen mode of a display. Format is the
// native pixel format code.
type DisplayMode struct {
	Format        uint32
	Width, Height int32
	RefreshRate   int32
}

// DisplayInfo is the tracked record of one display. HDREnabled is frozen
// into the surface for forward compatibility; this backend cannot query it
// and always reports false.
type DisplayInfo struct {
	Name            string
	Bounds          Rect
	UsableBounds    Rect
	FullscreenModes []DisplayMode
	HDREnabled      bool
}

func rectFromSDL(r sdl.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// queryDisplayInfo reads the full record for the display at the native
// index.
func queryDisplayInfo(index int32) (*DisplayInfo, error) {
	name, err := sdl.GetDisplayName(int(index))
	if err != nil {
		return nil, fmt.Errorf("failed to get name of display %d: %w", index, err)
	}
	bounds, err := sdl.GetDisplayBounds(int(index))
	if err != nil {
		return nil, fmt.Errorf("failed to get bounds of display %d: %w", index, err)
	}
	usable, err := sdl.GetDisplayUsableBounds(int(index))
	if err != nil {
		return nil, fmt.Errorf("failed to get usable bounds of display %d: %w", index, err)
	}
	count, err := sdl.GetNumDisplayModes(int(index))
	if err != nil {
		return nil, fmt.Errorf("failed to count modes of display %d: %w", index, err)
	}
	modes := make([]DisplayMode, 0, count)
	for i := 0; i < count; i++ {
		m, err := sdl.GetDisplayMode(int(index), i)
		if err != nil {
			return nil, fmt.Errorf("failed to get mode %d of display %d: %w", i, index, err)
		}
		modes = append(modes, DisplayMode{
			Format:      m.Format,
			Width:       m.W,
			Height:      m.H,
			RefreshRate: m.RefreshRate,
		})
	}
	return &DisplayInfo{
		Name:            name,
		Bounds:          rectFromSDL(bounds),
		UsableBounds:    rectFromSDL(usable),
		FullscreenModes: modes,
	}, nil
}

// Displays returns handles for all displays currently tracked, ordered by
// native index.
func (p *SDLPlatform) Displays() []DisplayHandle {
	handles := make([]DisplayHandle, 0, len(p.displays))
	for index := range p.displays {
		handles = append(handles, DisplayHandle{index: index})
	}
	slices.SortFunc(handles, func(a, b DisplayHandle) int { return cmp.Compare(a.index, b.index) })
	return handles
}

// DisplayInfo resolves a handle to a snapshot of the display record. The
// snapshot is a deep copy; the tracked record changes only while translating
// display events. ok is false for displays no longer tracked.
func (p *SDLPlatform) DisplayInfo(handle DisplayHandle) (DisplayInfo, bool) {
	info, ok := p.displays[handle.index]
	if !ok {
		return DisplayInfo{}, false
	}
	return deep.MustCopy(*info), true
}

// displayConnected inserts the record for a newly reported display. A
// failing query is logged and the display stays untracked; the event is
// still surfaced so hosts can react.
func (p *SDLPlatform) displayConnected(index int32) {
	info, err := queryDisplayInfo(index)
	if err != nil {
		p.lg.Errorf("failed to query display %d: %v", index, err)
		return
	}
	p.displays[index] = info
}

func (p *SDLPlatform) displayDisconnected(index int32) {
	delete(p.displays, index)
}

// displayMoved refreshes the bounds of a tracked display. A move for a
// display that was never tracked triggers a full query instead.
func (p *SDLPlatform) displayMoved(index int32) {
	info, ok := p.displays[index]
	if !ok {
		p.displayConnected(index)
		return
	}
	bounds, err := sdl.GetDisplayBounds(int(index))
	if err != nil {
		p.lg.Errorf("failed to refresh bounds of display %d: %v", index, err)
		return
	}
	usable, err := sdl.GetDisplayUsableBounds(int(index))
	if err != nil {
		p.lg.Errorf("failed to refresh usable bounds of display %d: %v", index, err)
		return
	}
	info.Bounds = rectFromSDL(bounds)
	info.UsableBounds = rectFromSDL(usable)
}
