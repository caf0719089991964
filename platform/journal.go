// platform/journal.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// A Journal records translated event batches to a zstd-compressed msgpack
// stream for later replay. Each batch is written as a sequence of records,
// one per event, followed by a frame marker; empty batches still write the
// marker so replay preserves frame boundaries.
//
// A record is the event's type name followed by the event value. The type
// name keys the prototype table on replay, so renaming an event type breaks
// old journals.
type Journal struct {
	zw  *zstd.Encoder
	enc *msgpack.Encoder
}

// journalFrameMarker terminates each frame's records. Event type names are
// exported Go identifiers, so the lowercase marker cannot collide.
const journalFrameMarker = "frame"

// NewJournal starts a journal writing to w. Call Close to finish the
// compressed stream; a journal that is never closed loses its tail.
func NewJournal(w io.Writer) (*Journal, error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal stream: %w", err)
	}
	return &Journal{zw: zw, enc: msgpack.NewEncoder(zw)}, nil
}

// Record appends one frame's event batch.
func (j *Journal) Record(batch []Event) error {
	for _, ev := range batch {
		kind := reflect.TypeOf(ev).Name()
		if err := j.enc.EncodeString(kind); err != nil {
			return fmt.Errorf("failed to encode journal record: %w", err)
		}
		if err := j.enc.Encode(ev); err != nil {
			return fmt.Errorf("failed to encode %s event: %w", kind, err)
		}
	}
	if err := j.enc.EncodeString(journalFrameMarker); err != nil {
		return fmt.Errorf("failed to encode frame marker: %w", err)
	}
	return nil
}

// Flush forces buffered records out to the underlying writer so that a
// crash loses at most the frames since the last flush.
func (j *Journal) Flush() error {
	return j.zw.Flush()
}

// Close flushes and finishes the compressed stream. It does not close the
// underlying writer.
func (j *Journal) Close() error {
	return j.zw.Close()
}

// ReplayJournal reads a journal back as one event batch per frame. A final
// frame that was interrupted before its marker was written is discarded,
// wherever the stream was cut: between records, inside a record's kind, or
// inside its value.
func ReplayJournal(r io.Reader) ([][]Event, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal stream: %w", err)
	}
	defer zr.Close()

	dec := msgpack.NewDecoder(zr)
	var frames [][]Event
	var current []Event
	for {
		kind, err := dec.DecodeString()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return frames, nil
			}
			return nil, fmt.Errorf("failed to decode journal record: %w", err)
		}
		if kind == journalFrameMarker {
			frames = append(frames, current)
			current = nil
			continue
		}
		proto, ok := eventPrototypes[kind]
		if !ok {
			return nil, fmt.Errorf("unknown journal event kind %q", kind)
		}
		ev := reflect.New(proto)
		if err := dec.Decode(ev.Interface()); err != nil {
			// A stream cut after a kind but inside its value is the same
			// torn tail as a cut between records.
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return frames, nil
			}
			return nil, fmt.Errorf("failed to decode %s event: %w", kind, err)
		}
		current = append(current, ev.Elem().Interface().(Event))
	}
}

// eventPrototypes maps event type names back to their types for replay.
var eventPrototypes = buildPrototypes(
	WindowShown{},
	WindowHidden{},
	WindowExposed{},
	WindowMoved{},
	WindowResized{},
	WindowPixelSizeChanged{},
	WindowMinimized{},
	WindowMaximized{},
	WindowRestored{},
	WindowMouseEnter{},
	WindowMouseLeave{},
	WindowFocusGained{},
	WindowFocusLost{},
	WindowCloseRequested{},
	WindowICCProfileChanged{},
	KeyboardKeyDown{},
	KeyboardKeyUp{},
	TextEditing{},
	TextInput{},
	MouseMotion{},
	MouseButtonDown{},
	MouseButtonUp{},
	MouseWheel{},
	JoystickAxisMotion{},
	JoystickBallMotion{},
	JoystickHatMotion{},
	JoystickButtonDown{},
	JoystickButtonUp{},
	JoystickAdded{},
	JoystickRemoved{},
	GamepadAxisMotion{},
	GamepadButtonDown{},
	GamepadButtonUp{},
	GamepadAdded{},
	GamepadRemoved{},
	GamepadRemapped{},
	GamepadTouchpadDown{},
	GamepadTouchpadMotion{},
	GamepadTouchpadUp{},
	DropFile{},
	DropText{},
	DropBegin{},
	DropComplete{},
	DisplayAdded{},
	DisplayRemoved{},
	DisplayMoved{},
	RenderTargetsReset{},
	RenderDeviceReset{},
)

func buildPrototypes(events ...Event) map[string]reflect.Type {
	m := make(map[string]reflect.Type, len(events))
	for _, ev := range events {
		t := reflect.TypeOf(ev)
		m[t.Name()] = t
	}
	return m
}
