// cmd/mui/main.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// The mui demo opens a window, draws a smart-scaled test scene and echoes
// translated input events. It doubles as a smoke test for the platform and
// renderer packages on a new machine: if the capability negotiation or the
// event translation is broken, this is the quickest way to see it.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"runtime"

	"github.com/apenwarr/fixconsole"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/goforj/godump"
	"github.com/ncruces/zenity"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/muikit/mui/log"
	"github.com/muikit/mui/platform"
	"github.com/muikit/mui/renderer"
)

const projectURL = "https://github.com/muikit/mui"

var (
	configPath  = flag.String("config", "", "path to the config file")
	journalPath = flag.String("journal", "", "capture input events to the given file")
	logFilePath = flag.String("logfile", "", "write logs to the given file instead of stderr")
	verbose     = flag.Bool("verbose", false, "dump negotiated capabilities and displays at startup")
)

func init() {
	// The SDL event pump and all GL calls must stay on the startup thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	// Best effort; without it console output is lost in Windows GUI builds.
	_ = fixconsole.FixConsoleIfNeeded()

	path := *configPath
	if path == "" {
		path = defaultConfigPath()
	}
	config, err := LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	lg := log.New(config.LogLevel, *logFilePath)
	defer lg.CatchAndReportCrash()
	logHostProfile(lg)

	plat, err := platform.New(lg)
	if err != nil {
		fatalError(lg, fmt.Sprintf("failed to initialize platform: %v", err))
	}
	defer plat.Dispose()

	window, err := platform.NewWindow(plat, config.WindowTitle, lg)
	if err != nil {
		fatalError(lg, fmt.Sprintf("failed to create window: %v", err))
	}
	defer window.Dispose()

	if err := window.SetVSync(config.VSync); err != nil {
		lg.Warnf("failed to set vsync: %v", err)
	}

	canvas := renderer.NewCanvas(window)

	if *verbose {
		godump.Dump(window.Capabilities())
		for _, handle := range plat.Displays() {
			if info, ok := plat.DisplayInfo(handle); ok {
				godump.Dump(info)
			}
		}
	}

	scene, err := buildScene(config, canvas)
	if err != nil {
		fatalError(lg, fmt.Sprintf("failed to build scene: %v", err))
	}
	defer scene.release(canvas)

	if *journalPath != "" {
		f, err := os.Create(*journalPath)
		if err != nil {
			fatalError(lg, fmt.Sprintf("failed to create journal file: %v", err))
		}
		journal, err := platform.NewJournal(f)
		if err != nil {
			fatalError(lg, fmt.Sprintf("failed to start journal: %v", err))
		}
		defer f.Close()
		defer journal.Close()
		plat.AttachJournal(journal)
		lg.Infof("Capturing input to %s", *journalPath)
	}

	window.Show()
	run(config, lg, plat, window, canvas, scene)

	if err := config.Save(path); err != nil {
		lg.Errorf("failed to save config: %v", err)
	}
}

func run(config *Config, lg *log.Logger, plat *platform.SDLPlatform, window *platform.Window,
	canvas *renderer.Canvas, scene *demoScene) {
	for {
		for _, ev := range plat.Poll() {
			switch e := ev.(type) {
			case platform.WindowCloseRequested:
				lg.Infof("Close requested, shutting down")
				return
			case platform.WindowPixelSizeChanged:
				window.Resize(canvas)
			case platform.KeyboardKeyDown:
				switch e.Key {
				case platform.KeyF1:
					if err := browser.OpenURL(projectURL); err != nil {
						lg.Errorf("failed to open %s: %v", projectURL, err)
					}
				case platform.KeyV:
					config.VSync = !config.VSync
					if err := window.SetVSync(config.VSync); err != nil {
						lg.Warnf("failed to set vsync: %v", err)
					} else {
						lg.Infof("VSync %v", config.VSync)
					}
				}
			default:
				lg.Debugf("event: %#v", ev)
			}
		}

		canvas.Clear(config.clearColor())
		scene.draw(canvas)
		window.Swap()
	}
}

// demoScene is two crossing lines, plus a textured sprite when an image is
// configured, all under one shared smart-scaling contributor.
type demoScene struct {
	geometry *renderer.GeometryProgram
	textured *renderer.TexturedProgram
	lines    []*renderer.Composition
	sprite   *renderer.Composition
	texture  uint32
}

func buildScene(config *Config, canvas *renderer.Canvas) (*demoScene, error) {
	geometry, err := renderer.NewGeometryProgramFromSource(geometryVertexSource, geometryFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to build geometry program: %w", err)
	}
	scene := &demoScene{geometry: geometry}

	refW, refH := config.ReferenceWidth, config.ReferenceHeight
	scaling := renderer.NewSmartScaling(refW, refH)

	for _, line := range []struct {
		p0, p1 mgl32.Vec2
		col    color.RGBA
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec2{float32(refW), float32(refH)}, color.RGBA{R: 222, G: 165, B: 132, A: 255}},
		{mgl32.Vec2{0, float32(refH)}, mgl32.Vec2{float32(refW), 0}, color.RGBA{R: 132, G: 165, B: 222, A: 255}},
	} {
		comp := renderer.NewComposition(renderer.NewLineGeometry(line.p0, line.p1, line.col))
		comp.AddModelTransform(scaling)
		scene.lines = append(scene.lines, comp)
	}

	if config.ImagePath != "" {
		textured, err := renderer.NewTexturedProgramFromSource(texturedVertexSource, texturedFragmentSource)
		if err != nil {
			scene.release(canvas)
			return nil, fmt.Errorf("failed to build textured program: %w", err)
		}
		scene.textured = textured

		texture, err := canvas.LoadImage(config.ImagePath)
		if err != nil {
			scene.release(canvas)
			return nil, err
		}
		scene.texture = texture

		const half = 64
		cx, cy := float32(refW)/2, float32(refH)/2
		mesh := renderer.NewSpriteMesh(mgl32.Vec2{cx - half, cy - half}, mgl32.Vec2{cx + half, cy + half})
		scene.sprite = renderer.NewComposition(mesh)
		scene.sprite.AddModelTransform(scaling)
	}

	return scene, nil
}

func (s *demoScene) draw(canvas *renderer.Canvas) {
	for _, line := range s.lines {
		canvas.Draw(line, s.geometry, 0)
	}
	if s.sprite != nil {
		canvas.Draw(s.sprite, s.textured, s.texture)
	}
}

func (s *demoScene) release(canvas *renderer.Canvas) {
	for _, line := range s.lines {
		line.Release()
	}
	if s.sprite != nil {
		s.sprite.Release()
	}
	if s.texture != 0 {
		canvas.ReleaseTexture(s.texture)
	}
	if s.textured != nil {
		s.textured.Release()
	}
	s.geometry.Release()
}

func logHostProfile(lg *log.Logger) {
	if info, err := host.Info(); err == nil {
		lg.Infof("Host: %s %s (%s)", info.Platform, info.PlatformVersion, info.KernelArch)
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		lg.Infof("CPU: %s, %d logical cores", cpus[0].ModelName, runtime.NumCPU())
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		lg.Infof("Memory: %d MB total", vm.Total/(1024*1024))
	}
}

// fatalError reports an unrecoverable startup failure both to the log and,
// since the demo may have been launched without a console, in an error
// dialog, then exits.
func fatalError(lg *log.Logger, msg string) {
	lg.Errorf("%s", msg)
	if err := zenity.Error(msg, zenity.Title("mui"), zenity.ErrorIcon); err != nil {
		fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(1)
}
