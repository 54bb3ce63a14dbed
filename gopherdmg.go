// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/gui/sdl"
	"github.com/jetsetilly/gopherdmg/gui/termview"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/modalflag"
	"github.com/jetsetilly/gopherdmg/paths"
	"github.com/jetsetilly/gopherdmg/performance"
	"github.com/jetsetilly/gopherdmg/performance/limiter"
	"github.com/jetsetilly/gopherdmg/screenshot"
	"github.com/jetsetilly/gopherdmg/script"
	"github.com/jetsetilly/gopherdmg/statsview"
	"github.com/jetsetilly/gopherdmg/version"
)

// exit values.
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	for _, m := range govern.Modes {
		md.AddSubModes(m.String())
	}
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "launch stats server (statsview builds only)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParseError)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	// ctrl-c ends the emulation at the next opportunity
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	switch govern.ParseMode(md.Mode()) {
	case govern.ModeRun:
		err = run(md, intChan)

	case govern.ModeTerminal:
		err = term(md, intChan)

	case govern.ModeWindow:
		err = window(md, intChan)

	case govern.ModeScript:
		err = runScript(md)

	case govern.ModePerformance:
		err = perform(md)

	case govern.ModeVersion:
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(exitModeError)
	}
}

// newScene creates a DMG and sets up the scene. The scene is taken from the
// Lua file named by the only remaining argument or is the test card if there
// are no arguments.
func newScene(md *modalflag.Modes) (*hardware.DMG, *script.Script, error) {
	dmg := hardware.NewDMG()
	scene := script.NewScript(dmg, os.Stdout)

	var err error

	switch len(md.RemainingArgs()) {
	case 0:
		err = scene.RunString(script.TestCard)
	case 1:
		err = scene.RunFile(md.GetArg(0))
	default:
		err = fmt.Errorf("too many arguments for %s mode", md)
	}

	if err != nil {
		scene.Close()
		return nil, nil, err
	}

	return dmg, scene, nil
}

func run(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is a Lua script that sets up the scene.")

	frames := md.AddInt("frames", 60, "number of frames to run")
	output := md.AddString("o", "", "save final frame to PNG file")
	scale := md.AddInt("scale", 1, "scaling of saved PNG file")
	memvizFile := md.AddString("memviz", "", "save graph of the emulation state as a graphviz dot file")
	contention := md.AddBool("contention", false, "log access to memory in use by the LCD")
	block := md.AddBool("block", false, "block access to memory in use by the LCD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dmg, scene, err := newScene(md)
	if err != nil {
		return err
	}
	defer scene.Close()

	dmg.LCD.Prefs.ContentionLogging = *contention
	dmg.LCD.Prefs.BlockContention = *block

	err = dmg.RunForFrameCount(*frames, func(frame int) (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, scene.OnFrame(frame)
	})
	if err != nil {
		return err
	}

	fmt.Println(dmg)

	if *output != "" {
		err = screenshot.WriteFile(*output, dmg.LCD.Framebuffer(), *scale)
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, dmg)
	}

	return nil
}

// session drives the emulation for one of the interactive modes.
type session struct {
	dmg     *hardware.DMG
	scene   *script.Script
	intChan chan os.Signal

	// services the presentation layer and returns the state requested by
	// the user
	service func() govern.State

	// the number of frames to run for. zero means no limit
	frames int

	// the last frame passed to the scene
	frame int
}

// continueCheck is called by hardware.Run() at the end of every scanline.
func (s *session) continueCheck() (govern.State, error) {
	select {
	case <-s.intChan:
		return govern.Ending, nil
	default:
	}

	if f := s.dmg.Frame(); f != s.frame {
		s.frame = f
		if err := s.scene.OnFrame(f); err != nil {
			return govern.Ending, err
		}
		if s.frames > 0 && f >= s.frames {
			return govern.Ending, nil
		}
	}

	return s.service(), nil
}

// screenshotter returns a function that saves the most recent frame. it is
// called when the screenshot key is pressed.
func screenshotter(dmg *hardware.DMG, scale int, scene string, caption bool) func() {
	rec := screenshot.NewRecorder(scale)
	rec.Caption = caption
	dmg.LCD.AddRenderer(rec)
	return func() {
		if _, err := rec.Save(paths.UniqueFilename("screenshot", scene)); err != nil {
			logger.Log(logger.Allow, "gopherdmg", err)
		}
	}
}

func term(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is a Lua script that sets up the scene.\n" +
		"Keys: space to pause, s to save screenshot, q to quit")

	frames := md.AddInt("frames", 0, "number of frames to run (0 for no limit)")
	fps := md.AddFloat64("fps", limiter.FramesPerSecond, "frames per second (0 for no limit)")
	skip := md.AddInt("skip", 1, "draw every nth frame")
	caption := md.AddBool("caption", true, "add frame number to screenshots")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dmg, scene, err := newScene(md)
	if err != nil {
		return err
	}
	defer scene.Close()

	tv, err := termview.NewTermView(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer tv.CleanUp()

	err = tv.SetFPS(*fps)
	if err != nil {
		return err
	}
	tv.FrameSkip = *skip
	tv.OnScreenshot = screenshotter(dmg, 4, md.GetArg(0), *caption)
	dmg.LCD.AddRenderer(tv)

	s := &session{
		dmg:     dmg,
		scene:   scene,
		intChan: intChan,
		service: tv.Service,
		frames:  *frames,
	}

	return dmg.Run(s.continueCheck)
}

func window(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is a Lua script that sets up the scene.\n" +
		"Keys: space to pause, s to save screenshot, +/- to change scale, escape to quit")

	frames := md.AddInt("frames", 0, "number of frames to run (0 for no limit)")
	scale := md.AddInt("scale", 3, "window scaling")
	fps := md.AddFloat64("fps", limiter.FramesPerSecond, "frames per second (0 for no limit)")
	caption := md.AddBool("caption", true, "add frame number to screenshots")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dmg, scene, err := newScene(md)
	if err != nil {
		return err
	}
	defer scene.Close()

	gui, err := sdl.NewGUI(*scale, *fps)
	if err != nil {
		return err
	}
	defer gui.Destroy()

	gui.OnScreenshot = screenshotter(dmg, *scale, md.GetArg(0), *caption)
	dmg.LCD.AddRenderer(gui)

	s := &session{
		dmg:     dmg,
		scene:   scene,
		intChan: intChan,
		service: gui.Service,
		frames:  *frames,
	}

	return dmg.Run(s.continueCheck)
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The argument is the Lua script to run.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one Lua script required for %s mode", md)
	}

	scr := script.NewScript(hardware.NewDMG(), os.Stdout)
	defer scr.Close()

	return scr.RunFile(md.GetArg(0))
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is a Lua script that sets up the scene.")

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "create profile for emulator: CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	dmg, scene, err := newScene(md)
	if err != nil {
		return err
	}
	defer scene.Close()

	return performance.Check(os.Stdout, prf, dmg, scene.OnFrame, *duration)
}
