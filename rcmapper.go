// This file is part of rcmapper.
//
// rcmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rcmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rcmapper.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"github.com/rcmapper/rcmapper/channelconfig"
	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/inputs"
	"github.com/rcmapper/rcmapper/limiter"
	"github.com/rcmapper/rcmapper/logger"
	"github.com/rcmapper/rcmapper/modalflag"
	"github.com/rcmapper/rcmapper/monitor"
	"github.com/rcmapper/rcmapper/performance"
	"github.com/rcmapper/rcmapper/prefs"
	"github.com/rcmapper/rcmapper/sdlinput"
	"github.com/rcmapper/rcmapper/statsview"
	"github.com/rcmapper/rcmapper/userinput"
)

// SDL must be serviced from the main thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx)
	stop()

	fmt.Print("\r")
	os.Exit(exitVal)
}

func launch(ctx context.Context) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "SCAN", "LIST")
	md.AdditionalHelp("RUN is the default mode. bindings are read from the file named by\nthe bindings.file preference unless -bindings is given.")

	prefsArg := md.AddString("prefs", "", "preferences to override, eg. \"poll.hz::100; source.joystick::true\"")
	log := md.AddBool("log", false, "echo log to stderr")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	}

	if stats != nil && *stats {
		stopStats := statsview.Launch(os.Stdout)
		defer stopStats()
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "SCAN":
		err = scan(ctx, md)

	case "LIST":
		err = list(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	if *prefsArg != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preference overrides: %s", unused)
		}
	}

	return 0
}

// newInputs creates an Inputs instance with the channel settings from the
// preferences and the bindings from file. a bindings file that doesn't exist
// is not an error.
func newInputs(p *preferences, bindings string) (*inputs.Inputs, string, error) {
	inp, err := inputs.NewInputs(p.channels.Get().(int), nil)
	if err != nil {
		return nil, "", err
	}
	p.applyBank(inp.Bank())

	pth, err := p.bindingsPath(bindings)
	if err != nil {
		return nil, "", err
	}

	rec, err := channelconfig.Load(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "bindings", "%s does not exist", pth)
			return inp, pth, nil
		}
		return nil, "", err
	}

	if err := channelconfig.Restore(inp, rec); err != nil {
		return nil, "", err
	}
	logger.Logf(logger.Allow, "bindings", "restored from %s", pth)

	return inp, pth, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	bindings := md.AddString("bindings", "", "bindings file to use")
	hz := md.AddInt("hz", 0, "cycles per second (overrides poll.hz preference)")
	quiet := md.AddBool("quiet", false, "do not show channel values")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, ALL")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	prf, err := newPreferences()
	if err != nil {
		return err
	}

	inp, _, err := newInputs(prf, *bindings)
	if err != nil {
		return err
	}

	srcs, closeSources, err := openSources(prf)
	if err != nil {
		return err
	}
	defer closeSources()
	inp.SetSource(srcs)

	var mon *monitor.Monitor
	if !*quiet {
		mon = monitor.NewMonitor(md.Output, prf.colour.Get().(bool))
		inp.SetConsumer(mon.Render)
		defer mon.End()
	}

	rate := prf.hz.Get().(int)
	if *hz > 0 {
		rate = *hz
	}

	lim, err := limiter.NewLimiter(rate)
	if err != nil {
		return err
	}
	defer lim.Stop()

	return performance.RunProfiler(prof, "rcmapper", func() error {
		for inp.Cycle() {
			if err := lim.Wait(ctx); err != nil {
				logger.Log(logger.Allow, "run", err)
				return nil
			}
		}
		return nil
	})
}

func scan(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("arguments: <channel> <mode> [value]\nmodes: %s", strings.Join(inputs.BindModeNames(), ", ")))

	bindings := md.AddString("bindings", "", "bindings file to update")
	deadzone := md.AddInt("deadzone", 16000, "axis movement required before it is reported")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	var channel int
	var mode inputs.BindMode
	value := 0.0

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("%s mode requires a channel and a bind mode", md)
	case 3:
		value, err = strconv.ParseFloat(md.GetArg(2), 64)
		if err != nil {
			return fmt.Errorf("value: %w", err)
		}
		fallthrough
	case 2:
		channel, err = strconv.Atoi(md.GetArg(0))
		if err != nil {
			return fmt.Errorf("channel: %w", err)
		}
		mode, err = inputs.ParseBindMode(md.GetArg(1))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *deadzone < 0 || *deadzone > 32767 {
		return fmt.Errorf("deadzone out of range: %d", *deadzone)
	}

	prf, err := newPreferences()
	if err != nil {
		return err
	}

	inp, pth, err := newInputs(prf, *bindings)
	if err != nil {
		return err
	}

	if err := inp.Bank().Check(channel); err != nil {
		return err
	}

	var trig userinput.Trigger

	if mode != inputs.BindNone {
		srcs, closeSources, err := openSources(prf)
		if err != nil {
			return err
		}
		defer closeSources()

		// events that happened before the scan started are not candidates
		userinput.Drain(srcs)

		lim, err := limiter.NewLimiter(prf.hz.Get().(int))
		if err != nil {
			return err
		}
		defer lim.Stop()

		fmt.Fprintf(md.Output, "press a key or button, or move an axis, for channel %d\n", channel)

		for trig.Kind == userinput.TriggerNone {
			if err := lim.Wait(ctx); err != nil {
				return curated.Errorf("scan cancelled")
			}

			var quit bool
			trig, quit = userinput.Scan(srcs, int16(*deadzone))
			if quit {
				return curated.Errorf("scan cancelled")
			}
		}
	}

	if err := inp.Bind(channel, trig, mode, value); err != nil {
		return err
	}

	if err := channelconfig.Capture(inp).Save(pth); err != nil {
		return err
	}

	if mode == inputs.BindNone {
		fmt.Fprintf(md.Output, "channel %d cleared\n", channel)
	} else {
		fmt.Fprintf(md.Output, "channel %d bound to %s (%s %g)\n", channel, triggerName(trig), mode, value)
	}

	return nil
}

// name of the trigger as it should be shown to the user. keys use the SDL key
// name when there is one.
func triggerName(trig userinput.Trigger) string {
	if trig.Kind == userinput.TriggerKey {
		if n := sdlinput.KeyName(trig.Key); n != "" {
			return fmt.Sprintf("Key %s", n)
		}
	}
	return trig.String()
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	bindings := md.AddString("bindings", "", "bindings file to list")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	prf, err := newPreferences()
	if err != nil {
		return err
	}

	pth := md.GetArg(0)
	if pth == "" {
		pth, err = prf.bindingsPath(*bindings)
		if err != nil {
			return err
		}
	}

	rec, err := channelconfig.Load(pth)
	if err != nil {
		return err
	}

	rec.WriteNamed(md.Output, sdlinput.KeyName)

	return nil
}
