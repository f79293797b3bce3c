package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/render"
	"github.com/annaw245/Software/replay"
	"github.com/annaw245/Software/simulation"
)

var (
	scenarioFlag = flag.String("scenario", "defense", "Scenario file or builtin name: "+strings.Join(simulation.BuiltinNames(), ", "))
	configFlag   = flag.String("config", "", "YAML tuning file, SOCCER_* environment variables override it")
	viewFlag     = flag.Bool("view", false, "Draw the run in the terminal at real time, q quits")
	replayFlag   = flag.String("replay", "", "Directory to record a compressed replay into")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

func main() {
	flag.Parse()
	os.Exit(withLogging(*debugFlag, run))
}

// withLogging runs body between opening and closing the debug log and
// returns its exit code
func withLogging(debug bool, body func() int) int {
	if logFile := setupLogging(debug); logFile != nil {
		defer logFile.Close()
	}
	return body()
}

func run() int {
	cfg, err := parameter.Resolve(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	sc, err := resolveScenario(*scenarioFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scenario: %v\n", err)
		return 2
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var observers []func(simulation.Frame)

	if *replayFlag != "" {
		rec, err := replay.Create(*replayFlag, sc.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "replay: %v\n", err)
			return 1
		}
		defer func() {
			if err := rec.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "replay: %v\n", err)
			}
		}()
		var writeErr error
		observers = append(observers, func(f simulation.Frame) {
			if writeErr != nil {
				return
			}
			if writeErr = rec.Write(replay.FromFrame(f)); writeErr != nil {
				fmt.Fprintf(os.Stderr, "replay: %v (recording stopped)\n", writeErr)
			}
		})
	}

	if *viewFlag {
		screen, err := tcell.NewScreen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
			return 1
		}
		if err := screen.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
			return 1
		}
		defer screen.Fini()

		go watchQuit(screen, cancel)

		initial, _ := sc.World()
		view := render.NewFieldView(screen, initial.Field)
		step := time.Second / time.Duration(cfg.AI.TickRateHz)
		observers = append(observers, func(f simulation.Frame) {
			view.Draw(f)
			time.Sleep(step)
		})
	}

	report, err := simulation.Run(ctx, cfg, sc, simulation.Options{
		Observer: func(f simulation.Frame) {
			for _, o := range observers {
				o(f)
			}
		},
	})

	switch {
	case err == nil:
		fmt.Printf("PASS %s: %s after %d ticks (%v)\n", sc.Name, report.Play, report.Ticks, report.Elapsed)
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Printf("QUIT %s after %d ticks\n", sc.Name, report.Ticks)
		return 0
	case errors.Is(err, simulation.ErrTimeout):
		fmt.Printf("FAIL %s: %v\n  pending: %s\n", sc.Name, err, report.Pending)
	default:
		fmt.Printf("FAIL %s: %v\n", sc.Name, err)
	}
	return 1
}

// resolveScenario loads a scenario file, falling back to the builtin of that name
func resolveScenario(arg string) (*simulation.Scenario, error) {
	if _, err := os.Stat(arg); err == nil {
		return simulation.LoadScenario(arg)
	}
	return simulation.Builtin(arg)
}

// watchQuit cancels the run on q, Esc or Ctrl-C. It returns once the screen is finalized
func watchQuit(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
