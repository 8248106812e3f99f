// Command habit-splash plays the habit tracker splash in the terminal and reports the view it hands off to.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/habit-splash/audio"
	"github.com/lixenwraith/habit-splash/config"
	"github.com/lixenwraith/habit-splash/navigation"
	"github.com/lixenwraith/habit-splash/splash"
	"github.com/lixenwraith/habit-splash/vmath"
)

const (
	Version = "0.1.0"
	appName = "habit-splash"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the flags layered over the config file
type options struct {
	configPath string
	seed       uint64
	fps        int
	mute       bool
	sound      string
	volume     float64
	debug      bool
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Habit tracker splash animation",
		Long: `habit-splash plays the five-phase habit tracker splash: glyph rain,
the habit grid activation wave, the title reveal, a pulse and the exit fade,
then opens the login view.

Press q, Esc or Ctrl-C to skip.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 seeds from the clock")
	flags.IntVar(&opts.fps, "fps", 60, "Frames per second")
	flags.BoolVar(&opts.mute, "mute", false, "Disable sound cues")
	flags.StringVar(&opts.sound, "sound", "bell", "Exit cue sound id (see 'sounds')")
	flags.Float64Var(&opts.volume, "volume", 0.5, "Sound volume 0..1")
	flags.BoolVar(&opts.debug, "debug", false, "Write a debug log to logs/")

	cmd.AddCommand(soundsCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// resolveConfig loads the file or defaults, then applies only the flags set explicitly
func resolveConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadFromFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Splash.Seed = opts.seed
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = opts.fps
	}
	if flags.Changed("mute") {
		cfg.Audio.Mute = opts.mute
	}
	if flags.Changed("sound") {
		cfg.Audio.Sound = opts.sound
	}
	if flags.Changed("volume") {
		cfg.Audio.Volume = opts.volume
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func soundsCmd() *cobra.Command {
	var volume float64
	cmd := &cobra.Command{
		Use:   "sounds [id]",
		Short: "List reminder sounds, or preview one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, opt := range audio.Sounds() {
					fmt.Fprintf(out, "%-8s %-16s %s\n", opt.ID, opt.Name, opt.Description)
				}
				return nil
			}
			return preview(out, args[0], volume)
		},
	}
	cmd.Flags().Float64Var(&volume, "volume", 0.5, "Preview volume 0..1")
	return cmd
}

// preview plays one tone and waits for it to finish
func preview(out io.Writer, id string, volume float64) error {
	if _, ok := audio.ParseSound(id); !ok {
		return fmt.Errorf("unknown sound %q", id)
	}
	engine := audio.NewEngine(volume)
	if err := engine.Initialize(); err != nil {
		return fmt.Errorf("audio unavailable: %w", err)
	}
	defer engine.Close()

	fmt.Fprintf(out, "playing %s\n", id)
	engine.Play(id)
	// Allow the speaker buffer to drain
	time.Sleep(engine.Length(id) + 150*time.Millisecond)
	return nil
}

// run mounts the director on a tcell screen and blocks until navigation or skip
func run(parent context.Context, cfg *config.Config, out io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	finalized := false
	fini := func() {
		if !finalized {
			finalized = true
			screen.Fini()
		}
	}
	defer fini()

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHABIT-SPLASH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	player := audio.Open(cfg.Audio.Volume, cfg.Audio.Mute, cfg.Audio.TitleCue, cfg.Audio.Sound)
	defer player.Close()

	router := navigation.NewRouter()
	router.OnEnter(func(r navigation.Route) {
		log.Printf("router: entered %s (guarded=%t)", r.Path, r.Guarded)
	})

	seed := cfg.Splash.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("habit-splash %s: seed %d, %d fps", Version, seed, cfg.Display.FPS)

	director, err := splash.New(ctx, cfg.SplashConfig(), splash.Deps{
		Screen:    screen,
		Navigator: router,
		Rand:      vmath.NewFastRand(seed),
		Sound:     player,
	})
	if err != nil {
		return err
	}

	go pollEvents(screen, director, cancel)

	if err := director.Run(ctx, cfg.Display.FPS); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("habit-splash: frame loop: %v", err)
	}

	// Finished sequences still owe the post-delay navigation
	select {
	case <-director.Done():
	case <-ctx.Done():
	}
	director.Unmount()
	fini()

	if err := director.Err(); err != nil {
		return err
	}
	route := router.Current()
	if route == "" {
		log.Printf("habit-splash: skipped")
		return nil
	}
	fmt.Fprintf(out, "navigated to %s\n", route)
	return nil
}

// pollEvents forwards resizes to the director and cancels on quit keys, returns once the screen is finalized
func pollEvents(screen tcell.Screen, director *splash.Director, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			director.RequestResize(w, h)
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				log.Printf("habit-splash: quit key")
				cancel()
				return
			}
		}
	}
}
