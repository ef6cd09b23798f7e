package main

import (
	"flag"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/prajyot-codes/backdrop/internal/config"
	"github.com/prajyot-codes/backdrop/internal/engine"
	"github.com/prajyot-codes/backdrop/internal/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to an INI theme file (defaults built in)")
	width := flag.Int("width", 1280, "Window width in pixels")
	height := flag.Int("height", 720, "Window height in pixels")
	fps := flag.Int("fps", 60, "Target frames per second")
	title := flag.String("title", "backdrop", "Window title")
	undecorated := flag.Bool("undecorated", false, "Borderless window for use as a desktop backdrop")
	globalPointer := flag.Bool("global-pointer", false, "Read the pointer from the X server instead of the window (for undecorated backdrops)")
	seed := flag.Int64("seed", 0, "Scene seed, 0 picks one from the clock")
	logLevel := flag.String("log", "info", "Log level: debug, info, warn, error")
	showRaylibInfo := flag.Bool("raylib-log", false, "Show raylib's own info messages")
	flag.Parse()

	utils.CurrentLevel = utils.ParseLevel(*logLevel)
	utils.ShowRaylibInfo = *showRaylibInfo

	cfg, err := config.Load(*configPath)
	if err != nil {
		utils.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	utils.Info("Scene seed: %d", *seed)

	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if *undecorated {
		flags |= uint32(rl.FlagWindowUndecorated)
	}
	rl.SetConfigFlags(flags)

	rl.InitWindow(int32(*width), int32(*height), *title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(*fps))

	drv := engine.New(cfg, *seed)

	if *globalPointer {
		ptr, err := utils.OpenX11Pointer()
		if err != nil {
			utils.Warn("X11 pointer unavailable, falling back to window mouse: %v", err)
		} else {
			defer ptr.Close()
			drv.SetPointerSource(func() (float32, float32, bool) {
				x, y, err := ptr.Position()
				if err != nil {
					return 0, 0, false
				}
				return float32(x), float32(y), true
			})
		}
	}

	if err := drv.Mount(rl.GetScreenWidth(), rl.GetScreenHeight()); err != nil {
		utils.Warn("Backdrop not mounted: %v", err)
		return
	}
	defer drv.Unmount()

	for !rl.WindowShouldClose() {
		drv.Frame()
	}
}
