package main

import (
	"flag"
	"fmt"
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/scene"
	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "", "JSON settings file")
	modeName := flag.String("mode", "", "Starting mode: box, sbox, line or bline")
	levelPath := flag.String("level", "", "JSON level file replacing the mode layout")
	seed := flag.Int64("seed", 0, "Random layout seed (0 uses the clock)")
	resolution := flag.Float64("resolution", 0, "Degrees between rays (0 keeps the mode preset)")
	width := flag.Int("width", 0, "Screen width")
	height := flag.Int("height", 0, "Screen height")
	showFPS := flag.Bool("fps", true, "Show the FPS overlay")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags that were set explicitly override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *modeName
		case "level":
			cfg.Level = *levelPath
		case "seed":
			cfg.Seed = *seed
		case "resolution":
			cfg.Resolution = *resolution
		case "width":
			cfg.ScreenWidth = *width
		case "height":
			cfg.ScreenHeight = *height
		case "fps":
			cfg.ShowFPS = *showFPS
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	var level *scene.LevelData
	if cfg.Level != "" {
		level, err = scene.LoadLevel(cfg.Level)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		log.Printf("Loaded level %q from %s", level.Name, cfg.Level)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	start := cfg.StartMode()
	g, err := game.New(game.NewManager(cfg, level), renderer, inputMgr, start)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle(fmt.Sprintf("Raycaster [%s] - 1-4 switch mode, R reseed, F fps", start))
	engine.SetWindowResizable(true)

	log.Println("Starting raycaster...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
