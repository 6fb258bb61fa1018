package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/term"

	"ebiten-dungeon/config"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/snapshot"
	"ebiten-dungeon/systems"
)

func main() {
	var (
		seed       = flag.Int64("seed", 0, "generation seed (0 picks one from the clock)")
		rooms      = flag.Int("rooms", 0, "number of candidate rooms (overrides the config)")
		configPath = flag.String("config", "", "JSON file overriding the default generation config")
		pngPath    = flag.String("png", "", "write a PNG snapshot of the dungeon to this file")
		svgPath    = flag.String("svg", "", "write an SVG snapshot of the dungeon to this file")
		ascii      = flag.Bool("ascii", false, "print the carved tile map")
		headless   = flag.Bool("headless", false, "generate once and exit without opening a window")
	)
	flag.Parse()

	cfg := generation.DefaultConfig()
	if *configPath != "" {
		loaded, err := generation.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *rooms > 0 {
		cfg.RoomCount = *rooms
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	messages := systems.GetMessageLog()
	generator, err := generation.NewDungeonGenerator(cfg, messages.Add)
	if err != nil {
		log.Fatal(err)
	}

	var d *generation.Dungeon
	if *headless || *ascii || *pngPath != "" || *svgPath != "" {
		d, err = runHeadless(generator, *seed, *pngPath, *svgPath, *ascii, os.Stdout)
		colorize := term.IsTerminal(int(os.Stderr.Fd()))
		if perr := messages.Print(os.Stderr, colorize); perr != nil {
			log.Print(perr)
		}
		if err != nil {
			log.Fatal(err)
		}
		if *headless {
			return
		}
	}

	game := NewGame(generator, *seed, d)
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Dungeon Layout Viewer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// runHeadless generates one dungeon, writes the requested outputs and
// returns the dungeon. The ASCII map goes to out.
func runHeadless(generator *generation.DungeonGenerator, seed int64, pngPath, svgPath string, ascii bool, out io.Writer) (*generation.Dungeon, error) {
	systems.GetMessageLog().AddSystem(fmt.Sprintf("Seed %d", seed))
	generator.SetSeed(seed)

	d, err := generator.Generate()
	if err != nil {
		systems.GetMessageLog().AddAlert("ERROR: " + err.Error())
		return nil, err
	}

	if pngPath != "" {
		if err := writeFile(pngPath, func(w io.Writer) error {
			return snapshot.WritePNG(w, d, snapshot.DefaultOptions())
		}); err != nil {
			return nil, err
		}
		systems.GetMessageLog().AddSystem("Saved " + pngPath)
	}
	if svgPath != "" {
		if err := writeFile(svgPath, func(w io.Writer) error {
			return snapshot.WriteSVG(w, d, snapshot.DefaultOptions())
		}); err != nil {
			return nil, err
		}
		systems.GetMessageLog().AddSystem("Saved " + svgPath)
	}
	if ascii {
		if _, err := fmt.Fprintln(out, generator.Carve(d).String()); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// writeFile creates path and hands it to write. The close error is
// reported when write succeeds.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
