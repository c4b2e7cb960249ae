package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"

	"github.com/automoto/caged/assets"
	"github.com/automoto/caged/config"
	"github.com/automoto/caged/fonts"
	"github.com/automoto/caged/scenes"
	"github.com/automoto/caged/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(content scenes.Content) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, content)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// rebindFlags collects repeated -rebind action=Input values.
type rebindFlags []string

func (r *rebindFlags) String() string {
	return strings.Join(*r, ",")
}

func (r *rebindFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("want action=Input, got %q", v)
	}
	*r = append(*r, v)
	return nil
}

func main() {
	var (
		wavesPath    string
		seed         uint64
		skipTutorial bool
		rebinds      rebindFlags
	)
	flag.StringVar(&wavesPath, "waves", "", "load the wave table from this YAML file and reload it on change")
	flag.Uint64Var(&seed, "seed", 0, "enemy spawn seed (0 picks one at random)")
	flag.BoolVar(&skipTutorial, "skip-tutorial", false, "start at the first countdown")
	flag.Var(&rebinds, "rebind", "rebind an action, e.g. -rebind jump=KeyK (repeatable)")
	flag.Parse()

	config.Debug.SkipTutorial = skipTutorial
	config.Debug.Seed = seed

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved bindings
	store, err := systems.InitPersistence()
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if err := systems.LoadKeyBindings(store, config.Input.Bindings); err != nil {
		log.Printf("Warning: Could not load key bindings: %v", err)
	}
	for _, r := range rebinds {
		action, input, _ := strings.Cut(r, "=")
		if err := systems.RebindAction(store, config.Input.Bindings, action, input); err != nil {
			log.Fatalf("Failed to rebind %s: %v", action, err)
		}
	}

	content := scenes.Content{
		Arena: assets.MustLoadArena(),
		Seed:  seed,
	}
	if wavesPath == "" {
		content.Waves = assets.MustLoadWaves()
	} else {
		table, err := assets.LoadWavesFile(wavesPath)
		if err != nil {
			log.Fatalf("Failed to load wave table: %v", err)
		}
		content.Waves = table
		content.WavesPath = wavesPath

		watcher, err := assets.NewWatcher(filepath.Dir(wavesPath))
		if err != nil {
			log.Printf("Warning: Wave table hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			content.Watcher = watcher
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Caged")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(content)); err != nil {
		log.Fatal(err)
	}
}
