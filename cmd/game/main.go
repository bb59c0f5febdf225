// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/danvargg/tower-defense/internal/audio"
	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/defs"
	"github.com/danvargg/tower-defense/internal/state"
	"github.com/danvargg/tower-defense/internal/utils"
)

type AppGame struct {
	ctx            *state.Context
	lastUpdateTime time.Time
	titleTimer     float64
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.titleTimer += deltaTime
	if a.titleTimer >= 1 {
		a.titleTimer = 0
		ebiten.SetWindowTitle(fmt.Sprintf("Tower Defense  %0.f fps", ebiten.ActualFPS()))
	}

	a.ctx.Machine.Update(deltaTime)
	if a.ctx.Quit {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.ctx.Machine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if len(os.Args) < 2 || os.Args[1] != "launch" {
		fmt.Fprintf(os.Stderr, "usage: %s launch [flags]\n", os.Args[0])
		flag.CommandLine.PrintDefaults()
		os.Exit(2)
	}

	fs := flag.NewFlagSet("launch", flag.ExitOnError)
	settingsPath := fs.String("settings", "settings.yaml", "path to the settings file")
	levelName := fs.String("level", "", "level file inside the levels dir")
	editor := fs.Bool("editor", false, "start in the level editor")
	seed := fs.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	mute := fs.Bool("mute", false, "start with sound muted")
	fs.Parse(os.Args[2:])

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if *levelName != "" {
		settings.Level = *levelName
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *mute {
		settings.Mute = true
	}

	if err := defs.LoadEmbedded(); err != nil {
		log.Fatalf("definitions: %v", err)
	}

	sound := audio.NewSoundManager(settings.Volume, settings.Mute)
	sound.Initialize()
	defer sound.Cleanup()

	ctx := &state.Context{
		Machine:  state.NewStateMachine(),
		Settings: settings,
		Sound:    sound,
		Rng:      utils.NewPRNGService(settings.Seed),
	}
	if *editor {
		ctx.Machine.SetState(state.NewEditorState(ctx))
	} else {
		ctx.Machine.SetState(state.NewMenuState(ctx))
	}

	app := &AppGame{ctx: ctx, lastUpdateTime: time.Now()}

	ebiten.SetWindowSize(
		int(float64(config.ScreenWidth)*settings.WindowScale),
		int(float64(config.ScreenHeight)*settings.WindowScale))
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetWindowTitle("Tower Defense")
	ebiten.SetTPS(config.DesiredTPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
