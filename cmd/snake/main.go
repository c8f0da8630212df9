package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"
	"snake/internal/ui/terminal"
	"snake/internal/ui/types"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config := domain.DefaultGameConfig()
	ui := flag.String("ui", "gui", "Frontend: gui (window) or tui (terminal)")
	logPath := flag.String("log", "", "Log file; the terminal frontend discards logs when empty")
	showGrid := flag.Bool("grid", false, "Draw cell borders in the window (toggle with G)")
	flag.IntVar(&config.Width, "width", config.Width, "Board width in cells")
	flag.IntVar(&config.Height, "height", config.Height, "Board height in cells")
	flag.IntVar(&config.CellSize, "cell", config.CellSize, "Cell size in pixels")
	flag.IntVar(&config.StateDelayMs, "tick", config.StateDelayMs, "Milliseconds between steps")
	flag.IntVar(&config.FoodMargin, "margin", config.FoodMargin, "Cells kept free of food along the walls")
	flag.Int64Var(&config.Seed, "seed", 0, "Random seed for food placement (0 = time based)")
	flag.Parse()

	if err := setupLogging(*ui, *logPath); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	application, err := app.NewApp(config)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	switch *ui {
	case "gui":
		err = runGUI(ctx, application, config, *showGrid)
	case "tui":
		err = runTUI(ctx, application)
	default:
		err = fmt.Errorf("unknown frontend %q", *ui)
	}

	application.Stop()
	if err != nil {
		log.Fatalf("UI error: %v", err)
	}
}

func setupLogging(ui, path string) error {
	if path == "" {
		if ui == "tui" {
			log.SetOutput(io.Discard)
		}
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

func runGUI(ctx context.Context, application *app.App, config *domain.GameConfig, showGrid bool) error {
	engine := graphics.NewEngine(config)
	engine.RegisterScreens(
		screens.NewMenuScreen(engine, application),
		screens.NewGameScreen(engine, showGrid),
	)

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")
		engine.Close()
		return nil
	})
	g.Go(func() error {
		handleAppEvents(ctx, application, engine)
		return nil
	})
	g.Go(func() error {
		handleUIEvents(ctx, application, engine, cancel)
		return nil
	})

	// ebiten has to own the main goroutine.
	err := engine.Run()
	cancel()
	if werr := g.Wait(); werr != nil && err == nil {
		err = werr
	}
	return err
}

func handleAppEvents(ctx context.Context, application *app.App, engine *graphics.Engine) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-application.Events():
			if !ok {
				return
			}
			switch event.Type {
			case app.AppEventPhaseChanged:
				payload := event.Payload.(app.PhasePayload)
				if payload.To == app.PhaseMainMenu {
					engine.ClearState()
					engine.SetScreen(types.ScreenMenu)
				} else {
					engine.SetScreen(types.ScreenGame)
				}

			case app.AppEventStateUpdated:
				payload := event.Payload.(app.StatePayload)
				engine.SetState(payload.Snapshot, application.BestScore())
			}
		}
	}
}

func handleUIEvents(ctx context.Context, application *app.App, engine *graphics.Engine, quit context.CancelFunc) {
	for {
		var event types.UIEvent
		select {
		case <-ctx.Done():
			return
		case event = <-engine.Events():
		}

		var err error
		switch event.Type {
		case types.UIEventStartGame:
			err = application.StartGame()

		case types.UIEventSteer:
			data := event.Payload.(types.SteerData)
			err = application.Steer(data.Direction)

		case types.UIEventTogglePause:
			err = application.TogglePause()

		case types.UIEventRetry:
			err = application.Retry()

		case types.UIEventExitGame:
			err = application.ExitToMenu()

		case types.UIEventQuit:
			quit()
			return
		}

		if err != nil && !errors.Is(err, app.ErrNotPlaying) {
			log.Printf("Main: %v", err)
		}
	}
}

func runTUI(ctx context.Context, application *app.App) error {
	model := terminal.NewModel(application, application.Events())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
