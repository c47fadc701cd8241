package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/hexfield/config"
)

func main() {
	cfgName := flag.String("config", config.DefaultFile, "settings file in config/ (embedded copy used when absent)")
	logLevel := flag.String("log", "", "log level override (debug, info, warn, error)")
	hideHUD := flag.Bool("nohud", false, "start with the debug overlay hidden")
	watch := flag.Bool("watch", true, "reload config/ and scripts when they change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(*cfgName)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *hideHUD {
		cfg.HUD.Hidden = true
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, *cfgName, *watch, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("create game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
