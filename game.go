package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/asset"
	"github.com/milk9111/hexfield/config"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/system"
	"github.com/milk9111/hexfield/hud"
	"github.com/milk9111/hexfield/property"
	"github.com/milk9111/hexfield/script"
)

const (
	titleProperty = "hud.title"
	tileColorProp = "tile.color"
	debugPhysics  = "debug.physics"
	debugPlot     = "debug.plot"
	propsGroup    = "3. Properties"
)

type Game struct {
	cfg     *config.Config
	cfgName string
	log     zerolog.Logger

	world   *ecs.World
	reg     *property.Registry
	assets  *asset.Store
	sched   *ecs.Scheduler
	props   []ecs.System
	view    *system.View
	physics *system.PhysicsSystem
	render  *system.RenderSystem
	hud     *hud.HUD
	scripts *script.Runner
	watcher *config.Watcher

	title      *property.Access
	shownTitle string
	propOrder  hud.Sequence
}

func NewGame(cfg *config.Config, cfgName string, watch bool, logger zerolog.Logger) (*Game, error) {
	w := ecs.NewWorld()
	reg := property.NewRegistry(logger)
	assets := asset.NewStore(logger)
	view := &system.View{Scale: cfg.Field.TileSize}

	g := &Game{
		cfg:     cfg,
		cfgName: cfgName,
		log:     logger.With().Str("component", "game").Logger(),
		world:   w,
		reg:     reg,
		assets:  assets,
		props:   property.Systems(reg),
		view:    view,
		scripts: script.NewRunner(reg, logger),
	}

	if err := g.seedProperties(); err != nil {
		return nil, err
	}

	// accessors read by the renderer and the window title
	anchor := w.CreateEntity()
	tileColor, err := property.Bind(w, anchor, tileColorProp)
	if err != nil {
		return nil, fmt.Errorf("game: bind %s: %w", tileColorProp, err)
	}
	debug, err := property.Bind(w, anchor, debugPhysics)
	if err != nil {
		return nil, fmt.Errorf("game: bind %s: %w", debugPhysics, err)
	}
	if g.title, err = property.Bind(w, anchor, titleProperty); err != nil {
		return nil, fmt.Errorf("game: bind %s: %w", titleProperty, err)
	}

	g.hud = hud.New(reg, hud.Options{
		Hidden:      cfg.HUD.Hidden,
		PlotSamples: cfg.HUD.PlotSamples,
		PlotToggle:  debugPlot,
	}, logger)
	if err := g.hud.Setup(w); err != nil {
		return nil, err
	}

	tiles, _ := system.SpawnField(w, assets, system.FieldOptions{
		Size:       cfg.Field.Size,
		SpinCenter: cfg.Field.SpinCenter,
	}, logger)
	if tiles == 0 {
		return nil, fmt.Errorf("game: empty field (size %d)", cfg.Field.Size)
	}

	physics := system.NewPhysicsSystem(system.PhysicsOptions{
		Iterations: cfg.Physics.Iterations,
		Damping:    cfg.Physics.Damping,
		Bounds:     fieldBounds(cfg.Field.Size),
		Margin:     cfg.Physics.DespawnMargin,
		Step:       system.DefaultStep,
	}, logger)
	picking := system.NewPickingSystem(view, system.MouseClick, logger)
	picking.SetBlocked(g.hud.Contains)
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	g.physics = physics
	if _, err := hud.Spawn(w, hud.NewDiagnosticElement("bodies", g.bodyCount, true), hud.Order{Group: "1. Diag", ID: 100}); err != nil {
		return nil, err
	}
	g.render = system.NewRenderSystem(view, assets, tileColor, debug, physics)

	g.sched = ecs.NewScheduler(ecs.SystemFunc(g.pollConfig), picking)
	g.sched.Add(g.props...)
	g.sched.Add(
		assets,
		system.NewAutoColliderSystem(assets, logger),
		system.NewPlayerSpawnSystem(),
		system.NewRotateSystem(system.DefaultStep),
		system.NewPlayerExplosionSystem(system.DefaultStep, rng, logger),
		system.NewFadeOutSystem(system.DefaultStep),
		physics,
		g.hud,
		ecs.SystemFunc(g.syncTitle),
	)

	// one maintenance pass so seeded properties are resolved before any
	// script reads or writes them
	for _, s := range g.props {
		s.Update(w)
	}
	g.runScripts()

	if watch {
		watcher, err := config.NewWatcher(config.Dir, filepath.Join(config.Dir, "scripts"))
		if err != nil {
			g.log.Warn().Err(err).Msg("hot reload disabled")
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

// fieldBounds is the rectangle covered by a size x size odd-r field of unit
// tiles, in field units.
func fieldBounds(size int) cp.BB {
	return cp.BB{L: -0.5, B: -0.5, R: float64(size), T: float64(size-1)*0.75 + 0.5}
}

// seedProperties spawns the configured properties that do not exist yet and
// updates the rest. New ones get an editor row in the HUD.
func (g *Game) seedProperties() error {
	for _, spec := range g.cfg.Properties {
		v, err := spec.PropertyValue()
		if err != nil {
			return fmt.Errorf("game: property %s: %w", spec.Name, err)
		}
		if g.reg.Status(spec.Name) != property.Unknown {
			g.reg.Set(spec.Name, v)
			continue
		}
		e, err := property.Spawn(g.world, spec.Name, v)
		if err != nil {
			return fmt.Errorf("game: %w", err)
		}
		if err := hud.Attach(g.world, e, hud.NewEditThisElement(), g.propOrder.Next().InGroup(propsGroup)); err != nil {
			return fmt.Errorf("game: property %s: %w", spec.Name, err)
		}
	}
	return nil
}

func (g *Game) runScripts() {
	for _, name := range g.cfg.Scripts {
		if err := g.scripts.Run(g.world, name); err != nil {
			g.log.Error().Err(err).Str("script", name).Msg("startup script failed")
		}
	}
}

// pollConfig applies hot-reloaded settings and re-runs changed scripts.
func (g *Game) pollConfig(w *ecs.World) {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.Warn().Err(err).Msg("config watcher")
	default:
	}

	for _, path := range g.watcher.Poll() {
		switch {
		case config.IsConfigFile(path) && filepath.Base(path) == filepath.Base(g.cfgName):
			cfg, err := config.LoadConfig(g.cfgName)
			if err != nil {
				g.log.Error().Err(err).Str("file", path).Msg("reload failed")
				continue
			}
			g.cfg = cfg
			if err := g.seedProperties(); err != nil {
				g.log.Error().Err(err).Msg("reload properties")
			}
			g.hud.SetHidden(cfg.HUD.Hidden)
			zerolog.SetGlobalLevel(cfg.LogLevel())
			g.log.Info().Str("file", path).Msg("config reloaded")
			g.runScripts()
		case config.IsScriptFile(path):
			name := filepath.Base(path)
			if !slices.Contains(g.cfg.Scripts, name) {
				continue
			}
			if err := g.scripts.Run(w, name); err != nil {
				g.log.Error().Err(err).Str("script", name).Msg("script reload failed")
			}
		}
	}
}

func (g *Game) bodyCount(*ecs.World) (float64, bool) {
	return float64(g.physics.BodyCount()), true
}

func (g *Game) syncTitle(*ecs.World) {
	s, ok := g.title.Cache.AsText()
	if !ok || s == "" || s == g.shownTitle {
		return
	}
	g.shownTitle = s
	ebiten.SetWindowTitle(s)
}

func (g *Game) Update() error {
	g.sched.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.hud.Draw(g.world, screen)
}

// Layout keeps one pixel per screen pixel and centres the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := fieldBounds(g.cfg.Field.Size)
	s := g.view.Scale
	g.view.OriginX = float64(outsideWidth)/2 - (b.L+b.R)/2*s
	g.view.OriginY = float64(outsideHeight)/2 - (b.B+b.T)/2*s
	return outsideWidth, outsideHeight
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
