package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
	"github.com/milk9111/firstperson/ecs/entity"
	"github.com/milk9111/firstperson/ecs/system"
	"github.com/milk9111/firstperson/physics"
	"github.com/milk9111/firstperson/prefabs"
	"github.com/milk9111/firstperson/render"
	"github.com/milk9111/firstperson/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// Ebiten ticks at 60 TPS by default; the physics step matches.
	fixedStep = float32(1.0 / 60.0)
)

// ebitenCursor drives the OS cursor for the capture gate. Captured mode
// confines the pointer and hides it; free mode restores it.
type ebitenCursor struct{}

func (ebitenCursor) SetCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

type Game struct {
	frames int

	world    *ecs.World
	player   ecs.Entity
	camera   ecs.Entity
	props    []scene.Prop
	renderer *render.Renderer
	watcher  *prefabs.Watcher

	overlay     *ebitenui.UI
	showOverlay bool
	quit        bool
}

func NewGame(watch bool) (*Game, error) {
	controls, err := prefabs.LoadControlsSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load controls: %w", err)
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load camera spec: %w", err)
	}

	props, err := scene.LoadProps("scene.tengo")
	if err != nil {
		return nil, fmt.Errorf("game: load scene: %w", err)
	}
	space := physics.NewSpace()
	scene.Build(space, props)

	world := ecs.NewWorld()
	player, err := entity.NewPlayer(world, space)
	if err != nil {
		return nil, fmt.Errorf("game: build player: %w", err)
	}
	camera, err := entity.NewCamera(world, player)
	if err != nil {
		return nil, fmt.Errorf("game: build camera: %w", err)
	}

	// Frame order is a hard invariant: look must apply before locomotion
	// reads the player orientation, and the rig settles after physics.
	world.AddSystem(system.NewInputSystem(ebiten.KeyEscape))
	world.AddSystem(system.NewCaptureSystem(ebitenCursor{}, controls.EscapeAction == prefabs.EscapeQuit))
	world.AddSystem(system.NewLookSystem())
	world.AddSystem(system.NewLocomotionSystem())
	world.AddSystem(system.NewPhysicsSystem(space, fixedStep))
	world.AddSystem(system.NewCameraRigSystem())

	g := &Game{
		world:    world,
		player:   player,
		camera:   camera,
		props:    props,
		renderer: render.NewRenderer(cameraSpec.FOV),
	}
	g.overlay = newOverlayUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatcher()
	g.world.Update()

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventQuit:
			g.quit = true
		case ecs.EventCaptureChanged:
			captured, _ := evt.Data.(bool)
			g.showOverlay = !captured
		}
	}

	if g.showOverlay {
		g.overlay.Update()
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// drainWatcher re-applies prefab tuning when a spec file changes on disk.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab changed: %s", name)
			changed = true
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("game: prefab watcher: %v", err)
			}
		default:
			if changed {
				g.reloadTuning()
			}
			return
		}
	}
}

func (g *Game) reloadTuning() {
	if spec, err := prefabs.LoadPlayerSpec(); err != nil {
		log.Printf("game: reload player spec: %v", err)
	} else if loco, ok := ecs.Get(g.world, g.player, component.LocomotionKind); ok {
		loco.WalkSpeed = spec.WalkSpeed
		loco.FloatHeight = spec.FloatHeight
		loco.JumpHeight = spec.JumpHeight
		loco.JumpShortenGravity = spec.JumpShortenGravity
	}

	if spec, err := prefabs.LoadCameraSpec(); err != nil {
		log.Printf("game: reload camera spec: %v", err)
	} else if rig, ok := ecs.Get(g.world, g.camera, component.CameraRigKind); ok {
		rig.Sensitivity = spec.Sensitivity
		g.renderer = render.NewRenderer(spec.FOV)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	transform, ok := ecs.Get(g.world, g.camera, component.TransformKind)
	if !ok {
		panic("game: camera entity has no transform")
	}
	g.renderer.Draw(screen, transform.Position, transform.Rotation, g.props)

	if g.showOverlay {
		g.overlay.Draw(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
