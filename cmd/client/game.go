package main

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids-arena/internal/transport/ws"
	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/client"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var flockColors = []color.RGBA{
	{R: 255, G: 90, B: 90, A: 255},
	{R: 90, G: 200, B: 255, A: 255},
	{R: 120, G: 230, B: 120, A: 255},
	{R: 250, G: 210, B: 80, A: 255},
	{R: 210, G: 130, B: 255, A: 255},
}

type Game struct {
	ctx        context.Context
	serverURL  string
	name       string
	halfExtent float64
	logger     golog.Logger

	mu   sync.Mutex // guards conn, swapped by the receive goroutine
	conn *ws.Client

	replica *client.Replica
	camera  *client.Camera
	menu    *client.Menu

	// UI Controls
	menuPanel      *ui.MenuPanel
	options        *ui.OptionsPanel
	widgetZoom     *ui.Slider
	widgetSense    *ui.Slider
	widgetShowBox  *ui.Checkbox
	widgetShowVel  *ui.Checkbox
	lastMouseX     int
	lastMouseY     int
	lastUpdateTime time.Time

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

func NewGame(ctx context.Context, serverURL, name string, halfExtent float64, logger golog.Logger) *Game {
	labels := make([]string, len(client.MenuItems))
	for i, it := range client.MenuItems {
		labels[i] = string(it)
	}
	options := ui.NewOptionsPanel("Options", screenWidth-250, 10, 240)
	options.Group("View")
	zoom := options.AddSlider("Zoom (px per unit)", 1, 20, 6)
	sense := options.AddSlider("Mouse sensitivity", 0.02, 0.5, client.DefaultSensitivity)
	options.Group("Overlay")
	showBox := options.AddCheckbox("Show capture box", true)
	showVel := options.AddCheckbox("Show velocities", false)

	return &Game{
		ctx:            ctx,
		serverURL:      serverURL,
		name:           name,
		halfExtent:     halfExtent,
		logger:         logger,
		replica:        client.NewReplica(),
		camera:         client.NewCamera(geometry.Vector3{Y: 30}),
		menu:           client.NewMenu(),
		menuPanel:      ui.NewMenuPanel("Boids Arena", screenWidth/2-120, screenHeight/2-110, 240, labels...),
		options:        options,
		widgetZoom:     zoom,
		widgetSense:    sense,
		widgetShowBox:  showBox,
		widgetShowVel:  showVel,
		lastUpdateTime: time.Now(),
	}
}

// connect dials the server and starts feeding the replica.
func (g *Game) connect() error {
	dialCtx, cancel := context.WithTimeout(g.ctx, 5*time.Second)
	defer cancel()
	c, err := ws.Dial(dialCtx, g.serverURL, g.name)
	if err != nil {
		return err
	}
	g.replica.Reset()
	g.replica.SetConnectionID(c.ConnectionID())
	g.mu.Lock()
	g.conn = c
	g.mu.Unlock()
	g.logger.Infof("connected to %s as %s", g.serverURL, c.ConnectionID())

	go func() {
		err := client.Pump(c, g.replica)
		g.logger.Infof("connection closed: %v", err)
		g.mu.Lock()
		if g.conn == c {
			g.conn = nil
		}
		g.mu.Unlock()
	}()
	return nil
}

func (g *Game) disconnect() {
	g.mu.Lock()
	c := g.conn
	g.conn = nil
	g.mu.Unlock()
	if c != nil {
		_ = c.Close()
	}
	g.replica.Reset()
}

func (g *Game) current() *ws.Client {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.conn
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()
	dt := start.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = start

	// 1. Keyboard shortcuts
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.disconnect()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.menu.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.menu.ToggleInstructions()
	}

	// 2. Widgets
	ptr := ui.ReadPointer()
	if g.menu.Visible {
		if label := g.menuPanel.Update(ptr); label != "" {
			if err := g.handle(g.menu.Select(client.MenuItem(label))); err != nil {
				return err
			}
		}
	} else {
		g.options.Update(ptr)
	}
	g.camera.Sensitivity = g.widgetSense.Value

	// 3. Mouse look while the right button is held
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.camera.Look(float64(mx-g.lastMouseX), float64(my-g.lastMouseY))
	}
	g.lastMouseX, g.lastMouseY = mx, my

	// 4. Controls and camera
	in := readInput()
	if own, ok := g.replica.OwnPlayer(); ok {
		g.camera.Follow(vec(own.GetPosition()))
	} else {
		g.camera.MoveFree(in, dt)
	}
	if c := g.current(); c != nil && g.replica.ObjectID() != 0 {
		if err := c.SendControls(client.Controls(in, g.camera)); err != nil {
			g.logger.Warnf("send controls: %v", err)
		}
	}
	return nil
}

func (g *Game) handle(a client.Action) error {
	switch a {
	case client.ActionReady:
		c := g.current()
		if c == nil {
			if err := g.connect(); err != nil {
				g.logger.Errorf("connect: %v", err)
				return nil
			}
			c = g.current()
		}
		if err := c.SendReady(); err != nil {
			g.logger.Errorf("ready: %v", err)
		}
	case client.ActionDisconnect:
		g.disconnect()
	case client.ActionQuit:
		g.disconnect()
		return ebiten.Termination
	}
	return nil
}

func readInput() client.InputState {
	return client.InputState{
		Forward: ebiten.IsKeyPressed(ebiten.KeyW),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		Up:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Down:    ebiten.IsKeyPressed(ebiten.KeyControl),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	snap := g.replica.Snapshot()
	zoom := g.widgetZoom.Value

	// 1. Capture box around the target
	if snap.GetTargetActive() && g.widgetShowBox.Value {
		x, y := g.project(vec(snap.GetTarget()), zoom)
		side := g.halfExtent * 2 * zoom
		vector.StrokeRect(screen, x-float32(side/2), y-float32(side/2), float32(side), float32(side),
			1, color.RGBA{R: 255, G: 255, B: 255, A: 120}, true)
	}

	// 2. Agents, colored by flock
	for _, a := range snap.GetAgents() {
		p := vec(a.GetPosition())
		if p.Y < -100 {
			continue // parked after a capture
		}
		x, y := g.project(p, zoom)
		clr := flockColors[int(a.GetFlockId())%len(flockColors)]
		vector.FillRect(screen, x-2, y-2, 4, 4, clr, true)
		if g.widgetShowVel.Value {
			tip := p.Add(vec(a.GetVelocity()).Mul(0.2))
			tx, ty := g.project(tip, zoom)
			vector.StrokeLine(screen, x, y, tx, ty, 1, clr, true)
		}
	}

	// 3. Player objects
	own := g.replica.ObjectID()
	for _, p := range snap.GetPlayers() {
		x, y := g.project(vec(p.GetPosition()), zoom)
		clr := color.RGBA{R: 200, G: 200, B: 200, A: 255}
		if p.GetObjectId() == own {
			clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		vector.StrokeCircle(screen, x, y, 6, 2, clr, true)
	}

	g.drawHUD(screen, snap)
	if g.menu.Visible {
		g.menuPanel.Draw(screen)
	} else {
		g.options.Draw(screen)
	}
	if g.menu.ShowInstructions {
		ebitenutil.DebugPrintAt(screen, client.Instructions, 20, screenHeight-90)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap *pb.WorldSnapshot) {
	status := "offline"
	if c := g.current(); c != nil {
		status = c.ConnectionID()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Server: %s (%s)\n", g.serverURL, status)
	fmt.Fprintf(&sb, "Tick: %d  Agents: %d  Players: %d\n", snap.GetTick(), len(snap.GetAgents()), len(snap.GetPlayers()))
	fmt.Fprintf(&sb, "Object: %d  Captures seen: %d\n", g.replica.ObjectID(), g.replica.CaptureCount())
	fmt.Fprintf(&sb, "Camera: %s yaw %.0f pitch %.0f\n", g.camera.Position, g.camera.Yaw, g.camera.Pitch)
	fmt.Fprintf(&sb, "FPS: %.0f TPS: %.0f  update %.2fms draw %.2fms\n", ebiten.ActualFPS(), ebiten.ActualTPS(), g.updateAvg, g.drawAvg)
	if e := g.replica.LastError(); e != "" {
		fmt.Fprintf(&sb, "Server error: %s\n", e)
	}
	for _, ev := range g.replica.RecentCaptures() {
		fmt.Fprintf(&sb, "  captured flock %d boid %d at tick %d\n", ev.GetFlockId(), ev.GetAgentId(), ev.GetTick())
	}
	ebitenutil.DebugPrintAt(screen, sb.String(), 10, 10)
}

// project maps world X/Z onto the screen, centered on the camera, +Z up.
func (g *Game) project(p geometry.Vector3, zoom float64) (float32, float32) {
	x := (p.X-g.camera.Position.X)*zoom + screenWidth/2
	y := screenHeight/2 - (p.Z-g.camera.Position.Z)*zoom
	return float32(x), float32(y)
}

func (g *Game) Layout(w, h int) (int, int) { return screenWidth, screenHeight }

func vec(p *pb.Vec3) geometry.Vector3 {
	return geometry.Vector3{X: p.GetX(), Y: p.GetY(), Z: p.GetZ()}
}
