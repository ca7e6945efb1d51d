package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"

	"github.com/san-kum/bytelens/internal/session"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColPanel   = rl.NewColor(18, 18, 18, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(80, 80, 80, 255)
	ColGrid    = rl.NewColor(40, 40, 40, 255)
)

// App owns the window, the canvas texture and the control panel.
type App struct {
	Sess   *session.Session
	Tex    rl.Texture2D
	pixels []color.RGBA
	panel  *panel
	keys   keyState
	quit   bool
	status []string
}

func initWindow(w, h int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(int32(w), int32(h), "bytelens")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// Run opens a window sized to the session canvas plus the panel and blocks
// until it is closed.
func Run(sess *session.Session) error {
	initWindow(sess.Canvas.Width+panelWidth, sess.Canvas.Height)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("gui: window could not be created")
	}

	app := NewApp(sess)
	defer app.Close()
	app.RunLoop()
	return nil
}

func NewApp(sess *session.Session) *App {
	a := &App{
		Sess:  sess,
		panel: newPanel(),
		keys:  raylibKeys{},
	}
	a.panel.x = int32(sess.Canvas.Width)
	a.loadTexture()
	return a
}

func (a *App) loadTexture() {
	c := a.Sess.Canvas
	img := rl.GenImageColor(c.Width, c.Height, rl.Blank)
	a.Tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	a.pixels = make([]color.RGBA, c.Width*c.Height)
	a.Sess.Invalidate()
}

func (a *App) Close() {
	rl.UnloadTexture(a.Tex)
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
	log.Debug().Int("frames", a.Sess.Frames()).Msg("window closed")
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	for _, act := range actionsFor(a.keys) {
		if a.Sess.Apply(act) {
			a.quit = true
			return
		}
	}

	mouse := rl.GetMousePosition()
	if int32(mouse.X) < a.panel.x {
		if act, n := wheelAction(rl.GetMouseWheelMove()); n > 0 {
			for i := 0; i < n; i++ {
				a.Sess.Apply(act)
			}
		}
	}

	s := a.Sess.Settings
	if a.panel.update(&s) {
		a.Sess.SetSettings(s)
	}

	if a.redraw() {
		a.upload()
	}
}

// redraw renders the session when it changed and refreshes the cached status
// text, which costs a pass over every visible byte.
func (a *App) redraw() bool {
	if !a.Sess.Redraw() {
		return false
	}
	a.status = statusText(a.Sess.Status())
	return true
}

func (a *App) resize(w, h int) {
	cw := w - panelWidth
	if cw < 1 {
		cw = 1
	}
	if h < 1 {
		h = 1
	}
	if err := a.Sess.Resize(cw, h); err != nil {
		log.Warn().Err(err).Msg("resize ignored")
		return
	}
	a.panel.x = int32(cw)
	rl.UnloadTexture(a.Tex)
	a.loadTexture()
}

// upload copies the canvas into the texture.
func (a *App) upload() {
	pix := a.Sess.Canvas.Pix
	for i := range a.pixels {
		o := i * 4
		a.pixels[i] = color.RGBA{R: pix[o], G: pix[o+1], B: pix[o+2], A: pix[o+3]}
	}
	rl.UpdateTexture(a.Tex, a.pixels)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.DrawTexture(a.Tex, 0, 0, rl.White)
	a.panel.draw(a.Sess.Settings, a.statusLines())

	rl.EndDrawing()
}

func (a *App) statusLines() []string {
	lines := make([]string, 0, len(a.status)+5)
	lines = append(lines, a.status...)
	return append(lines,
		fmt.Sprintf("%d FPS", rl.GetFPS()),
		"",
		"[=/-] ZOOM  [ARROWS] SCROLL",
		"[ [ ] ] WIDTH  [S/D] STRIDE",
		"[TAB] SCHEME  [R] RESET  [Q] QUIT",
	)
}

func statusText(st session.Status) []string {
	return []string{
		st.Name,
		fmt.Sprintf("%d bytes  %.0f%%", st.Size, st.Progress*100),
		fmt.Sprintf("entropy %.3f", st.Entropy),
		fmt.Sprintf("canvas %s", st.Canvas),
	}
}
