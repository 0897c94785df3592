package getaway

import (
	"strings"
	"testing"

	"github.com/vovakirdan/loadscreen/internal/core"
)

func TestScreenSurfaceRendersHUDAndOverlay(t *testing.T) {
	g, _ := newTestGame(t, nil)
	screen := core.NewScreen(60, 24)

	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "SCORE 0") || !strings.Contains(hud, "BEST 0") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.Contains(hud, "★★★") {
		t.Errorf("HUD should show wanted stars: %q", hud)
	}
	if !strings.Contains(screen.String(), "PRESS SPACE TO START") {
		t.Error("start overlay not rendered")
	}

	g.Start()
	screen.Clear()
	g.Render(screen)
	if strings.Contains(screen.String(), "PRESS SPACE") {
		t.Error("overlay should be hidden while running")
	}
	if !strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("player car not rendered")
	}
}

func TestScreenSurfaceBustedBorder(t *testing.T) {
	g, s := newTestGame(t, nil)
	screen := core.NewScreen(60, 24)
	l := s.layout(screen)

	g.Render(screen)
	if c := screen.GetCell(l.outer.X, l.outer.Y); c.Color != core.ColorBorder {
		t.Errorf("border color = %v, want themed border", c.Color)
	}

	g.Start()
	g.End()
	screen.Clear()
	g.Render(screen)
	if c := screen.GetCell(l.outer.X, l.outer.Y); c.Color != core.ColorDanger {
		t.Errorf("busted border color = %v, want danger", c.Color)
	}
	if !strings.Contains(screen.String(), "BUSTED") {
		t.Error("busted overlay not rendered")
	}
}

func TestScreenSurfaceClipsToTrack(t *testing.T) {
	s := NewScreenSurface(300, 400)
	screen := core.NewScreen(60, 24)
	l := s.layout(screen)

	// Spawned above the track: nothing may leak into the HUD or border.
	s.CreateSprite(SpriteTruck, core.NewRectF(100, -80, 46, 90))
	s.Render(screen)

	for y := 0; y < l.inner.Y; y++ {
		if strings.ContainsRune(screen.Row(y), TruckChar) {
			t.Errorf("truck drawn outside the track on row %d: %q", y, screen.Row(y))
		}
	}
	if !strings.ContainsRune(screen.Row(l.inner.Y), TruckChar) {
		t.Error("visible part of the truck should be drawn")
	}

	// Entirely below the track.
	s.CreateSprite(SpriteCoin, core.NewRectF(100, 450, 24, 24))
	screen.Clear()
	s.Render(screen)
	if strings.ContainsRune(screen.String(), CoinChar) {
		t.Error("coin below the track should not be drawn")
	}
}

func TestScreenSurfaceRemoveSprite(t *testing.T) {
	s := NewScreenSurface(300, 400)
	a := s.CreateSprite(SpriteCoin, core.NewRectF(0, 0, 24, 24))
	b := s.CreateLabel("+50", 10, 10)

	if a == 0 || b == 0 || a == b {
		t.Fatalf("bad sprite ids %d %d", a, b)
	}

	s.RemoveSprite(a)
	s.RemoveSprite(a) // unknown ids are ignored
	if s.Count(SpriteCoin) != 0 || s.Count(SpriteLabel) != 1 {
		t.Errorf("coins=%d labels=%d", s.Count(SpriteCoin), s.Count(SpriteLabel))
	}
}

func TestScreenSurfaceTinyScreen(t *testing.T) {
	g, _ := newTestGame(t, nil)
	screen := core.NewScreen(3, 2)
	g.Render(screen) // must not panic
}
