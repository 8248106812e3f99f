package splash

import (
	"math"
	"testing"
)

func TestTitleRevealEndpoints(t *testing.T) {
	title, subtitle := TitleReveal(0)
	if !near(title.Opacity, 0) || subtitle.Opacity != 0 {
		t.Errorf("Texts should start hidden, got %v / %v", title.Opacity, subtitle.Opacity)
	}
	if !near(title.Scale, 0.8) {
		t.Errorf("Title should start at scale 0.8, got %v", title.Scale)
	}
	if !near(title.OffsetPx, 40) || subtitle.OffsetPx != 25 {
		t.Errorf("Unexpected start offsets %v / %v", title.OffsetPx, subtitle.OffsetPx)
	}

	title, subtitle = TitleReveal(1)
	if !near(title.Opacity, 1) || !near(title.Scale, 1) || !near(title.OffsetPx, 0) {
		t.Errorf("Title should settle, got %+v", title)
	}
	if subtitle.Opacity != 1 || subtitle.BlurPx != 0 {
		t.Errorf("Subtitle should settle, got %+v", subtitle)
	}
}

func TestTitleRevealClampsOvershoot(t *testing.T) {
	for i := 0; i <= 100; i++ {
		title, subtitle := TitleReveal(float64(i) / 100)
		if title.Opacity < 0 || title.Opacity > 1 {
			t.Fatalf("Title opacity %v at p=%d%%", title.Opacity, i)
		}
		if title.BlurPx < 0 {
			t.Fatalf("Negative blur %v at p=%d%%", title.BlurPx, i)
		}
		if subtitle.Opacity < 0 || subtitle.Opacity > 1 {
			t.Fatalf("Subtitle opacity %v at p=%d%%", subtitle.Opacity, i)
		}
	}
}

func TestSubtitleDelayed(t *testing.T) {
	_, subtitle := TitleReveal(0.2)
	if subtitle.Opacity != 0 {
		t.Errorf("Subtitle should not start before 20%%, got %v", subtitle.Opacity)
	}
	title, subtitle := TitleReveal(0.5)
	if subtitle.Opacity >= title.Opacity {
		t.Error("Subtitle should trail the title")
	}
}

func TestPulseGlowRange(t *testing.T) {
	for ms := 0.0; ms < 2500; ms += 7 {
		g := PulseGlow(ms)
		if g < 0.4-1e-9 || g > 1+1e-9 {
			t.Fatalf("Glow %v out of [0.4,1] at %vms", g, ms)
		}
		b := GlowBrightness(g)
		if b < 0.96-1e-9 || b > 1.2+1e-9 {
			t.Fatalf("Brightness %v out of range", b)
		}
	}
}

func TestExitFade(t *testing.T) {
	o, s, b := ExitFade(0)
	if o != 1 || s != 1 || b != 0 {
		t.Errorf("Exit start = %v %v %v", o, s, b)
	}
	o, s, b = ExitFade(1)
	if o != 0 || !near(s, 1.3) || b != 15 {
		t.Errorf("Exit end = %v %v %v", o, s, b)
	}
	prev := 1.0
	for i := 1; i <= 10; i++ {
		o, _, _ := ExitFade(float64(i) / 10)
		if o > prev {
			t.Fatal("Exit opacity should fall monotonically")
		}
		prev = o
	}
}

func TestBlurShadeAndSpacing(t *testing.T) {
	if blurShade(0) != 0 {
		t.Error("No blur should draw the plain rune")
	}
	if blurShade(15) != '░' {
		t.Errorf("Heavy blur should be the lightest shade, got %q", blurShade(15))
	}
	if letterSpacing(0.8) != 0 || letterSpacing(1) != 1 || letterSpacing(2) != 3 {
		t.Errorf("Unexpected spacing %d %d %d", letterSpacing(0.8), letterSpacing(1), letterSpacing(2))
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
