package game

import (
	"image"
	"math"
)

// Viewport maps normalized table coordinates to screen coordinates (pixels or
// terminal cells). Each frontend owns its viewport and passes it to whatever
// draws; entities never hold one.
type Viewport struct {
	sizeFactor   Vec2
	posFactor    Vec2
	posTranslate Vec2
}

// NewViewport maps a camera of cameraSize centered at cameraCenter onto the
// screen area. With invertY the game's +Y points up the screen.
func NewViewport(screen image.Rectangle, cameraSize, cameraCenter Vec2, invertY bool) Viewport {
	screenSize := Vec2{X: float64(screen.Dx()), Y: float64(screen.Dy())}
	screenPos := Vec2{X: float64(screen.Min.X), Y: float64(screen.Min.Y)}

	sizeFactor := Vec2{X: screenSize.X / cameraSize.X, Y: screenSize.Y / cameraSize.Y}
	posFactor := sizeFactor
	posTranslate := cameraSize.Scale(0.5).Sub(cameraCenter)
	screenTranslate := Vec2{
		X: screenPos.X * cameraSize.X / screenSize.X,
		Y: screenPos.Y * cameraSize.Y / screenSize.Y,
	}
	if invertY {
		posFactor.Y = -posFactor.Y
		screenTranslate.Y = -screenTranslate.Y
		posTranslate.Y -= cameraSize.Y
	}

	return Viewport{
		sizeFactor:   sizeFactor,
		posFactor:    posFactor,
		posTranslate: posTranslate.Add(screenTranslate),
	}
}

// ToScreen converts a game position to a screen position
func (v Viewport) ToScreen(pos Vec2) Vec2 {
	p := pos.Add(v.posTranslate)
	return Vec2{X: p.X * v.posFactor.X, Y: p.Y * v.posFactor.Y}
}

// ToScreenPoint converts a game position to the nearest whole screen point
func (v Viewport) ToScreenPoint(pos Vec2) image.Point {
	p := v.ToScreen(pos)
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// ToScreenSize converts a game size to a screen size
func (v Viewport) ToScreenSize(size Vec2) Vec2 {
	return Vec2{X: size.X * v.sizeFactor.X, Y: size.Y * v.sizeFactor.Y}
}

// ToGame converts a screen position back to a game position
func (v Viewport) ToGame(screen Vec2) Vec2 {
	return Vec2{X: screen.X / v.posFactor.X, Y: screen.Y / v.posFactor.Y}.Sub(v.posTranslate)
}

// FitRect returns the largest rectangle with the given width/height aspect
// ratio that fits inside bounds, centered in it.
func FitRect(aspect float64, bounds image.Rectangle) image.Rectangle {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w <= 0 || h <= 0 || aspect <= 0 {
		return image.Rectangle{Min: bounds.Min, Max: bounds.Min}
	}
	if w/h > aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	origin := image.Pt(
		bounds.Min.X+int(math.Round((float64(bounds.Dx())-w)/2)),
		bounds.Min.Y+int(math.Round((float64(bounds.Dy())-h)/2)),
	)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(int(math.Round(w)), int(math.Round(h))))}
}
