package getaway

import (
	"errors"

	"github.com/vovakirdan/loadscreen/internal/core"
)

// ErrMissingElement is returned by New when the surface lacks a required element.
var ErrMissingElement = errors.New("getaway: missing surface element")

// Element names a fixed part of the minigame's display.
type Element int

const (
	ElementTrack   Element = iota // Container sprites are placed in
	ElementMessage                // Start / BUSTED overlay
	ElementScore
	ElementBest
	ElementLives // Wanted stars
)

// requiredElements lists what New checks for, in check order.
var requiredElements = []Element{ElementTrack, ElementMessage, ElementScore, ElementBest, ElementLives}

func (e Element) String() string {
	switch e {
	case ElementTrack:
		return "track"
	case ElementMessage:
		return "message"
	case ElementScore:
		return "score"
	case ElementBest:
		return "best"
	case ElementLives:
		return "lives"
	default:
		return "unknown"
	}
}

// Effect is a transient whole-surface visual state.
type Effect int

const (
	EffectBusted Effect = iota
)

// SpriteKind selects how a sprite is drawn.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteCar
	SpritePolice
	SpriteTruck
	SpriteCoin
	SpriteExplosion
	SpriteRoadLine
	SpriteLabel
)

func (k SpriteKind) String() string {
	switch k {
	case SpritePlayer:
		return "player"
	case SpriteCar:
		return "car"
	case SpritePolice:
		return "police"
	case SpriteTruck:
		return "truck"
	case SpriteCoin:
		return "coin"
	case SpriteExplosion:
		return "explosion"
	case SpriteRoadLine:
		return "road-line"
	case SpriteLabel:
		return "label"
	default:
		return "unknown"
	}
}

// SpriteID identifies a sprite created on a Surface. Zero is never issued.
type SpriteID int

// Surface is the presentation port of the minigame. Coordinates are
// viewport units with the origin at the track's top-left corner; sprites
// may extend outside the track and are clipped by the surface.
//
// The game creates and destroys every sprite through this port and never
// reads anything back except element presence.
type Surface interface {
	Has(el Element) bool

	CreateSprite(kind SpriteKind, box core.RectF) SpriteID
	// CreateLabel places a short text with its top-left corner at (x, y).
	CreateLabel(text string, x, y float64) SpriteID
	MoveSprite(id SpriteID, box core.RectF)
	// RemoveSprite is a no-op for unknown or already removed sprites.
	RemoveSprite(id SpriteID)

	SetText(el Element, text string)
	SetVisible(el Element, visible bool)
	SetEffect(fx Effect, on bool)
}
