package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// BBox represents a bounding box (rectangle).
//
// Coordinates are top-origin: Y is the distance from the top of the page,
// so Top() <= Bottom() for any valid box.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top (distance from page top)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from the top-left corner and dimensions
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromCorners creates a bounding box from (x0, top) and (x1, bottom)
// corner coordinates, the shape used by layout dumps.
func NewBBoxFromCorners(x0, top, x1, bottom float64) BBox {
	x := math.Min(x0, x1)
	y := math.Min(top, bottom)
	return BBox{
		X:      x,
		Y:      y,
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(bottom - top),
	}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// CenterX returns the horizontal center, the value column resolution keys on
func (b BBox) CenterX() float64 {
	return b.X + b.Width/2
}

// IsEmpty checks if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// IsValid checks if the bounding box has non-negative dimensions
func (b BBox) IsValid() bool {
	return b.Width >= 0 && b.Height >= 0
}
