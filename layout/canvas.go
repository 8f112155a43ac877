// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package layout

import "github.com/kennethjason07/hallticket-gndecb/models"

// Font faces available to text commands
type Font string

const (
	FontRegular Font = "Helvetica"
	FontBold    Font = "Helvetica-Bold"
)

// Align is the horizontal alignment of a text command
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Command is one drawing primitive. Coordinates are in points with the
// origin at the top-left corner of the page; y grows downward.
type Command interface {
	command()
}

// Rect strokes a rectangle outline.
type Rect struct {
	X, Y, W, H float64
	LineWidth  float64
}

// Line strokes a straight segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	LineWidth      float64
}

// Text places a single line of text whose top edge sits at Y. Centered text
// is centered within [X, X+Width].
type Text struct {
	X, Y  float64
	Width float64
	Align Align
	Font  Font
	Size  float64
	Str   string
}

// Image draws a logo scaled to W×H.
type Image struct {
	X, Y, W, H float64
	Logo       *models.Logo
}

func (Rect) command()  {}
func (Line) command()  {}
func (Text) command()  {}
func (Image) command() {}

// Canvas accumulates the drawing commands of one page in order.
type Canvas struct {
	Commands []Command
}

func (c *Canvas) Rect(x, y, w, h, lineWidth float64) {
	c.Commands = append(c.Commands, Rect{X: x, Y: y, W: w, H: h, LineWidth: lineWidth})
}

func (c *Canvas) Line(x1, y1, x2, y2, lineWidth float64) {
	c.Commands = append(c.Commands, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, LineWidth: lineWidth})
}

func (c *Canvas) Text(font Font, size, x, y float64, s string) {
	c.Commands = append(c.Commands, Text{X: x, Y: y, Align: AlignLeft, Font: font, Size: size, Str: s})
}

func (c *Canvas) CenteredText(font Font, size, x, y, width float64, s string) {
	c.Commands = append(c.Commands, Text{X: x, Y: y, Width: width, Align: AlignCenter, Font: font, Size: size, Str: s})
}

func (c *Canvas) Image(l *models.Logo, x, y, w, h float64) {
	c.Commands = append(c.Commands, Image{X: x, Y: y, W: w, H: h, Logo: l})
}
