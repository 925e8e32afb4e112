package app

import "github.com/san-kum/chaosgame/internal/chaos"

// Msg is an input to Sketch.Update.
type Msg interface {
	isMsg()
}

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonOther
)

// Click is a pointer press at P in logical canvas coordinates. P may lie
// outside the canvas.
type Click struct {
	P      chaos.Point
	Button Button
}

type AddVertex struct{ P chaos.Point }

type RemoveVertex struct{}

// SetMaxIter sets how many points should exist.
type SetMaxIter struct{ N int }

// SetCurIter sets how many of the existing points are drawn.
type SetCurIter struct{ N int }

// DrawCurIter moves the drawn window during replay.
type DrawCurIter struct{ N int }

func (Click) isMsg()        {}
func (AddVertex) isMsg()    {}
func (RemoveVertex) isMsg() {}
func (SetMaxIter) isMsg()   {}
func (SetCurIter) isMsg()   {}
func (DrawCurIter) isMsg()  {}
