// Package viz is the terminal front end: a braille canvas that rasterizes
// render.Geometry, and Bubble Tea models that turn mouse, key and timer
// events into app messages.
package viz
