// Package app holds the application state of both chaos-game views as plain
// structs updated by explicit message handlers.
//
//   - [Sketch]: click-to-place vertices with an iteration window
//     (maxIter points exist, curIter of them are drawn)
//   - [Animation]: a fixed triangle growing by one point per tick
//
// Neither type knows about the terminal. The viz package translates input
// events into messages and paints the geometry they return.
package app
