// Package render provides headless frame sinks for a running grid:
//
//   - Text writes each frame as glyph rows to an io.Writer.
//   - PNG rasterises each frame with github.com/fogleman/gg into
//     dir/frame_%05d.png.
//   - Multi fans one frame out to several sinks.
//
// Every sink implements Render(*grid.Grid) error and SetCaption(string),
// which is what the session driver expects. A stride option keeps only every
// k-th frame, since long searches notify once per iteration.
//
// Orientation: the x axis carries the row index and the y axis the column
// index, the same mapping grid.PointerToCell uses for clicks.
package render
