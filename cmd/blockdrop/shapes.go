package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/games/blockdrop/core"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the piece catalog",
	Long:  `Shows every piece kind with its size and footprint.`,
	Args:  cobra.NoArgs,
	Run:   runShapes,
}

func runShapes(_ *cobra.Command, _ []string) {
	fmt.Println("Piece catalog:")
	fmt.Println()

	for _, k := range core.AllKinds() {
		shape := core.ShapeOf(k)
		w, h := shape.Bounds()
		fmt.Printf("  %-7s %d cells, %dx%d\n", k, len(shape), w, h)
		for _, line := range shapeLines(shape) {
			fmt.Printf("          %s\n", line)
		}
		fmt.Println()
	}
}

// shapeLines draws a shape top row first, since the board grows upward.
func shapeLines(shape core.Shape) []string {
	w, h := shape.Bounds()
	lines := make([]string, 0, h)
	for y := h - 1; y >= 0; y-- {
		var b strings.Builder
		for x := 0; x < w; x++ {
			if shape.Contains(core.Coord{X: x, Y: y}) {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}
