package gridtext

import (
	"math"

	"github.com/tsawler/pdfstrings/model"
)

// Column detection thresholds, in engine units.
const (
	// clusterThreshold is the maximum distance from a cluster's mean right
	// edge for a span to join it.
	clusterThreshold = 8.0

	// minSpansForColumn is the minimum cluster size.
	minSpansForColumn = 3

	// minLeftVariation is how much the left edges in a cluster must differ
	// for it to count as right-aligned rather than a left-aligned block.
	minLeftVariation = 50.0

	// minLeftVariationFarRight applies to clusters at or beyond
	// farRightPosition, where short values are common.
	minLeftVariationFarRight = 5.0
	farRightPosition         = 450.0

	// maxRightVariation is the maximum spread of right edges in a cluster.
	maxRightVariation = 3.7

	// minColumnPosition excludes clusters near the left margin.
	minColumnPosition = 200.0
)

type edgeCluster struct {
	sumRight float64
	lefts    []float32
	rights   []float32
}

func (c *edgeCluster) center() float64 {
	return c.sumRight / float64(len(c.rights))
}

func (c *edgeCluster) add(left, right float32) {
	c.lefts = append(c.lefts, left)
	c.rights = append(c.rights, right)
	c.sumRight += float64(right)
}

// RightAlignedColumns returns the x positions of right-aligned columns found
// across all lines, in the order their clusters were first seen.
func RightAlignedColumns(lines []model.Line) []float32 {
	var clusters []*edgeCluster

	for _, line := range lines {
		for _, span := range line {
			right := float64(span.BBox.Right)

			var best *edgeCluster
			bestDistance := math.MaxFloat64
			for _, c := range clusters {
				d := math.Abs(right - c.center())
				if d < clusterThreshold && d < bestDistance {
					best = c
					bestDistance = d
				}
			}

			if best == nil {
				best = &edgeCluster{}
				clusters = append(clusters, best)
			}
			best.add(span.BBox.Left, span.BBox.Right)
		}
	}

	var positions []float32
	for _, c := range clusters {
		if len(c.rights) < minSpansForColumn {
			continue
		}

		avgRight := c.center()
		leftVariation := spread(c.lefts)
		rightVariation := spread(c.rights)

		threshold := minLeftVariation
		if avgRight >= farRightPosition {
			threshold = minLeftVariationFarRight
		}

		if leftVariation >= threshold &&
			rightVariation < maxRightVariation &&
			avgRight >= minColumnPosition {
			positions = append(positions, float32(avgRight))
		}
	}
	return positions
}

func spread(values []float32) float64 {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return float64(hi - lo)
}
