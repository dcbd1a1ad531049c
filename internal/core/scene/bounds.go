package scene

import "chosenoffset.com/raycaster/internal/core/obstacle"

// BoundaryLines returns four line walls along the edges of a w x h area:
// top, left, bottom, right.
func BoundaryLines(w, h float64) []obstacle.Obstacle {
	return []obstacle.Obstacle{
		obstacle.NewLine(0, 0, w, 0),
		obstacle.NewLine(0, 0, 0, h),
		obstacle.NewLine(0, h, w, h),
		obstacle.NewLine(w, 0, w, h),
	}
}

// BoundaryBoxes returns four solid walls of the given thickness lining the
// inside of a w x h area: top, left, right, bottom.
func BoundaryBoxes(w, h, thickness float64) []obstacle.Obstacle {
	return []obstacle.Obstacle{
		obstacle.NewRect(0, 0, w, thickness),
		obstacle.NewRect(0, 0, thickness, h),
		obstacle.NewRect(w-thickness, 0, thickness, h),
		obstacle.NewRect(0, h-thickness, w, thickness),
	}
}
