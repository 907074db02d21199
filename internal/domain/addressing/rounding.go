package addressing

import (
	"math"

	"addressing/internal/domain/entity"
)

// RoundForSide turns a raw along-road distance into a house number of the
// side's parity: even on the Right, odd on the Left.
//
// Rounding is half-to-even. When the rounded value has the wrong parity the
// Right side takes the neighbour closer to distance and the Left side the one
// farther from it; ties go to the lower neighbour.
func RoundForSide(distance float64, side entity.Direction) int64 {
	if side == entity.DirectionRight {
		return roundRight(distance)
	}

	return roundLeft(distance)
}

func roundRight(distance float64) int64 {
	if distance == 0 {
		return 0
	}

	answer := int64(math.RoundToEven(distance))
	if answer%2 == 0 {
		return answer
	}

	if math.Abs(float64(answer+1)-distance) < math.Abs(float64(answer-1)-distance) {
		return answer + 1
	}

	return answer - 1
}

func roundLeft(distance float64) int64 {
	if distance == 0 {
		return 0
	}

	answer := int64(math.RoundToEven(distance))
	if answer%2 != 0 {
		return answer
	}

	if math.Abs(float64(answer+1)-distance) > math.Abs(float64(answer-1)-distance) {
		return answer + 1
	}

	return answer - 1
}
