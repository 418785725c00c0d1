package box

import "sort"

// cubicInchesPerBoardFoot is the volume of one board foot (12" x 12" x 1").
const cubicInchesPerBoardFoot = 144.0

// Estimate summarizes the material a box consumes.
type Estimate struct {
	Pieces    int     `json:"pieces"`     // Total pieces to cut, quantities included
	FaceArea  float64 `json:"face_area"`  // Total face area in square inches
	Volume    float64 `json:"volume"`     // Total wood volume in cubic inches
	BoardFeet float64 `json:"board_feet"` // Volume in board feet
}

// Estimate totals the present pieces. The face area of a piece is the
// product of its two largest dimensions, which is the area of stock it is
// cut from regardless of how the piece is oriented in the box.
func (s Set) Estimate() Estimate {
	var e Estimate
	for _, p := range s.CutList() {
		q := float64(p.Quantity)
		e.Pieces += p.Quantity
		e.FaceArea += q * faceArea(p.Dimensions)
		e.Volume += q * p.Volume()
	}
	e.BoardFeet = e.Volume / cubicInchesPerBoardFoot
	return e
}

func faceArea(d Dimensions) float64 {
	v := []float64{d.Length, d.Width, d.Height}
	sort.Sort(sort.Reverse(sort.Float64Slice(v)))
	return v[0] * v[1]
}
