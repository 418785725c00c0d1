// Package box is the dimension engine: it turns roll dimensions, a wood
// thickness and a roll/row configuration into the cut list of a roll
// storage box.
//
// # Pieces
//
// Every box is built from six piece kinds, listed in [PieceKind] order:
//
//   - Top: rests on the edges and overhangs them by one wood thickness.
//   - Bottom: sits between the edges.
//   - Left / Right edges: run along the roll axis between the front/back edges.
//   - Front / Back edges: span the full width of the box.
//   - Column dividers: separate neighbouring rolls.
//   - Row divider: separates the two rows of a 2-row box.
//
// Dimensions include a 1/8" tolerance per fit so rolls slide in and out.
//
// # Rows
//
// A box holds 6 or 10 rolls in one or two rows. Long rolls (over 8") and
// 10-roll boxes always use two rows; the user may force either layout,
// except that 10 rolls can never be forced into one row.
//
// # Usage
//
//	set, err := box.NewSet(box.Inputs{
//	    RollCount:     6,
//	    RollLength:    3,
//	    RollDiameter:  1.132,
//	    WoodThickness: 0.5,
//	})
//	if err != nil {
//	    return err
//	}
//	for _, p := range set.CutList() {
//	    fmt.Println(p.Kind, p.Quantity, p.Length, p.Width, p.Height)
//	}
//
// All values are computed fresh from the inputs and never mutated; a [Set]
// is safe to share between goroutines.
package box
