package assembly

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultMeshCells is the marching-cubes resolution along the longest side.
const DefaultMeshCells = 200

// Solid returns the union of the panels as a signed distance field.
func Solid(panels []Panel) (sdf.SDF3, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("no panels")
	}
	solids := make([]sdf.SDF3, 0, len(panels))
	for _, p := range panels {
		s, err := sdf.Box3D(p.Size, 0)
		if err != nil {
			return nil, fmt.Errorf("%s panel: %w", p.Kind, err)
		}
		// Box3D is centered on the origin.
		m := sdf.Translate3d(p.Min.Add(p.Size.MulScalar(0.5)))
		solids = append(solids, sdf.Transform3D(s, m))
	}
	return sdf.Union3D(solids...), nil
}

// WriteSTL tessellates the panels with marching cubes and writes a binary
// STL file. cells sets the resolution; values below 1 use DefaultMeshCells.
func WriteSTL(w io.Writer, panels []Panel, cells int) (int, error) {
	if cells < 1 {
		cells = DefaultMeshCells
	}
	solid, err := Solid(panels)
	if err != nil {
		return 0, err
	}
	triangles := render.ToTriangles(solid, render.NewMarchingCubesUniform(cells))

	bw := bufio.NewWriter(w)
	var header [80]byte
	copy(header[:], "boxbuilder assembly")
	if _, err := bw.Write(header[:]); err != nil {
		return 0, err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(triangles))); err != nil {
		return 0, err
	}

	var rec [50]byte
	for _, tri := range triangles {
		n := tri.Normal()
		putVec(rec[0:], n)
		for j := 0; j < 3; j++ {
			putVec(rec[12+12*j:], tri[j])
		}
		if _, err := bw.Write(rec[:]); err != nil {
			return 0, err
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return len(triangles), nil
}

func putVec(b []byte, v v3.Vec) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}
