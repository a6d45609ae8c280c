/*
 * chem3d.go, part of verchem.
 *
 * Copyright 2026 The verchem authors <verchem{at}verchemDOTxyz>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Verchem is developed for chemistry instruction at secondary-school
 * and introductory university level.
 *
 */

/*Package chem3d gives a flat sketch a third dimension to turn around in.
The lift is deliberately naive, the sketch plane becomes the z=0 plane, because
the point is not geometry prediction (the sketcher teaches connectivity, not
shape); the point is that grabbing a molecule and orbiting it makes the
difference between a drawing and an object. The package only does the math:
it returns depth-sorted display lists that any 2D surface can paint.*/
package chem3d

import (
	"math"
	"sort"

	chem "github.com/verchemxyz/verchem-sub008"
	"gonum.org/v1/gonum/mat"
)

//Camera is an orbiting viewpoint: yaw around the vertical axis, pitch
//above or below the plane, at Dist from the molecule's center. Scale
//turns projected units into surface units.
type Camera struct {
	Yaw   float64
	Pitch float64
	Dist  float64
	Scale float64
}

const (
	maxPitch = 1.4  //just short of looking straight down the pole
	minDist  = 50.0 //closer than this and the perspective math gets silly
	maxDist  = 5000.0
)

//NewCamera returns a camera at a comfortable distance, looking straight
//at the sketch plane.
func NewCamera() *Camera {
	return &Camera{Yaw: 0, Pitch: 0, Dist: 500, Scale: 1}
}

//Orbit turns the camera by the given yaw and pitch deltas, in radians.
//Yaw wraps; pitch clamps short of the poles so "up" keeps meaning up.
func (C *Camera) Orbit(dyaw, dpitch float64) {
	C.Yaw = math.Mod(C.Yaw+dyaw, 2*math.Pi)
	C.Pitch += dpitch
	if C.Pitch > maxPitch {
		C.Pitch = maxPitch
	}
	if C.Pitch < -maxPitch {
		C.Pitch = -maxPitch
	}
}

//Zoom scales the camera distance by the given factor (under 1 moves in,
//over 1 moves out), clamped to the sane range.
func (C *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	C.Dist *= factor
	if C.Dist < minDist {
		C.Dist = minDist
	}
	if C.Dist > maxDist {
		C.Dist = maxDist
	}
}

//Rotator returns the 3x3 rotation matrix of the camera: yaw around Y,
//then pitch around X.
func (C *Camera) Rotator() *mat.Dense {
	cy := math.Cos(C.Yaw)
	sy := math.Sin(C.Yaw)
	cp := math.Cos(C.Pitch)
	sp := math.Sin(C.Pitch)
	Ry := mat.NewDense(3, 3, []float64{
		cy, 0, sy,
		0, 1, 0,
		-sy, 0, cy,
	})
	Rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cp, -sp,
		0, sp, cp,
	})
	R := mat.NewDense(3, 3, nil)
	R.Mul(Rx, Ry)
	return R
}

//AtomView is one atom ready to paint: projected position, its depth for
//ordering, and the perspective factor so the painter can size the disc.
type AtomView struct {
	ID     int
	Symbol string
	X, Y   float64
	Depth  float64
	Scale  float64
}

//BondView is one bond ready to paint, between projected endpoints.
type BondView struct {
	ID     int
	Order  int
	X1, Y1 float64
	X2, Y2 float64
	Depth  float64
}

//Scene is a depth-sorted display list: paint Atoms and Bonds in slice
//order (far first) and the overlaps come out right.
type Scene struct {
	Atoms []AtomView
	Bonds []BondView
}

//Project lifts the sketch into the z=0 plane, centers it on its centroid,
//turns it by the camera's rotation, and projects it with simple
//perspective. Both lists come back sorted far-to-near.
func Project(S chem.Bonder, C *Camera) *Scene {
	sc := new(Scene)
	n := S.Len()
	if n == 0 {
		return sc
	}
	cx, cy := centroid(S)
	R := C.Rotator()
	sc.Atoms = make([]AtomView, 0, n)
	pos := make(map[int]AtomView, n)
	v := mat.NewVecDense(3, nil)
	out := mat.NewVecDense(3, nil)
	for i := 0; i < n; i++ {
		at := S.Atom(i)
		v.SetVec(0, at.X-cx)
		v.SetVec(1, at.Y-cy)
		v.SetVec(2, 0)
		out.MulVec(R, v)
		k := C.Scale * persp(C.Dist, out.AtVec(2))
		av := AtomView{
			ID:     at.ID,
			Symbol: at.Symbol,
			X:      out.AtVec(0) * k,
			Y:      out.AtVec(1) * k,
			Depth:  out.AtVec(2),
			Scale:  k,
		}
		sc.Atoms = append(sc.Atoms, av)
		pos[at.ID] = av
	}
	sc.Bonds = make([]BondView, 0, S.NBonds())
	for i := 0; i < S.NBonds(); i++ {
		b := S.Bond(i)
		p1, ok1 := pos[b.A1]
		p2, ok2 := pos[b.A2]
		if !ok1 || !ok2 {
			continue
		}
		sc.Bonds = append(sc.Bonds, BondView{
			ID:    b.ID,
			Order: b.Order,
			X1:    p1.X, Y1: p1.Y,
			X2: p2.X, Y2: p2.Y,
			Depth: (p1.Depth + p2.Depth) / 2,
		})
	}
	sort.Slice(sc.Atoms, func(i, j int) bool { return sc.Atoms[i].Depth < sc.Atoms[j].Depth })
	sort.Slice(sc.Bonds, func(i, j int) bool { return sc.Bonds[i].Depth < sc.Bonds[j].Depth })
	return sc
}

//persp is the perspective factor for a point at depth z, camera at +Dist.
//The denominator is kept away from zero so a point swung behind the
//camera squashes instead of exploding.
func persp(dist, z float64) float64 {
	den := dist - z
	if den < dist*0.1 {
		den = dist * 0.1
	}
	return dist / den
}

func centroid(S chem.Atomer) (float64, float64) {
	var cx, cy float64
	n := S.Len()
	for i := 0; i < n; i++ {
		at := S.Atom(i)
		cx += at.X
		cy += at.Y
	}
	return cx / float64(n), cy / float64(n)
}
