// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package geom turns source and electrode coordinates plus per-source
orientation vectors into the full (sources x electrodes) amplitude matrix,
using a chosen amplitude profile from the amp package.

All coordinates are 3D points in microns.  Orientation vectors give the
direction of each source's apical axis; they need not be unit length.  When
source coordinates are somata, each source is shifted along its orientation
by half the dipole length to the effective dipole center before distances
and angles are computed.
*/
package geom

import (
	"fmt"

	"github.com/emer/etable/v2/etensor"
	"github.com/goki/mat32"
	"github.com/siplab-gt/wslfp/amp"
)

// DefaultOrientation is the default apical axis direction: straight "up".
var DefaultOrientation = mat32.Vec3{X: 0, Y: 0, Z: 1}

// CoordsFromTensor converts an N x 3 tensor of coordinates into a Vec3
// slice, validating the shape.
func CoordsFromTensor(tsr *etensor.Float32) ([]mat32.Vec3, error) {
	if tsr == nil {
		return nil, fmt.Errorf("geom.CoordsFromTensor: nil coordinate tensor")
	}
	if tsr.NumDims() != 2 || tsr.Dim(1) != 3 {
		return nil, fmt.Errorf("geom.CoordsFromTensor: coordinates must be an N x 3 tensor, got %d dims", tsr.NumDims())
	}
	n := tsr.Dim(0)
	cds := make([]mat32.Vec3, n)
	for i := 0; i < n; i++ {
		cds[i] = mat32.Vec3{X: tsr.Values[i*3], Y: tsr.Values[i*3+1], Z: tsr.Values[i*3+2]}
	}
	return cds, nil
}

// Orientations broadcasts orientation vectors to one per source: nil or
// empty uses DefaultOrientation for all, a single vector is shared by all
// sources, and a full per-source list is passed through.  Any other count
// is a validation error.
func Orientations(n int, ornt []mat32.Vec3) ([]mat32.Vec3, error) {
	if n > 0 && len(ornt) == n {
		return ornt, nil
	}
	switch len(ornt) {
	case 0:
		out := make([]mat32.Vec3, n)
		for i := range out {
			out[i] = DefaultOrientation
		}
		return out, nil
	case 1:
		out := make([]mat32.Vec3, n)
		for i := range out {
			out[i] = ornt[0]
		}
		return out, nil
	}
	return nil, fmt.Errorf("geom.Orientations: cannot broadcast %d orientation vectors to %d sources", len(ornt), n)
}

// AmplitudeMatrix computes the (sources x electrodes) amplitude matrix for
// the given profile.  When somata is true, each source position is first
// shifted along its unit orientation by half the dipole length, to the
// effective dipole center.  A source co-located with an electrode is an
// error under a profile that is undefined at zero distance.
// The result is deterministic for identical inputs.
func AmplitudeMatrix(src, elec []mat32.Vec3, ornt []mat32.Vec3, somata bool, pr amp.Profile) (*etensor.Float32, error) {
	ns := len(src)
	ne := len(elec)
	if ns == 0 || ne == 0 {
		return nil, fmt.Errorf("geom.AmplitudeMatrix: need at least one source and one electrode, got %d sources, %d electrodes", ns, ne)
	}
	if pr == nil {
		return nil, fmt.Errorf("geom.AmplitudeMatrix: nil amplitude profile")
	}
	orn, err := Orientations(ns, ornt)
	if err != nil {
		return nil, err
	}
	amps := etensor.NewFloat32([]int{ns, ne}, nil, []string{"Source", "Electrode"})
	dist := make([]float32, ne)
	cos := make([]float32, ne)
	for si, sp := range src {
		ov := orn[si]
		ol := ov.Length()
		if ol == 0 {
			return nil, fmt.Errorf("geom.AmplitudeMatrix: source %d has a zero-length orientation vector", si)
		}
		un := ov.DivScalar(ol)
		if somata {
			sp = sp.Add(un.MulScalar(0.5 * amp.DipoleLengthUM))
		}
		for ei, ep := range elec {
			dv := ep.Sub(sp)
			d := dv.Length()
			if d == 0 {
				if !pr.DefinedAtZero() {
					return nil, fmt.Errorf("geom.AmplitudeMatrix: source %d co-located with electrode %d: %v profile is undefined at zero distance", si, ei, pr.Type())
				}
				dist[ei] = 0
				cos[ei] = 1
				continue
			}
			dist[ei] = d
			cos[ei] = dv.Dot(un) / d
		}
		if _, err := amp.Amplitudes(pr, dist, cos, amps.Values[si*ne:(si+1)*ne]); err != nil {
			return nil, err
		}
	}
	return amps, nil
}
