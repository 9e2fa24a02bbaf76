// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amp

import "github.com/chewxy/math32"

// Table is a digitized 2D amplitude lookup over signed depth along the
// source orientation axis (rows, microns, positive = apical direction) and
// radial distance from that axis (cols, microns).  Both axes are ascending
// and uniformly spaced.  Values outside the digitized extent are zero
// (far-field contributions are negligible at the calibration scale).
type Table struct {
	Depths []float32 `desc:"signed depth grid along the orientation axis (microns), ascending"`
	Radii  []float32 `desc:"radial distance grid (microns), ascending from 0"`
	Amps   []float32 `desc:"amplitude values, row-major depth x radius"`
}

// cell returns the lower grid index and interpolation fraction for value v
// on axis ax, with ok = false when v is outside the grid.
func cell(ax []float32, v float32) (int, float32, bool) {
	n := len(ax)
	if v < ax[0] || v > ax[n-1] {
		return 0, 0, false
	}
	if v == ax[n-1] {
		return n - 2, 1, true
	}
	step := ax[1] - ax[0]
	i := int((v - ax[0]) / step)
	if i > n-2 {
		i = n - 2
	}
	return i, (v - ax[i]) / step, true
}

// Interp bilinearly interpolates the table at the given depth and radius
// (microns), returning 0 outside the digitized extent.  Negative radius is
// reflected (the table is radially symmetric).
func (tb *Table) Interp(depth, radius float32) float32 {
	if radius < 0 {
		radius = -radius
	}
	di, df, ok := cell(tb.Depths, depth)
	if !ok {
		return 0
	}
	ri, rf, ok := cell(tb.Radii, radius)
	if !ok {
		return 0
	}
	nr := len(tb.Radii)
	v00 := tb.Amps[di*nr+ri]
	v01 := tb.Amps[di*nr+ri+1]
	v10 := tb.Amps[(di+1)*nr+ri]
	v11 := tb.Amps[(di+1)*nr+ri+1]
	return v00*(1-df)*(1-rf) + v01*(1-df)*rf + v10*df*(1-rf) + v11*df*rf
}

// Mazzoni is a table-interpolated amplitude profile, backed by one of the
// fixed digitized calibration tables from Mazzoni et al. (2015).  The
// tables are an external calibration artifact shipped with the
// implementation (mazzonitab.go) and are never recomputed.
type Mazzoni struct {
	Var Profiles `desc:"which Mazzoni variant this is (population or per-neuron)"`
	Tab *Table   `view:"-" desc:"the digitized calibration table"`
}

// NewMazzoniPop returns the population-level Mazzoni profile.
func NewMazzoniPop() *Mazzoni {
	return &Mazzoni{Var: Mazzoni15Pop, Tab: &Mazzoni15PopTab}
}

// NewMazzoniNrn returns the per-neuron Mazzoni profile.
func NewMazzoniNrn() *Mazzoni {
	return &Mazzoni{Var: Mazzoni15Nrn, Tab: &Mazzoni15NrnTab}
}

// Amplitude decomposes (distance, cos angle) into signed depth along the
// orientation axis and radial distance, then interpolates the table.
func (mz *Mazzoni) Amplitude(distUM, cosAng float32) float32 {
	depth := distUM * cosAng
	sin2 := 1 - cosAng*cosAng
	if sin2 < 0 { // numerical noise in cosAng
		sin2 = 0
	}
	radius := distUM * math32.Sqrt(sin2)
	return mz.Tab.Interp(depth, radius)
}

func (mz *Mazzoni) Type() Profiles      { return mz.Var }
func (mz *Mazzoni) DefinedAtZero() bool { return true }
