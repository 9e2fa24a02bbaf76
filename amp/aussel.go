// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amp

import "github.com/chewxy/math32"

const (
	// DipoleLengthUM is the effective length of the equivalent current
	// dipole of a pyramidal cell (microns), used both as the L constant
	// in the Aussel profile and as the soma-to-dipole-center offset
	// (half this length) when source coordinates are somata
	DipoleLengthUM = 250

	// SigmaSM is the extracellular conductivity (Siemens / meter) of
	// cortical tissue
	SigmaSM = 0.3
)

// Aussel is the closed-form single-dipole amplitude profile from Aussel et
// al. (2018): amplitude = L cos(theta) / (4 pi sigma d^2).  Distances are
// in microns, output in microvolts per amp of source current.  The
// amplitude is exactly zero when the electrode is orthogonal to the source
// axis (cos = 0) and changes sign across that boundary; it is undefined at
// zero distance.
type Aussel struct {
	L     float32 `def:"250" min:"0" desc:"effective dipole length (microns) -- lumped length of the sink-source separation along the apical axis"`
	Sigma float32 `def:"0.3" min:"0" desc:"extracellular conductivity (S/m)"`
}

func (au *Aussel) Defaults() {
	au.L = DipoleLengthUM
	au.Sigma = SigmaSM
}

// Amplitude returns L cos / (4 pi sigma d^2) in microvolts per amp,
// converting the micron distance and length to meters.
func (au *Aussel) Amplitude(distUM, cosAng float32) float32 {
	lm := au.L * 1.0e-6
	dm := distUM * 1.0e-6
	return 1.0e6 * lm * cosAng / (4 * math32.Pi * au.Sigma * dm * dm)
}

func (au *Aussel) Type() Profiles      { return Aussel18 }
func (au *Aussel) DefinedAtZero() bool { return false }
