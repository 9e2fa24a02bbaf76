// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package wslfp implements the reference weighted-sum LFP proxy (RWSLFP)
calculator.

A Calculator is built once from electrode and source coordinates plus a
Params configuration: all shape validation happens up front, the amplitude
matrix is computed and cached, and the Calculator is immutable afterward --
it can be shared across goroutines for any number of Calculate calls.

Calculate aligns the AMPA and GABA current traces onto the evaluation
times with their configured causal lags, combines them per source as
ampa - Alpha * gaba, and reduces per electrode as the mean over sources of
amplitude * combined.  Averaging rather than summing keeps the output scale
invariant to how many sources represent the same population.
*/
package wslfp

import (
	"fmt"
	"log"

	"github.com/emer/etable/v2/etensor"
	"github.com/goki/mat32"
	"github.com/siplab-gt/wslfp/align"
	"github.com/siplab-gt/wslfp/amp"
	"github.com/siplab-gt/wslfp/geom"
)

// Params configures a Calculator.  Defaults are the reference WSLFP
// calibration from Mazzoni et al. (2015): inhibitory currents scaled by a
// constant (depth-independent) 1.65 and excitatory currents lagged 6 ms.
type Params struct {
	Profile amp.Profiles `desc:"amplitude profile used to weight each source-electrode pair"`
	Alpha   float32      `def:"1.65" min:"0" desc:"scaling of inhibitory (GABA) relative to excitatory (AMPA) currents -- constant across depth in the reference variant"`
	TauAMPA float32      `def:"6" desc:"causal lag (ms) of the LFP behind the AMPA currents: the LFP at time t reflects AMPA at t - TauAMPA"`
	TauGABA float32      `def:"0" desc:"causal lag (ms) of the LFP behind the GABA currents"`
	Somata  bool         `def:"true" desc:"source coordinates are somata -- shift each source along its orientation by half the dipole length to the dipole center"`
}

func (pr *Params) Defaults() {
	pr.Profile = amp.Mazzoni15Pop
	pr.Alpha = 1.65
	pr.TauAMPA = 6
	pr.TauGABA = 0
	pr.Somata = true
}

// Validate checks parameter ranges.
func (pr *Params) Validate() error {
	if pr.Alpha < 0 {
		return fmt.Errorf("wslfp.Params: Alpha must be >= 0, got %g", pr.Alpha)
	}
	if pr.Profile < 0 || pr.Profile >= amp.ProfilesN {
		return fmt.Errorf("wslfp.Params: unrecognized amplitude profile: %d", pr.Profile)
	}
	return nil
}

// Calculator owns the precomputed amplitude matrix and configuration for
// the weighted-sum LFP.  It is immutable after New and safe for concurrent
// Calculate calls.
type Calculator struct {
	Par         Params           `desc:"configuration -- read-only after construction"`
	Amps        *etensor.Float32 `view:"-" desc:"cached (sources x electrodes) amplitude matrix -- read-only after construction"`
	NSources    int              `inactive:"+" desc:"number of current sources"`
	NElectrodes int              `inactive:"+" desc:"number of recording electrodes"`
}

// New builds a Calculator from electrode and source coordinates (microns)
// and optional per-source orientation vectors (nil = default "up",
// broadcastable from a single vector).  par = nil uses Defaults.  All
// shape and configuration validation happens here; the amplitude matrix is
// computed exactly once.
func New(elec, src []mat32.Vec3, ornt []mat32.Vec3, par *Params) (*Calculator, error) {
	var pv Params
	if par == nil {
		pv.Defaults()
	} else {
		pv = *par
	}
	if err := pv.Validate(); err != nil {
		return nil, err
	}
	prof, err := amp.New(pv.Profile)
	if err != nil {
		return nil, err
	}
	amps, err := geom.AmplitudeMatrix(src, elec, ornt, pv.Somata, prof)
	if err != nil {
		return nil, err
	}
	return &Calculator{Par: pv, Amps: amps, NSources: len(src), NElectrodes: len(elec)}, nil
}

// NewFromTensors is New taking N x 3 coordinate tensors.
func NewFromTensors(elec, src *etensor.Float32, ornt []mat32.Vec3, par *Params) (*Calculator, error) {
	ec, err := geom.CoordsFromTensor(elec)
	if err != nil {
		return nil, err
	}
	sc, err := geom.CoordsFromTensor(src)
	if err != nil {
		return nil, err
	}
	return New(ec, sc, ornt, par)
}

// Calculate computes the LFP at the given evaluation times (ms), returning
// a (len(evalTimes) x electrodes) tensor.  ampa and gaba are (time x
// source) current traces (amps) with their own time axes (ms), which may
// differ from each other and from evalTimes.  Evaluation times whose
// causal lookback falls outside a trace window contribute zero current for
// that trace and produce a RangeWarning; they are not an error.  Identical
// inputs yield bit-identical outputs.
func (ws *Calculator) Calculate(evalTimes, ampaTimes []float32, ampa *etensor.Float32, gabaTimes []float32, gaba *etensor.Float32) (*etensor.Float32, []*align.RangeWarning, error) {
	if len(evalTimes) == 0 {
		return nil, nil, fmt.Errorf("wslfp.Calculate: no evaluation times given")
	}
	if err := ws.checkTrace("AMPA", ampa); err != nil {
		return nil, nil, err
	}
	if err := ws.checkTrace("GABA", gaba); err != nil {
		return nil, nil, err
	}
	av, aw, err := ws.alignLagged(evalTimes, ws.Par.TauAMPA, ampaTimes, ampa)
	if err != nil {
		return nil, nil, err
	}
	gv, gw, err := ws.alignLagged(evalTimes, ws.Par.TauGABA, gabaTimes, gaba)
	if err != nil {
		return nil, nil, err
	}
	var warns []*align.RangeWarning
	if aw != nil {
		aw.Trace = "AMPA"
		warns = append(warns, aw)
	}
	if gw != nil {
		gw.Trace = "GABA"
		warns = append(warns, gw)
	}
	nt := len(evalTimes)
	ns := ws.NSources
	ne := ws.NElectrodes
	lfp := etensor.NewFloat32([]int{nt, ne}, nil, []string{"Time", "Electrode"})
	nrm := 1 / float32(ns)
	for ti := 0; ti < nt; ti++ {
		lrow := lfp.Values[ti*ne : (ti+1)*ne]
		for si := 0; si < ns; si++ {
			cmb := av.Values[ti*ns+si] - ws.Par.Alpha*gv.Values[ti*ns+si]
			if cmb == 0 {
				continue
			}
			arow := ws.Amps.Values[si*ne : (si+1)*ne]
			for ei := range lrow {
				lrow[ei] += arow[ei] * cmb
			}
		}
		for ei := range lrow {
			lrow[ei] *= nrm
		}
	}
	return lfp, warns, nil
}

// CalculateLogged is Calculate with range warnings logged via the standard
// logger instead of returned.
func (ws *Calculator) CalculateLogged(evalTimes, ampaTimes []float32, ampa *etensor.Float32, gabaTimes []float32, gaba *etensor.Float32) (*etensor.Float32, error) {
	lfp, warns, err := ws.Calculate(evalTimes, ampaTimes, ampa, gabaTimes, gaba)
	for _, wr := range warns {
		log.Println("wslfp.Calculate:", wr)
	}
	return lfp, err
}

// checkTrace validates a current trace's shape against the source count.
func (ws *Calculator) checkTrace(name string, trace *etensor.Float32) error {
	if trace == nil || trace.NumDims() != 2 {
		return fmt.Errorf("wslfp.Calculate: %s currents must be a 2D (time x source) tensor", name)
	}
	if trace.Dim(1) != ws.NSources {
		return fmt.Errorf("wslfp.Calculate: %s currents have %d source columns but calculator has %d sources", name, trace.Dim(1), ws.NSources)
	}
	return nil
}

// alignLagged interpolates a trace at evalTimes - lag.
func (ws *Calculator) alignLagged(evalTimes []float32, lag float32, traceTimes []float32, trace *etensor.Float32) (*etensor.Float32, *align.RangeWarning, error) {
	if lag == 0 {
		return align.Interp(evalTimes, traceTimes, trace)
	}
	sh := make([]float32, len(evalTimes))
	for i, tv := range evalTimes {
		sh[i] = tv - lag
	}
	return align.Interp(sh, traceTimes, trace)
}
