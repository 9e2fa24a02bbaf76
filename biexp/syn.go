// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package biexp synthesizes postsynaptic currents from spike trains.

Each spike from source i at time t contributes, to every target j connected
with weight w, a biexponential waveform that is zero before t + delay and
follows w * (exp(-(t'-t-delay)/TauDecay) - exp(-(t'-t-delay)/TauRise)),
normalized so its peak equals w.  Contributions sum over all spikes and all
connected sources.

The implementation advances a two-state exponential per source between
sorted event times (exact closed-form decay, +1 per spike), then propagates
the per-source traces through the sparse connectivity -- cost is on the
order of spikes + timepoints per source, never timepoints x spikes.  The
result matches an exact convolution; it is expected to be numerically
close to, but not identical to, direct ODE integration of the same synaptic
dynamics in a simulator.
*/
package biexp

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
)

// SynParams are the biexponential synaptic kernel parameters.
type SynParams struct {
	TauRise  float32 `def:"0.4" min:"0" desc:"rise time constant (ms)"`
	TauDecay float32 `def:"2" min:"0" desc:"decay time constant (ms) -- must be greater than TauRise"`
	Delay    float32 `def:"0" min:"0" desc:"synaptic transmission delay (ms) -- contribution is zero before spike time + delay"`

	Norm float32 `inactive:"+" view:"-" desc:"peak value of exp(-t/TauDecay) - exp(-t/TauRise), computed by Update -- divides the raw difference so the kernel peak equals the synaptic weight"`
}

func (sp *SynParams) Defaults() {
	sp.TauRise = 0.4
	sp.TauDecay = 2
	sp.Delay = 0
	sp.Update()
}

// Update computes Norm from the time constants: the difference of
// exponentials peaks at t* = TauDecay*TauRise/(TauDecay-TauRise) *
// ln(TauDecay/TauRise).
func (sp *SynParams) Update() {
	tp := sp.TauDecay * sp.TauRise / (sp.TauDecay - sp.TauRise) * math32.Log(sp.TauDecay/sp.TauRise)
	sp.Norm = math32.Exp(-tp/sp.TauDecay) - math32.Exp(-tp/sp.TauRise)
}

// Validate checks the time constants.
func (sp *SynParams) Validate() error {
	if sp.TauRise <= 0 {
		return fmt.Errorf("biexp.SynParams: TauRise must be > 0, got %g", sp.TauRise)
	}
	if sp.TauDecay <= sp.TauRise {
		return fmt.Errorf("biexp.SynParams: TauDecay (%g) must be greater than TauRise (%g)", sp.TauDecay, sp.TauRise)
	}
	return nil
}

// Currents converts spike trains into biexponential postsynaptic currents,
// returning a (len(evalTimes) x receiving units) tensor usable directly as
// a wslfp current trace.  spikeTimes (ms) and spikeIndexes (sending unit
// per spike) run in parallel and need not be sorted; evalTimes must be
// strictly increasing.  Dimension mismatches and out-of-range indexes are
// validation errors.
func Currents(evalTimes, spikeTimes []float32, spikeIndexes []int32, cn *Conn, par *SynParams) (*etensor.Float32, error) {
	if cn == nil {
		return nil, fmt.Errorf("biexp.Currents: nil connectivity")
	}
	if par == nil {
		return nil, fmt.Errorf("biexp.Currents: nil synaptic params")
	}
	if err := par.Validate(); err != nil {
		return nil, err
	}
	sp := *par
	sp.Update()
	if len(spikeTimes) != len(spikeIndexes) {
		return nil, fmt.Errorf("biexp.Currents: %d spike times but %d spike source indexes", len(spikeTimes), len(spikeIndexes))
	}
	nt := len(evalTimes)
	if nt == 0 {
		return nil, fmt.Errorf("biexp.Currents: no evaluation times given")
	}
	for i := 1; i < nt; i++ {
		if evalTimes[i] <= evalTimes[i-1] {
			return nil, fmt.Errorf("biexp.Currents: evaluation times must be strictly increasing: t[%d]=%g >= t[%d]=%g", i-1, evalTimes[i-1], i, evalTimes[i])
		}
	}
	for k, si := range spikeIndexes {
		if si < 0 || int(si) >= cn.NSend {
			return nil, fmt.Errorf("biexp.Currents: spike %d has source index %d, out of range [0, %d) for connectivity", k, si, cn.NSend)
		}
	}

	// bucket arrival times (spike + delay) per source, in time order
	ord := make([]int, len(spikeTimes))
	for i := range ord {
		ord[i] = i
	}
	sort.SliceStable(ord, func(a, b int) bool { return spikeTimes[ord[a]] < spikeTimes[ord[b]] })
	arr := make([][]float32, cn.NSend)
	for _, k := range ord {
		si := spikeIndexes[k]
		arr[si] = append(arr[si], spikeTimes[k]+sp.Delay)
	}

	out := etensor.NewFloat32([]int{nt, cn.NRecv}, nil, []string{"Time", "Target"})
	tr := make([]float32, nt)
	for si := 0; si < cn.NSend; si++ {
		nc := int(cn.SConN[si])
		evs := arr[si]
		if len(evs) == 0 || nc == 0 {
			continue
		}
		sourceTrace(evalTimes, evs, &sp, tr)
		st := int(cn.SConIndexSt[si])
		for ci := 0; ci < nc; ci++ {
			ri := int(cn.SConIndex[st+ci])
			wt := cn.Wts[st+ci]
			if wt == 0 {
				continue
			}
			for ti := 0; ti < nt; ti++ {
				out.Values[ti*cn.NRecv+ri] += wt * tr[ti]
			}
		}
	}
	return out, nil
}

// sourceTrace fills tr with the normalized biexponential trace for one
// source, given its sorted arrival times.  Between events the two decay
// states advance by exact closed-form exponentials; each arrival increments
// both states by one.
func sourceTrace(evalTimes, evs []float32, sp *SynParams, tr []float32) {
	var dSt, rSt, tLast float32
	live := false
	k := 0
	for ti, tv := range evalTimes {
		for k < len(evs) && evs[k] <= tv {
			ts := evs[k]
			if live {
				dSt *= math32.Exp(-(ts - tLast) / sp.TauDecay)
				rSt *= math32.Exp(-(ts - tLast) / sp.TauRise)
			}
			dSt++
			rSt++
			tLast = ts
			live = true
			k++
		}
		if !live {
			tr[ti] = 0
			continue
		}
		dt := tv - tLast
		tr[ti] = (dSt*math32.Exp(-dt/sp.TauDecay) - rSt*math32.Exp(-dt/sp.TauRise)) / sp.Norm
	}
}
