// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package align interpolates recorded current traces onto requested
evaluation times.

Evaluation times outside the recorded trace window are not an error:
out-of-range points get zero current, and a RangeWarning describing the
requested versus available range is returned alongside the values.  This
fail-soft policy covers the common case where traces were recorded for a
shorter window than the desired causal lookback.

Causal offsets between current types are applied by the caller shifting the
requested times; alignment itself is offset-agnostic.
*/
package align

import (
	"fmt"
	"sort"

	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// RangeWarning is the non-fatal diagnostic emitted when evaluation times
// fall outside the available trace window.  Out-of-range values are zero.
type RangeWarning struct {
	Trace     string     `desc:"name of the trace the warning applies to (e.g., AMPA, GABA); set by the caller"`
	Requested minmax.F32 `desc:"range of requested evaluation times (ms)"`
	Available minmax.F32 `desc:"range of the available trace time axis (ms)"`
}

func (rw *RangeWarning) String() string {
	tn := rw.Trace
	if tn == "" {
		tn = "trace"
	}
	return fmt.Sprintf("%s: requested times [%g, %g] ms extend outside the available range [%g, %g] ms -- out-of-range points set to zero current", tn, rw.Requested.Min, rw.Requested.Max, rw.Available.Min, rw.Available.Max)
}

// Interp linearly interpolates a (time x source) trace onto the requested
// evaluation times, returning a (len(evalTimes) x sources) tensor.  The
// trace time axis must be strictly increasing and match the trace row
// count.  Out-of-range evaluation times yield zero rows plus a non-nil
// RangeWarning; they never fail.
func Interp(evalTimes, traceTimes []float32, trace *etensor.Float32) (*etensor.Float32, *RangeWarning, error) {
	if trace == nil || trace.NumDims() != 2 {
		return nil, nil, fmt.Errorf("align.Interp: trace must be a 2D (time x source) tensor")
	}
	nt := len(traceTimes)
	if nt == 0 {
		return nil, nil, fmt.Errorf("align.Interp: empty trace time axis")
	}
	if trace.Dim(0) != nt {
		return nil, nil, fmt.Errorf("align.Interp: trace has %d time rows but time axis has %d points", trace.Dim(0), nt)
	}
	for i := 1; i < nt; i++ {
		if traceTimes[i] <= traceTimes[i-1] {
			return nil, nil, fmt.Errorf("align.Interp: trace time axis must be strictly increasing: t[%d]=%g >= t[%d]=%g", i-1, traceTimes[i-1], i, traceTimes[i])
		}
	}
	ns := trace.Dim(1)
	out := etensor.NewFloat32([]int{len(evalTimes), ns}, nil, []string{"Time", "Source"})
	var warn *RangeWarning
	for ti, tv := range evalTimes {
		if tv < traceTimes[0] || tv > traceTimes[nt-1] {
			if warn == nil {
				warn = &RangeWarning{
					Available: minmax.F32{Min: traceTimes[0], Max: traceTimes[nt-1]},
					Requested: minmax.F32{Min: evalTimes[0], Max: evalTimes[0]},
				}
				for _, ev := range evalTimes {
					warn.Requested.FitValInRange(ev)
				}
			}
			continue // zero row
		}
		j := sort.Search(nt, func(k int) bool { return traceTimes[k] >= tv })
		orow := out.Values[ti*ns : (ti+1)*ns]
		if traceTimes[j] == tv {
			copy(orow, trace.Values[j*ns:(j+1)*ns])
			continue
		}
		frac := (tv - traceTimes[j-1]) / (traceTimes[j] - traceTimes[j-1])
		lo := trace.Values[(j-1)*ns : j*ns]
		hi := trace.Values[j*ns : (j+1)*ns]
		for si := range orow {
			orow[si] = lo[si] + frac*(hi[si]-lo[si])
		}
	}
	return out, warn, nil
}
