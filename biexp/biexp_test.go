// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package biexp

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	path "github.com/emer/emergent/v2/prjn"
	"github.com/stretchr/testify/require"
)

const difTol = float32(1.0e-5)

func CmprFloats(got, trg []float32, msg string, t *testing.T) {
	t.Helper()
	for i := range got {
		dif := math32.Abs(got[i] - trg[i])
		if dif > difTol { // allow for small numerical diffs
			t.Errorf("%v err: idx: %v, got: %v, trg: %v, dif: %v\n", msg, i, got[i], trg[i], dif)
		}
	}
}

// kernel evaluates the normalized biexponential directly, for cross-checking
// the incremental two-state computation.
func kernel(dt float32, sp *SynParams) float32 {
	if dt < 0 {
		return 0
	}
	return (math32.Exp(-dt/sp.TauDecay) - math32.Exp(-dt/sp.TauRise)) / sp.Norm
}

func TestSingleSpikeWaveform(t *testing.T) {
	sp := &SynParams{}
	sp.Defaults() // TauRise 0.4, TauDecay 2, Delay 0

	cn := FullConn(1, 1, 1)
	eval := []float32{0, 5, 10, 10.5, 12, 20}
	out, err := Currents(eval, []float32{10}, []int32{0}, cn, sp)
	require.NoError(t, err)

	// zero before and at the spike, rising past it, decaying well after
	trg := []float32{0, 0, 0, 0.9201928, 0.6750406, 0.0125945}
	CmprFloats(out.Values, trg, "single spike waveform", t)
}

func TestPeakNormalization(t *testing.T) {
	sp := &SynParams{}
	sp.Defaults()

	// peak time for TauRise 0.4, TauDecay 2 is (2*0.4/1.6)*ln(5)
	tp := float32(0.5 * 1.6094379)
	cn := FullConn(1, 1, 1)
	out, err := Currents([]float32{10 + tp}, []float32{10}, []int32{0}, cn, sp)
	require.NoError(t, err)
	CmprFloats(out.Values, []float32{1}, "peak equals weight", t)
}

func TestSynDelay(t *testing.T) {
	sp := &SynParams{}
	sp.Defaults()
	sp.Delay = 2

	cn := FullConn(1, 1, 0.5)
	eval := []float32{10.5, 11.9, 12, 12.5}
	out, err := Currents(eval, []float32{10}, []int32{0}, cn, sp)
	require.NoError(t, err)

	trg := []float32{0, 0, 0, 0.5 * kernel(0.5, sp)}
	CmprFloats(out.Values, trg, "synaptic delay", t)
}

func TestAgainstDirectConvolution(t *testing.T) {
	sp := &SynParams{}
	sp.Defaults()
	sp.Delay = 1

	rnd := rand.New(rand.NewSource(42))
	nsend, nrecv, nspk := 4, 3, 200
	si := make([]int32, 0, nsend*nrecv/2)
	ri := make([]int32, 0, nsend*nrecv/2)
	wt := make([]float32, 0, nsend*nrecv/2)
	for i := 0; i < nsend; i++ {
		for j := 0; j < nrecv; j++ {
			if (i+j)%2 == 0 {
				si = append(si, int32(i))
				ri = append(ri, int32(j))
				wt = append(wt, rnd.Float32()*2-1)
			}
		}
	}
	cn, err := ConnFromTriplets(nsend, nrecv, si, ri, wt)
	require.NoError(t, err)

	spkT := make([]float32, nspk)
	spkI := make([]int32, nspk)
	for k := range spkT {
		spkT[k] = rnd.Float32() * 100
		spkI[k] = int32(rnd.Intn(nsend))
	}
	eval := make([]float32, 101)
	for i := range eval {
		eval[i] = float32(i)
	}

	out, err := Currents(eval, spkT, spkI, cn, sp)
	require.NoError(t, err)

	// direct per-spike-per-timepoint sum: the quadratic formulation the
	// incremental version must reproduce
	trg := make([]float32, len(eval)*nrecv)
	for c := range si {
		for k := range spkT {
			if spkI[k] != si[c] {
				continue
			}
			for ti, tv := range eval {
				trg[ti*nrecv+int(ri[c])] += wt[c] * kernel(tv-spkT[k]-sp.Delay, sp)
			}
		}
	}
	for i := range trg {
		if math32.Abs(out.Values[i]-trg[i]) > 1.0e-3 {
			t.Errorf("direct convolution mismatch at %d: got %v, trg %v", i, out.Values[i], trg[i])
		}
	}
}

func TestConnFromTriplets(t *testing.T) {
	si := []int32{1, 0, 1}
	ri := []int32{0, 2, 1}
	wt := []float32{0.5, -0.25, 1}
	cn, err := ConnFromTriplets(2, 3, si, ri, wt)
	require.NoError(t, err)

	require.Equal(t, []int32{1, 2}, cn.SConN)
	require.Equal(t, []int32{0, 1}, cn.SConIndexSt)
	require.Equal(t, []int32{2, 0, 1}, cn.SConIndex)
	require.Equal(t, []float32{-0.25, 0.5, 1}, cn.Wts)
	require.Equal(t, 3, cn.NConn())
	require.Equal(t, float32(2), cn.SConNAvgMax.Max)

	_, err = ConnFromTriplets(2, 3, si, ri, wt[:2])
	require.Error(t, err)
	_, err = ConnFromTriplets(2, 3, []int32{2}, []int32{0}, []float32{1})
	require.Error(t, err)
	_, err = ConnFromTriplets(2, 3, []int32{0}, []int32{3}, []float32{1})
	require.Error(t, err)
}

func TestConnFromPattern(t *testing.T) {
	// full pattern must give the dense sender-major layout
	cn, err := ConnFromPattern(path.NewFull(), 2, 3, 0.5)
	require.NoError(t, err)
	require.Equal(t, []int32{3, 3}, cn.SConN)
	require.Equal(t, []int32{0, 3}, cn.SConIndexSt)
	require.Equal(t, []int32{0, 1, 2, 0, 1, 2}, cn.SConIndex)
	require.Equal(t, []float32{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, cn.Wts)
	require.Equal(t, float32(3), cn.SConNAvgMax.Max)

	fc := FullConn(2, 3, 0.5)
	require.Equal(t, cn.SConIndex, fc.SConIndex)
	require.Equal(t, cn.Wts, fc.Wts)

	oo, err := ConnFromPattern(path.NewOneToOne(), 3, 3, 1)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 1, 1}, oo.SConN)
	require.Equal(t, []int32{0, 1, 2}, oo.SConIndex)

	_, err = ConnFromPattern(nil, 2, 3, 1)
	require.Error(t, err)
	_, err = ConnFromPattern(path.NewFull(), 0, 3, 1)
	require.Error(t, err)
}

func TestCurrentsValidation(t *testing.T) {
	sp := &SynParams{}
	sp.Defaults()
	cn := FullConn(2, 2, 1)

	_, err := Currents([]float32{0, 1}, []float32{5}, []int32{2}, cn, sp) // index out of range
	require.Error(t, err)
	_, err = Currents([]float32{0, 1}, []float32{5, 6}, []int32{0}, cn, sp) // length mismatch
	require.Error(t, err)
	_, err = Currents([]float32{1, 1}, nil, nil, cn, sp) // non-increasing times
	require.Error(t, err)
	_, err = Currents(nil, nil, nil, cn, sp) // no eval times
	require.Error(t, err)

	bad := &SynParams{TauRise: 2, TauDecay: 1}
	_, err = Currents([]float32{0, 1}, nil, nil, cn, bad) // decay must exceed rise
	require.Error(t, err)
}

func TestUnsortedSpikes(t *testing.T) {
	sp := &SynParams{}
	sp.Defaults()
	cn := FullConn(1, 1, 1)
	eval := []float32{0, 5, 12, 20, 30}

	a, err := Currents(eval, []float32{10, 4, 18}, []int32{0, 0, 0}, cn, sp)
	require.NoError(t, err)
	b, err := Currents(eval, []float32{4, 10, 18}, []int32{0, 0, 0}, cn, sp)
	require.NoError(t, err)
	require.Equal(t, a.Values, b.Values)
}
