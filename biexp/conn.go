// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package biexp

import (
	"fmt"

	path "github.com/emer/emergent/v2/prjn"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// Conn is a sparse synaptic connectivity matrix between presynaptic
// (sending) and postsynaptic (receiving) units, stored in sender-major
// compressed form: per-sender connection counts and starting offsets into
// flat receiver-index and weight lists.  Weights are signed.  Conn is
// read-only to the synthesizer; ownership stays with the caller.
type Conn struct {
	// number of presynaptic (sending) units
	NSend int

	// number of postsynaptic (receiving) units
	NRecv int

	// number of connections for each sending unit, as a flat list
	SConN []int32 `view:"-"`

	// average and maximum number of connections per sending unit
	SConNAvgMax minmax.AvgMax32 `inactive:"+" view:"inline"`

	// starting index into SConIndex for each sending unit;
	// list incremented by SConN
	SConIndexSt []int32 `view:"-"`

	// index of the receiving unit for each connection, ordered by the
	// sending unit as the outer loop (each start is in SConIndexSt)
	SConIndex []int32 `view:"-"`

	// synaptic weight for each connection, one-to-one with SConIndex
	Wts []float32 `view:"-"`
}

// NConn returns the total number of connections.
func (cn *Conn) NConn() int { return len(cn.SConIndex) }

// setNIndexSt sets SConN and SConIndexSt from the per-sender connection
// count tensor produced by a connectivity pattern, returning the total
// number of connections.
func (cn *Conn) setNIndexSt(tn *etensor.Int32) int32 {
	ln := tn.Len()
	cn.SConN = make([]int32, ln)
	cn.SConIndexSt = make([]int32, ln)
	idx := int32(0)
	cn.SConNAvgMax.Init()
	for i := 0; i < ln; i++ {
		nv := tn.Values[i]
		cn.SConN[i] = nv
		cn.SConIndexSt[i] = idx
		idx += nv
		cn.SConNAvgMax.UpdateVal(float32(nv), int32(i))
	}
	cn.SConNAvgMax.CalcAvg()
	return idx
}

// ConnFromPattern builds a Conn from an emergent connectivity pattern
// (path.NewFull, path.NewOneToOne, path.NewUniformRand, ...) over flat
// nsend and nrecv unit shapes, assigning the uniform weight wt to every
// generated connection.  Use ConnFromTriplets for per-connection weights.
func ConnFromPattern(pat path.Pattern, nsend, nrecv int, wt float32) (*Conn, error) {
	if pat == nil {
		return nil, fmt.Errorf("biexp.ConnFromPattern: nil pattern")
	}
	if nsend <= 0 || nrecv <= 0 {
		return nil, fmt.Errorf("biexp.ConnFromPattern: need positive unit counts, got %d x %d", nsend, nrecv)
	}
	ssh := etensor.NewShape([]int{nsend}, nil, []string{"Send"})
	rsh := etensor.NewShape([]int{nrecv}, nil, []string{"Recv"})
	sendn, _, cons := pat.Connect(ssh, rsh, false)
	cn := &Conn{NSend: nsend, NRecv: nrecv}
	tcons := cn.setNIndexSt(sendn)
	cn.SConIndex = make([]int32, tcons)
	cn.Wts = make([]float32, tcons)
	fill := make([]int32, nsend)
	cbits := cons.Values
	for ri := 0; ri < nrecv; ri++ {
		rbi := ri * nsend // recv bit index
		for si := 0; si < nsend; si++ {
			if !cbits.Index(rbi + si) { // no connection
				continue
			}
			ci := cn.SConIndexSt[si] + fill[si]
			cn.SConIndex[ci] = int32(ri)
			cn.Wts[ci] = wt
			fill[si]++
		}
	}
	return cn, nil
}

// ConnFromTriplets builds a Conn from COO triplets: connection k goes from
// sending unit si[k] to receiving unit ri[k] with weight wt[k].  Triplet
// order is irrelevant.  Out-of-range indexes and mismatched lengths are
// validation errors.
func ConnFromTriplets(nsend, nrecv int, si, ri []int32, wt []float32) (*Conn, error) {
	if nsend <= 0 || nrecv <= 0 {
		return nil, fmt.Errorf("biexp.ConnFromTriplets: need positive unit counts, got %d x %d", nsend, nrecv)
	}
	if len(si) != len(ri) || len(si) != len(wt) {
		return nil, fmt.Errorf("biexp.ConnFromTriplets: triplet arrays must have equal length: %d, %d, %d", len(si), len(ri), len(wt))
	}
	cn := &Conn{NSend: nsend, NRecv: nrecv}
	cn.SConN = make([]int32, nsend)
	cn.SConIndexSt = make([]int32, nsend)
	for k := range si {
		if si[k] < 0 || int(si[k]) >= nsend {
			return nil, fmt.Errorf("biexp.ConnFromTriplets: sending index %d out of range [0, %d) at triplet %d", si[k], nsend, k)
		}
		if ri[k] < 0 || int(ri[k]) >= nrecv {
			return nil, fmt.Errorf("biexp.ConnFromTriplets: receiving index %d out of range [0, %d) at triplet %d", ri[k], nrecv, k)
		}
		cn.SConN[si[k]]++
	}
	idx := int32(0)
	cn.SConNAvgMax.Init()
	for i := 0; i < nsend; i++ {
		cn.SConIndexSt[i] = idx
		idx += cn.SConN[i]
		cn.SConNAvgMax.UpdateVal(float32(cn.SConN[i]), int32(i))
	}
	cn.SConNAvgMax.CalcAvg()
	cn.SConIndex = make([]int32, idx)
	cn.Wts = make([]float32, idx)
	fill := make([]int32, nsend)
	for k := range si {
		ci := cn.SConIndexSt[si[k]] + fill[si[k]]
		cn.SConIndex[ci] = ri[k]
		cn.Wts[ci] = wt[k]
		fill[si[k]]++
	}
	return cn, nil
}

// FullConn builds an all-to-all Conn with a uniform weight -- a common
// fixture for tests and small models.  nsend and nrecv must be positive.
func FullConn(nsend, nrecv int, wt float32) *Conn {
	cn, _ := ConnFromPattern(path.NewFull(), nsend, nrecv, wt)
	return cn
}
