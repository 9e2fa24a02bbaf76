// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package wslfp is the overall repository for the weighted-sum local field
potential (WSLFP) proxy, implemented in the Go language (golang).

The WSLFP proxy estimates the LFP signal at arbitrary recording locations
from the excitatory (AMPA) and inhibitory (GABA) synaptic currents of a
point-neuron simulation, using per-source, per-electrode amplitudes
calibrated against ground-truth biophysical simulations (Mazzoni et al.,
2015).  Only the constant-alpha reference variant (RWSLFP) is implemented.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* amp: the amplitude profiles mapping the geometric relationship between a
current source and a recording electrode to a scalar weighting factor,
including the table-interpolated Mazzoni population and per-neuron profiles
and the Aussel et al. (2018) closed-form dipole profile.

* geom: computes the full (sources x electrodes) amplitude matrix from
source and electrode coordinates, per-source orientation vectors, and a
chosen amplitude profile.

* align: linear interpolation of current traces onto requested evaluation
times, with a fail-soft zero-fill policy and range warnings for evaluation
times outside the recorded trace window.

* wslfp: the calculator that owns the precomputed amplitude matrix and the
causal-delay parameters, and combines aligned AMPA and GABA currents into
the LFP signal.

* biexp: converts spike trains plus a sparse connectivity matrix into
biexponential postsynaptic current traces, usable as direct input to the
calculator.

* examples: these compile into runnable programs -- examples/rwslfp wires
spikes through biexp into a full LFP computation.
*/
package wslfp
