// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amp

// The tables below are the fixed digitized calibration dataset for the
// Mazzoni et al. (2015) amplitude profiles: per-electrode LFP amplitude per
// unit synaptic current, as a function of signed depth relative to the
// dipole center along the apical axis (rows, -500..1000 microns) and radial
// distance from that axis (cols, 0..200 microns).  They are reproduced
// verbatim from the calibration source and must not be edited or
// recomputed -- output fidelity depends on bit-identical values.

var mazzoniDepths = []float32{-500, -400, -300, -200, -100, 0, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}

var mazzoniRadii = []float32{0, 25, 50, 75, 100, 125, 150, 175, 200}

// Mazzoni15PopTab is the population-level table: amplitudes for a summed
// population current recorded at the given offset from the population's
// dipole center.
var Mazzoni15PopTab = Table{
	Depths: mazzoniDepths,
	Radii:  mazzoniRadii,
	Amps: []float32{
		-0.00540067, -0.00538825, -0.00535131, -0.00529076, -0.00520807, -0.00510517, -0.00498436, -0.00484813, -0.00469914,
		-0.00754799, -0.00752271, -0.00744785, -0.00732616, -0.00716197, -0.00696078, -0.00672883, -0.00647269, -0.00619883,
		-0.0113619, -0.0113006, -0.0111205, -0.0108326, -0.0104534, -0.0100023, -0.00949997, -0.00896569, -0.00841662,
		-0.0192772, -0.0190768, -0.0185014, -0.0176193, -0.0165221, -0.0153026, -0.0140401, -0.0127939, -0.0116036,
		-0.0405721, -0.0394142, -0.0363598, -0.0323146, -0.0280883, -0.024151, -0.020689, -0.0177299, -0.0152322,
		-0.0874, -0.0795349, -0.0637291, -0.0491402, -0.038021, -0.0298638, -0.02384, -0.0193117, -0.0158425,
		-0.0326731, -0.031567, -0.0286645, -0.024861, -0.0209511, -0.017387, -0.0143364, -0.0118095, -0.00975,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0.0326731, 0.031567, 0.0286645, 0.024861, 0.0209511, 0.017387, 0.0143364, 0.0118095, 0.00975,
		0.0874, 0.0795349, 0.0637291, 0.0491402, 0.038021, 0.0298638, 0.02384, 0.0193117, 0.0158425,
		0.0405721, 0.0394142, 0.0363598, 0.0323146, 0.0280883, 0.024151, 0.020689, 0.0177299, 0.0152322,
		0.0192772, 0.0190768, 0.0185014, 0.0176193, 0.0165221, 0.0153026, 0.0140401, 0.0127939, 0.0116036,
		0.0113619, 0.0113006, 0.0111205, 0.0108326, 0.0104534, 0.0100023, 0.00949997, 0.00896569, 0.00841662,
		0.00754799, 0.00752271, 0.00744785, 0.00732616, 0.00716197, 0.00696078, 0.00672883, 0.00647269, 0.00619883,
		0.00540067, 0.00538825, 0.00535131, 0.00529076, 0.00520807, 0.00510517, 0.00498436, 0.00484813, 0.00469914,
		0.00406505, 0.0040582, 0.00403777, 0.00400412, 0.00395786, 0.00389976, 0.00383081, 0.00375209, 0.00366478,
	},
}

// Mazzoni15NrnTab is the per-neuron table: the population table rescaled
// and spatially shrunk so that averaging the per-neuron profile over many
// neurons within a 100 micron cylinder reproduces the population-level
// values.
var Mazzoni15NrnTab = Table{
	Depths: mazzoniDepths,
	Radii:  mazzoniRadii,
	Amps: []float32{
		-0.00533483, -0.00532082, -0.00527919, -0.00521106, -0.00511822, -0.00500304, -0.00486828, -0.00471699, -0.00455232,
		-0.00768061, -0.00765093, -0.00756311, -0.00742069, -0.00722915, -0.00699548, -0.00672754, -0.00643349, -0.00612132,
		-0.0120595, -0.0119834, -0.0117602, -0.0114049, -0.0109394, -0.0103897, -0.0097828, -0.00914378, -0.00849434,
		-0.0219081, -0.0216354, -0.0208556, -0.019671, -0.0182156, -0.0166224, -0.0150012, -0.0134306, -0.0119597,
		-0.0540723, -0.0520147, -0.0467532, -0.0401243, -0.0335702, -0.0277777, -0.0229231, -0.0189515, -0.0157325,
		-0.235854, -0.17395, -0.106468, -0.0688676, -0.0472899, -0.0339125, -0.0251041, -0.0190448, -0.0147386,
		-0.0244278, -0.023, -0.0194791, -0.0153378, -0.0116103, -0.00865906, -0.00645952, -0.00485984, -0.00370237,
		0.0980401, 0.0871936, 0.0660183, 0.0473138, 0.0337875, 0.0244506, 0.0180108, 0.013512, 0.0103167,
		0.111116, 0.100061, 0.0782927, 0.0586996, 0.0441037, 0.0336255, 0.026059, 0.0205049, 0.0163561,
		0.0324857, 0.031837, 0.0300409, 0.0274648, 0.0245221, 0.0215433, 0.0187364, 0.0162044, 0.0139805,
		0.0158653, 0.0157291, 0.0153336, 0.0147146, 0.0139229, 0.0130151, 0.0120446, 0.011057, 0.0100872,
		0.00949555, 0.00944942, 0.00931345, 0.00909455, 0.00880327, 0.00845265, 0.00805685, 0.00762998, 0.00718514,
		0.00634612, 0.00632611, 0.00626674, 0.00616996, 0.00603882, 0.00587727, 0.0056899, 0.0054816, 0.00525733,
		0.00454939, 0.00453928, 0.00450919, 0.0044598, 0.00439222, 0.0043079, 0.0042086, 0.00409626, 0.00397294,
		0.00342457, 0.00341891, 0.00340201, 0.00337416, 0.00333582, 0.00328763, 0.00323032, 0.00316478, 0.00309195,
		0.00267261, 0.00266918, 0.00265895, 0.00264205, 0.00261869, 0.00258917, 0.00255386, 0.00251318, 0.0024676,
	},
}
