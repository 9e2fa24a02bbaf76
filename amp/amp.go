// Copyright (c) 2024, The WSLFP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package amp provides the amplitude profiles for the weighted-sum LFP proxy.

An amplitude profile maps the geometric relationship between a current
source and a recording electrode -- distance and the cosine of the angle
between the displacement and the source's principal (apical) axis -- onto a
scalar weighting factor.  The Mazzoni profiles interpolate a fixed digitized
calibration table; the Aussel profile is a closed-form single-dipole
expression with scalar constants.
*/
package amp

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// Profile is the common interface for amplitude profiles.  Amplitude takes
// the source-electrode distance (microns) and the cosine of the angle
// between the displacement vector and the source orientation axis, and
// returns the weighting factor applied to that source's current at that
// electrode.
type Profile interface {
	// Amplitude returns the weight for one (distance, cos angle) pair.
	Amplitude(distUM, cosAng float32) float32

	// Type returns the profile variant.
	Type() Profiles

	// DefinedAtZero returns true if the profile has a defined value at
	// zero source-electrode distance.
	DefinedAtZero() bool
}

// New returns the Profile for the given variant, with default parameters.
// Unrecognized variants are an error, surfaced at construction rather than
// at compute time.
func New(prof Profiles) (Profile, error) {
	switch prof {
	case Mazzoni15Pop:
		return NewMazzoniPop(), nil
	case Mazzoni15Nrn:
		return NewMazzoniNrn(), nil
	case Aussel18:
		au := &Aussel{}
		au.Defaults()
		return au, nil
	}
	return nil, fmt.Errorf("amp.New: unrecognized amplitude profile: %d", prof)
}

// FromName returns the Profile whose variant name matches the given string
// (e.g., "Mazzoni15Pop"), with default parameters.
func FromName(name string) (Profile, error) {
	for p := Profiles(0); p < ProfilesN; p++ {
		if p.String() == name {
			return New(p)
		}
	}
	return nil, fmt.Errorf("amp.FromName: unrecognized amplitude profile name: %q", name)
}

// Amplitudes evaluates the profile over equal-length distance and cosine
// arrays, writing into out, which is allocated if nil.  The array form is
// the bulk path for amplitude-matrix computation.
func Amplitudes(pr Profile, dist, cosAng, out []float32) ([]float32, error) {
	if len(dist) != len(cosAng) {
		return nil, fmt.Errorf("amp.Amplitudes: distance and cosine arrays must have equal length: %d != %d", len(dist), len(cosAng))
	}
	if out == nil {
		out = make([]float32, len(dist))
	} else if len(out) != len(dist) {
		return nil, fmt.Errorf("amp.Amplitudes: out array must have length %d, got %d", len(dist), len(out))
	}
	for i := range dist {
		out[i] = pr.Amplitude(dist[i], cosAng[i])
	}
	return out, nil
}

//////////////////////////////////////////////////////////////////////
// Enums

// Profiles are the supported amplitude profile variants
type Profiles int

//go:generate stringer -type=Profiles

var KiT_Profiles = kit.Enums.AddEnum(ProfilesN, false, nil)

func (ev Profiles) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Profiles) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Mazzoni15Pop is the population-level profile digitized from the
	// Mazzoni et al. (2015) calibration against ground-truth biophysical
	// simulations -- appropriate when each source is the summed current
	// of a population
	Mazzoni15Pop Profiles = iota

	// Mazzoni15Nrn is the per-neuron variant of the Mazzoni profile,
	// rescaled so that spatial averaging over many individual neurons
	// reproduces the population-level profile within a small cylinder
	// radius -- appropriate when each source is a single neuron
	Mazzoni15Nrn

	// Aussel18 is the closed-form single-dipole profile from Aussel et
	// al. (2018): L cos(theta) / (4 pi sigma d^2)
	Aussel18

	ProfilesN
)
