package domain

import "math/bits"

// CandidateSet is a bitmask over digits 1-9: bit v is set while digit v
// is still possible for a cell.
type CandidateSet uint16

// FullCandidates has all nine digits set (bits 1-9).
const FullCandidates CandidateSet = 0x3FE

func (s CandidateSet) Has(v uint8) bool { return s&(1<<v) != 0 }

func (s CandidateSet) Add(v uint8) CandidateSet { return s | 1<<v }

func (s CandidateSet) Remove(v uint8) CandidateSet { return s &^ (1 << v) }

func (s CandidateSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the single remaining digit, or 0 when the set does not
// have exactly one member.
func (s CandidateSet) Sole() uint8 {
	if s.Count() != 1 {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(s)))
}

// Digits lists the members in ascending order.
func (s CandidateSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
