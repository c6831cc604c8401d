package keccak

// The Keccak-p[1600,24] permutation: theta, rho/pi (combined), chi, and
// iota applied for 24 rounds over a 5x5 lattice of 64-bit lanes, stored as
// state[x + 5*y]. Round constants, rho rotation offsets, and the pi lane
// order reproduce FIPS 202 sec. 3.2 and keccak.team's reference tables
// verbatim.

// roundConstants are the iota step's per-round constants, ref.
// https://keccak.team/keccak_specs_summary.html
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotOffsets are the rho step's per-lane left-rotation amounts, in pi lane
// order, ref. https://github.com/mjosaarinen/tiny_sha3/blob/master/sha3.c
var rotOffsets = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piLane gives the destination index for each of the 24 lanes shifted by
// the pi step, same source as rotOffsets.
var piLane = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

func rotl64(w uint64, n int) uint64 {
	n %= 64
	return w<<uint(n) | w>>uint(64-n)
}

// keccakP applies the 24-round Keccak-p[1600,24] permutation to state.
func keccakP(state [25]uint64) [25]uint64 {
	for round := 0; round < 24; round++ {
		state = iota_(chi(rhoPi(theta(state))), round)
	}
	return state
}

// theta xors each lane with the parities of two columns, ref FIPS 202 sec.
// 3.2.1.
func theta(state [25]uint64) [25]uint64 {
	var c [5]uint64
	for i := 0; i < 5; i++ {
		c[i] = state[i] ^ state[i+5] ^ state[i+10] ^ state[i+15] ^ state[i+20]
	}

	var out [25]uint64
	for i := 0; i < 5; i++ {
		d := c[(i+4)%5] ^ rotl64(c[(i+1)%5], 1)
		for j := 0; j < 5; j++ {
			out[i+5*j] = state[i+5*j] ^ d
		}
	}
	return out
}

// rhoPi combines the rho (rotation) and pi (lane permutation) steps, ref
// FIPS 202 sec. 3.2.2-3.
func rhoPi(state [25]uint64) [25]uint64 {
	var out [25]uint64
	out[0] = state[0]
	t := state[1]
	for i := 0; i < 24; i++ {
		ind := piLane[i]
		temp := state[ind]
		out[ind] = rotl64(t, rotOffsets[i])
		t = temp
	}
	return out
}

// chi xors each lane with a function of two other lanes in its row, ref
// FIPS 202 sec. 3.2.4.
func chi(state [25]uint64) [25]uint64 {
	var out [25]uint64
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			t := ^state[(i+1)%5+5*j] & state[(i+2)%5+5*j]
			out[i+5*j] = state[i+5*j] ^ t
		}
	}
	return out
}

// iota_ xors the round constant into lane (0,0), ref FIPS 202 sec. 3.2.5.
func iota_(state [25]uint64, round int) [25]uint64 {
	state[0] ^= roundConstants[round]
	return state
}
