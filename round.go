package skinny

// state is the 4x4 cell matrix, stored row-major (index = row*4 + col).
type state [BlockSize]byte

// subCells applies the S-box to every cell.
func subCells(s *state) {
	for i, x := range s {
		s[i] = sbox[x]
	}
}

// addConstants injects the round constant for round r into the first
// column. r must be below Rounds.
func addConstants(s *state, r int) {
	rc := roundConstants[r]
	s[0] ^= rc & 0x0f
	s[4] ^= (rc >> 4) & 0x03
	s[8] ^= 0x02
}

// shiftRows rotates row k right by k cells.
func shiftRows(s *state) {
	s[4], s[5], s[6], s[7] = s[7], s[4], s[5], s[6]
	s[8], s[9], s[10], s[11] = s[10], s[11], s[8], s[9]
	s[12], s[13], s[14], s[15] = s[13], s[14], s[15], s[12]
}

// mixColumns multiplies each column by mixMatrix over GF(2):
//
//	r0' = r0 ^ r2 ^ r3
//	r1' = r0
//	r2' = r1 ^ r2
//	r3' = r0 ^ r2
func mixColumns(s *state) {
	for c := 0; c < 4; c++ {
		r0, r1, r2, r3 := s[c], s[4+c], s[8+c], s[12+c]
		s[c] = r0 ^ r2 ^ r3
		s[4+c] = r0
		s[8+c] = r1 ^ r2
		s[12+c] = r0 ^ r2
	}
}
