package skinny

// laneSize is the size of one tweakey lane (TK1, TK2 or TK3).
const laneSize = 16

type lane [laneSize]byte

// tweakey holds the three lanes of the tweakey state. Lanes are updated in
// place once per round by addRoundTweakey.
type tweakey struct {
	tk1, tk2, tk3 lane
}

func newTweakey(k *[TweakeySize]byte) tweakey {
	var tk tweakey
	copy(tk.tk1[:], k[0:laneSize])
	copy(tk.tk2[:], k[laneSize:2*laneSize])
	copy(tk.tk3[:], k[2*laneSize:3*laneSize])
	return tk
}

// addRoundTweakey XORs the first two rows of all three lanes into the state,
// then advances the lanes for the next round.
func addRoundTweakey(s *state, tk *tweakey) {
	for i := 0; i < laneSize/2; i++ {
		s[i] ^= tk.tk1[i] ^ tk.tk2[i] ^ tk.tk3[i]
	}
	tk.advance()
}

// advance applies P_T to every lane and the LFSRs to the first two rows of
// TK2 and TK3. TK1 is only permuted.
func (tk *tweakey) advance() {
	tk.tk1.permute()
	tk.tk2.permute()
	tk.tk3.permute()
	for i := 0; i < laneSize/2; i++ {
		tk.tk2[i] = lfsr2(tk.tk2[i])
		tk.tk3[i] = lfsr3(tk.tk3[i])
	}
}

func (l *lane) permute() {
	old := *l
	for i, p := range tweakeyPermutation {
		l[i] = old[p]
	}
}

// lfsr2: x7..x0 -> x6..x0 || x7^x5
func lfsr2(x byte) byte {
	return x<<1 | (x>>7^x>>5)&0x01
}

// lfsr3: x7..x0 -> x0^x6 || x7..x1
func lfsr3(x byte) byte {
	return x>>1 | ((x^x>>6)&0x01)<<7
}
