package skinny

import (
	"crypto/rand"
	"fmt"
	"testing"
)

// TestSBoxBijection catches transcription errors in the S-box.
func TestSBoxBijection(t *testing.T) {
	var seen [256]bool
	for i, v := range sbox {
		if seen[v] {
			t.Fatalf("S-box value 0x%02x appears twice (second at index %d)", v, i)
		}
		seen[v] = true
	}
}

func TestRoundConstants(t *testing.T) {
	for r, rc := range roundConstants {
		if rc > 0x3f {
			t.Errorf("Round constant %d is 0x%02x, wider than 6 bits", r, rc)
		}
	}
	// The constants come from a 6-bit LFSR: rc' = rc<<1 | (rc5 ^ rc4 ^ 1).
	for r := 1; r < len(roundConstants); r++ {
		prev := roundConstants[r-1]
		next := (prev<<1 | (prev>>5^prev>>4^1)&0x01) & 0x3f
		if roundConstants[r] != next {
			t.Errorf("Round constant %d: got 0x%02x, expected 0x%02x", r, roundConstants[r], next)
		}
	}
}

func TestSubCells(t *testing.T) {
	var s state
	for i := range s {
		s[i] = byte(i * 17)
	}
	orig := s

	subCells(&s)

	for i := range s {
		if s[i] != sbox[orig[i]] {
			t.Errorf("Cell %d: got 0x%02x, expected 0x%02x", i, s[i], sbox[orig[i]])
		}
	}
}

func TestAddConstants(t *testing.T) {
	testCases := []struct {
		round      int
		c0, c1, c2 byte
	}{
		{0, 0x01, 0x00, 0x02},  // rc = 0x01
		{4, 0x0f, 0x01, 0x02},  // rc = 0x1f
		{5, 0x0e, 0x03, 0x02},  // rc = 0x3e
		{55, 0x0a, 0x00, 0x02}, // rc = 0x0a
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("round_%d", tc.round), func(t *testing.T) {
			var s state
			addConstants(&s, tc.round)

			want := state{0: tc.c0, 4: tc.c1, 8: tc.c2}
			if s != want {
				t.Errorf("got %x, expected %x", s, want)
			}
		})
	}
}

func TestShiftRows(t *testing.T) {
	var s state
	for i := range s {
		s[i] = byte(i)
	}

	shiftRows(&s)

	want := state{0, 1, 2, 3, 7, 4, 5, 6, 10, 11, 8, 9, 13, 14, 15, 12}
	if s != want {
		t.Errorf("got %v, expected %v", s, want)
	}
}

// mixColumnsMatrix is the textbook matrix product with mixMatrix.
func mixColumnsMatrix(s *state) {
	var out state
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			for l := 0; l < 4; l++ {
				if mixMatrix[row][l] == 1 {
					out[row*4+col] ^= s[l*4+col]
				}
			}
		}
	}
	*s = out
}

// TestMixColumnsMatchesMatrix checks the closed form against the generic
// GF(2) matrix product.
func TestMixColumnsMatchesMatrix(t *testing.T) {
	for i := 0; i < 256; i++ {
		var s state
		if _, err := rand.Read(s[:]); err != nil {
			t.Fatalf("Failed to generate random state: %v", err)
		}
		closed, generic := s, s

		mixColumns(&closed)
		mixColumnsMatrix(&generic)

		if closed != generic {
			t.Fatalf("Input %x: closed form %x, matrix %x", s, closed, generic)
		}
	}
}
