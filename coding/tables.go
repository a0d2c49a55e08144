// Copyright 2026 The fast-qr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Structural tables, indexed by version and level.  The data is
// fixed by the QR specification; table consistency (group sums,
// polynomial degrees, codeword totals) is enforced by tests, not at
// runtime.

// A BlockGroup describes one group of equally sized Reed-Solomon
// blocks: the number of blocks and the data codewords per block.
type BlockGroup struct {
	Blocks int // number of blocks in the group
	Words  int // data codewords per block
}

// A level describes the per-level codeword structure of a version.
type level struct {
	group [2]BlockGroup // Reed-Solomon block groups
	data  int           // data codewords
	check int           // checksum codewords per block
}

// A version describes the codeword structure of a QR version.
type version struct {
	words int // total codewords
	level [4]level
}

// Codewords returns the total number of codewords, data and
// checksum, in a code with version v.
func (v Version) Codewords() int {
	return vtab[v].words
}

// DataCodewords returns the number of data codewords that can be
// stored in a code with version v and level l.
func (v Version) DataCodewords(l Level) int {
	return vtab[v].level[l].data
}

// DataBits returns the number of data bits that can be stored in a
// code with version v and level l.  This is the Finalize budget.
func (v Version) DataBits(l Level) int {
	return v.DataCodewords(l) * 8
}

// BlockGroups returns the Reed-Solomon block group layout for v at
// level l.  The second group may hold zero blocks.
func (v Version) BlockGroups(l Level) [2]BlockGroup {
	return vtab[v].level[l].group
}

// CheckCodewords returns the number of checksum codewords per
// Reed-Solomon block for v at level l.
func (v Version) CheckCodewords(l Level) int {
	return vtab[v].level[l].check
}

// GenPoly returns the Reed-Solomon generator polynomial for v at
// level l as a sequence of coefficients in the GF(256) log domain,
// where 0 denotes the multiplicative identity.  The leading unity
// term comes first; the length is CheckCodewords(l)+1.  The slice is
// shared and must not be modified.
func (v Version) GenPoly(l Level) []byte {
	return genPoly[vtab[v].level[l].check]
}

// Character count field lengths by mode and version size class.
var cciLen = [3][3]byte{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
}

// CCIBits returns the width in bits of the character count field for
// mode m in a code with version v.  The width depends on the version
// size class and the mode, not on the error correction level.
func (v Version) CCIBits(m Mode) int {
	return int(cciLen[m][v.SizeClass()])
}

// FormatInfo returns the 15 bit BCH-encoded format information
// codeword for level l and mask pattern mask (0 to 7), as written
// into the format modules by the placement stage.
func FormatInfo(l Level, mask int) uint16 {
	return ftab[l][mask]
}

// BalancePenalty maps the dark-module percentage metric (0 to 255,
// the percent value after the evaluation transform) to the mask
// penalty for dark/light imbalance.  Values far from 50% converge
// to 255.
func BalancePenalty(pct byte) int {
	return int(balanceTab[pct])
}

// QR code format bits.
var ftab = [4][8]uint16{
	L: {
		0b111011111000100, 0b111001011110011, 0b111110110101010, 0b111100010011101,
		0b110011000101111, 0b110001100011000, 0b110110001000001, 0b110100101110110,
	},
	M: {
		0b101010000010010, 0b101000100100101, 0b101111001111100, 0b101101101001011,
		0b100010111111001, 0b100000011001110, 0b100111110010111, 0b100101010100000,
	},
	Q: {
		0b011010101011111, 0b011000001101000, 0b011111100110001, 0b011101000000110,
		0b010010010110100, 0b010000110000011, 0b010111011011010, 0b010101111101101,
	},
	H: {
		0b001011010001001, 0b001001110111110, 0b001110011100111, 0b001100111010000,
		0b000011101100010, 0b000001001010101, 0b000110100001100, 0b000100000111011,
	},
}

// Generator polynomial coefficients in the GF(256) log domain,
// indexed by checksum codewords per block.  Many version and level
// pairs share one sequence; the degree alone determines it.
var genPoly = [31][]byte{
	7: {0, 87, 229, 146, 149, 238, 102, 21},
	10: {0, 251, 67, 46, 61, 118, 70, 64, 94, 32, 45},
	13: {0, 74, 152, 176, 100, 86, 100, 106, 104, 130, 218, 206, 140, 78},
	15: {0, 8, 183, 61, 91, 202, 37, 51, 58, 58, 237, 140, 124, 5, 99, 105},
	16: {0, 120, 104, 107, 109, 102, 161, 76, 3, 91, 191, 147, 169, 182, 194,
		225, 120},
	17: {0, 43, 139, 206, 78, 43, 239, 123, 206, 214, 147, 24, 99, 150, 39,
		243, 163, 136},
	18: {0, 215, 234, 158, 94, 184, 97, 118, 170, 79, 187, 152, 148, 252, 179,
		5, 98, 96, 153},
	20: {0, 17, 60, 79, 50, 61, 163, 26, 187, 202, 180, 221, 225, 83, 239,
		156, 164, 212, 212, 188, 190},
	22: {0, 210, 171, 247, 242, 93, 230, 14, 109, 221, 53, 200, 74, 8, 172,
		98, 80, 219, 134, 160, 105, 165, 231},
	24: {0, 229, 121, 135, 48, 211, 117, 251, 126, 159, 180, 169, 152, 192,
		226, 228, 218, 111, 0, 117, 232, 87, 96, 227, 21},
	26: {0, 173, 125, 158, 2, 103, 182, 118, 17, 145, 201, 111, 28, 165, 53,
		161, 21, 245, 142, 13, 102, 48, 227, 153, 145, 218, 70},
	28: {0, 168, 223, 200, 104, 224, 234, 108, 180, 110, 190, 195, 147, 205,
		27, 232, 201, 21, 43, 245, 87, 42, 195, 212, 119, 242, 37, 9, 123},
	30: {0, 41, 173, 145, 152, 216, 31, 179, 182, 50, 48, 110, 86, 239, 96,
		222, 125, 42, 173, 226, 193, 224, 130, 156, 37, 251, 216, 238, 40,
		192, 180},
}

// Mask evaluation scores for the dark-module percentage.
var balanceTab = [256]byte{
	90, 90, 90, 90, 90, 80, 80, 80, 80, 80, 70, 70, 70, 70, 70, 60,
	60, 60, 60, 60, 50, 50, 50, 50, 50, 40, 40, 40, 40, 40, 30, 30,
	30, 30, 30, 20, 20, 20, 20, 20, 10, 10, 10, 10, 10, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 10, 10, 10, 10, 10, 20, 20, 20, 20,
	20, 30, 30, 30, 30, 30, 40, 40, 40, 40, 40, 50, 50, 50, 50, 50,
	60, 60, 60, 60, 60, 70, 70, 70, 70, 70, 80, 80, 80, 80, 80, 90,
	90, 90, 90, 90, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
}

// Version table.
var vtab = [MaxVersion + 1]version{
	1: {26, [4]level{
		{[2]BlockGroup{{1, 19}, {}}, 19, 7},
		{[2]BlockGroup{{1, 16}, {}}, 16, 10},
		{[2]BlockGroup{{1, 13}, {}}, 13, 13},
		{[2]BlockGroup{{1, 9}, {}}, 9, 17},
	}},
	2: {44, [4]level{
		{[2]BlockGroup{{1, 34}, {}}, 34, 10},
		{[2]BlockGroup{{1, 28}, {}}, 28, 16},
		{[2]BlockGroup{{1, 22}, {}}, 22, 22},
		{[2]BlockGroup{{1, 16}, {}}, 16, 28},
	}},
	3: {70, [4]level{
		{[2]BlockGroup{{1, 55}, {}}, 55, 15},
		{[2]BlockGroup{{1, 44}, {}}, 44, 26},
		{[2]BlockGroup{{2, 17}, {}}, 34, 18},
		{[2]BlockGroup{{2, 13}, {}}, 26, 22},
	}},
	4: {100, [4]level{
		{[2]BlockGroup{{1, 80}, {}}, 80, 20},
		{[2]BlockGroup{{2, 32}, {}}, 64, 18},
		{[2]BlockGroup{{2, 24}, {}}, 48, 26},
		{[2]BlockGroup{{4, 9}, {}}, 36, 16},
	}},
	5: {134, [4]level{
		{[2]BlockGroup{{1, 108}, {}}, 108, 26},
		{[2]BlockGroup{{2, 43}, {}}, 86, 24},
		{[2]BlockGroup{{2, 15}, {2, 16}}, 62, 18},
		{[2]BlockGroup{{2, 11}, {2, 12}}, 46, 22},
	}},
	6: {172, [4]level{
		{[2]BlockGroup{{2, 68}, {}}, 136, 18},
		{[2]BlockGroup{{4, 27}, {}}, 108, 16},
		{[2]BlockGroup{{4, 19}, {}}, 76, 24},
		{[2]BlockGroup{{4, 15}, {}}, 60, 28},
	}},
	7: {196, [4]level{
		{[2]BlockGroup{{2, 78}, {}}, 156, 20},
		{[2]BlockGroup{{4, 31}, {}}, 124, 18},
		{[2]BlockGroup{{2, 14}, {4, 15}}, 88, 18},
		{[2]BlockGroup{{4, 13}, {1, 14}}, 66, 26},
	}},
	8: {242, [4]level{
		{[2]BlockGroup{{2, 97}, {}}, 194, 24},
		{[2]BlockGroup{{2, 38}, {2, 39}}, 154, 22},
		{[2]BlockGroup{{4, 18}, {2, 19}}, 110, 22},
		{[2]BlockGroup{{4, 14}, {2, 15}}, 86, 26},
	}},
	9: {292, [4]level{
		{[2]BlockGroup{{2, 116}, {}}, 232, 30},
		{[2]BlockGroup{{3, 36}, {2, 37}}, 182, 22},
		{[2]BlockGroup{{4, 16}, {4, 17}}, 132, 20},
		{[2]BlockGroup{{4, 12}, {4, 13}}, 100, 24},
	}},
	10: {346, [4]level{
		{[2]BlockGroup{{2, 68}, {2, 69}}, 274, 18},
		{[2]BlockGroup{{4, 43}, {1, 44}}, 216, 26},
		{[2]BlockGroup{{6, 19}, {2, 20}}, 154, 24},
		{[2]BlockGroup{{6, 15}, {2, 16}}, 122, 28},
	}},
	11: {404, [4]level{
		{[2]BlockGroup{{4, 81}, {}}, 324, 20},
		{[2]BlockGroup{{1, 50}, {4, 51}}, 254, 30},
		{[2]BlockGroup{{4, 22}, {4, 23}}, 180, 28},
		{[2]BlockGroup{{3, 12}, {8, 13}}, 140, 24},
	}},
	12: {466, [4]level{
		{[2]BlockGroup{{2, 92}, {2, 93}}, 370, 24},
		{[2]BlockGroup{{6, 36}, {2, 37}}, 290, 22},
		{[2]BlockGroup{{4, 20}, {6, 21}}, 206, 26},
		{[2]BlockGroup{{7, 14}, {4, 15}}, 158, 28},
	}},
	13: {532, [4]level{
		{[2]BlockGroup{{4, 107}, {}}, 428, 26},
		{[2]BlockGroup{{8, 37}, {1, 38}}, 334, 22},
		{[2]BlockGroup{{8, 20}, {4, 21}}, 244, 24},
		{[2]BlockGroup{{12, 11}, {4, 12}}, 180, 22},
	}},
	14: {581, [4]level{
		{[2]BlockGroup{{3, 115}, {1, 116}}, 461, 30},
		{[2]BlockGroup{{4, 40}, {5, 41}}, 365, 24},
		{[2]BlockGroup{{11, 16}, {5, 17}}, 261, 20},
		{[2]BlockGroup{{11, 12}, {5, 13}}, 197, 24},
	}},
	15: {655, [4]level{
		{[2]BlockGroup{{5, 87}, {1, 88}}, 523, 22},
		{[2]BlockGroup{{5, 41}, {5, 42}}, 415, 24},
		{[2]BlockGroup{{5, 24}, {7, 25}}, 295, 30},
		{[2]BlockGroup{{11, 12}, {7, 13}}, 223, 24},
	}},
	16: {733, [4]level{
		{[2]BlockGroup{{5, 98}, {1, 99}}, 589, 24},
		{[2]BlockGroup{{7, 45}, {3, 46}}, 453, 28},
		{[2]BlockGroup{{15, 19}, {2, 20}}, 325, 24},
		{[2]BlockGroup{{3, 15}, {13, 16}}, 253, 30},
	}},
	17: {815, [4]level{
		{[2]BlockGroup{{1, 107}, {5, 108}}, 647, 28},
		{[2]BlockGroup{{10, 46}, {1, 47}}, 507, 28},
		{[2]BlockGroup{{1, 22}, {15, 23}}, 367, 28},
		{[2]BlockGroup{{2, 14}, {17, 15}}, 283, 28},
	}},
	18: {901, [4]level{
		{[2]BlockGroup{{5, 120}, {1, 121}}, 721, 30},
		{[2]BlockGroup{{9, 43}, {4, 44}}, 563, 26},
		{[2]BlockGroup{{17, 22}, {1, 23}}, 397, 28},
		{[2]BlockGroup{{2, 14}, {19, 15}}, 313, 28},
	}},
	19: {991, [4]level{
		{[2]BlockGroup{{3, 113}, {4, 114}}, 795, 28},
		{[2]BlockGroup{{3, 44}, {11, 45}}, 627, 26},
		{[2]BlockGroup{{17, 21}, {4, 22}}, 445, 26},
		{[2]BlockGroup{{9, 13}, {16, 14}}, 341, 26},
	}},
	20: {1085, [4]level{
		{[2]BlockGroup{{3, 107}, {5, 108}}, 861, 28},
		{[2]BlockGroup{{3, 41}, {13, 42}}, 669, 26},
		{[2]BlockGroup{{15, 24}, {5, 25}}, 485, 30},
		{[2]BlockGroup{{15, 15}, {10, 16}}, 385, 28},
	}},
	21: {1156, [4]level{
		{[2]BlockGroup{{4, 116}, {4, 117}}, 932, 28},
		{[2]BlockGroup{{17, 42}, {}}, 714, 26},
		{[2]BlockGroup{{17, 22}, {6, 23}}, 512, 28},
		{[2]BlockGroup{{19, 16}, {6, 17}}, 406, 30},
	}},
	22: {1258, [4]level{
		{[2]BlockGroup{{2, 111}, {7, 112}}, 1006, 28},
		{[2]BlockGroup{{17, 46}, {}}, 782, 28},
		{[2]BlockGroup{{7, 24}, {16, 25}}, 568, 30},
		{[2]BlockGroup{{34, 13}, {}}, 442, 24},
	}},
	23: {1364, [4]level{
		{[2]BlockGroup{{4, 121}, {5, 122}}, 1094, 30},
		{[2]BlockGroup{{4, 47}, {14, 48}}, 860, 28},
		{[2]BlockGroup{{11, 24}, {14, 25}}, 614, 30},
		{[2]BlockGroup{{16, 15}, {14, 16}}, 464, 30},
	}},
	24: {1474, [4]level{
		{[2]BlockGroup{{6, 117}, {4, 118}}, 1174, 30},
		{[2]BlockGroup{{6, 45}, {14, 46}}, 914, 28},
		{[2]BlockGroup{{11, 24}, {16, 25}}, 664, 30},
		{[2]BlockGroup{{30, 16}, {2, 17}}, 514, 30},
	}},
	25: {1588, [4]level{
		{[2]BlockGroup{{8, 106}, {4, 107}}, 1276, 26},
		{[2]BlockGroup{{8, 47}, {13, 48}}, 1000, 28},
		{[2]BlockGroup{{7, 24}, {22, 25}}, 718, 30},
		{[2]BlockGroup{{22, 15}, {13, 16}}, 538, 30},
	}},
	26: {1706, [4]level{
		{[2]BlockGroup{{10, 114}, {2, 115}}, 1370, 28},
		{[2]BlockGroup{{19, 46}, {4, 47}}, 1062, 28},
		{[2]BlockGroup{{28, 22}, {6, 23}}, 754, 28},
		{[2]BlockGroup{{33, 16}, {4, 17}}, 596, 30},
	}},
	27: {1828, [4]level{
		{[2]BlockGroup{{8, 122}, {4, 123}}, 1468, 30},
		{[2]BlockGroup{{22, 45}, {3, 46}}, 1128, 28},
		{[2]BlockGroup{{8, 23}, {26, 24}}, 808, 30},
		{[2]BlockGroup{{12, 15}, {28, 16}}, 628, 30},
	}},
	28: {1921, [4]level{
		{[2]BlockGroup{{3, 117}, {10, 118}}, 1531, 30},
		{[2]BlockGroup{{3, 45}, {23, 46}}, 1193, 28},
		{[2]BlockGroup{{4, 24}, {31, 25}}, 871, 30},
		{[2]BlockGroup{{11, 15}, {31, 16}}, 661, 30},
	}},
	29: {2051, [4]level{
		{[2]BlockGroup{{7, 116}, {7, 117}}, 1631, 30},
		{[2]BlockGroup{{21, 45}, {7, 46}}, 1267, 28},
		{[2]BlockGroup{{1, 23}, {37, 24}}, 911, 30},
		{[2]BlockGroup{{19, 15}, {26, 16}}, 701, 30},
	}},
	30: {2185, [4]level{
		{[2]BlockGroup{{5, 115}, {10, 116}}, 1735, 30},
		{[2]BlockGroup{{19, 47}, {10, 48}}, 1373, 28},
		{[2]BlockGroup{{15, 24}, {25, 25}}, 985, 30},
		{[2]BlockGroup{{23, 15}, {25, 16}}, 745, 30},
	}},
	31: {2323, [4]level{
		{[2]BlockGroup{{13, 115}, {3, 116}}, 1843, 30},
		{[2]BlockGroup{{2, 46}, {29, 47}}, 1455, 28},
		{[2]BlockGroup{{42, 24}, {1, 25}}, 1033, 30},
		{[2]BlockGroup{{23, 15}, {28, 16}}, 793, 30},
	}},
	32: {2465, [4]level{
		{[2]BlockGroup{{17, 115}, {}}, 1955, 30},
		{[2]BlockGroup{{10, 46}, {23, 47}}, 1541, 28},
		{[2]BlockGroup{{10, 24}, {35, 25}}, 1115, 30},
		{[2]BlockGroup{{19, 15}, {35, 16}}, 845, 30},
	}},
	33: {2611, [4]level{
		{[2]BlockGroup{{17, 115}, {1, 116}}, 2071, 30},
		{[2]BlockGroup{{14, 46}, {21, 47}}, 1631, 28},
		{[2]BlockGroup{{29, 24}, {19, 25}}, 1171, 30},
		{[2]BlockGroup{{11, 15}, {46, 16}}, 901, 30},
	}},
	34: {2761, [4]level{
		{[2]BlockGroup{{13, 115}, {6, 116}}, 2191, 30},
		{[2]BlockGroup{{14, 46}, {23, 47}}, 1725, 28},
		{[2]BlockGroup{{44, 24}, {7, 25}}, 1231, 30},
		{[2]BlockGroup{{59, 16}, {1, 17}}, 961, 30},
	}},
	35: {2876, [4]level{
		{[2]BlockGroup{{12, 121}, {7, 122}}, 2306, 30},
		{[2]BlockGroup{{12, 47}, {26, 48}}, 1812, 28},
		{[2]BlockGroup{{39, 24}, {14, 25}}, 1286, 30},
		{[2]BlockGroup{{22, 15}, {41, 16}}, 986, 30},
	}},
	36: {3034, [4]level{
		{[2]BlockGroup{{6, 121}, {14, 122}}, 2434, 30},
		{[2]BlockGroup{{6, 47}, {34, 48}}, 1914, 28},
		{[2]BlockGroup{{46, 24}, {10, 25}}, 1354, 30},
		{[2]BlockGroup{{2, 15}, {64, 16}}, 1054, 30},
	}},
	37: {3196, [4]level{
		{[2]BlockGroup{{17, 122}, {4, 123}}, 2566, 30},
		{[2]BlockGroup{{29, 46}, {14, 47}}, 1992, 28},
		{[2]BlockGroup{{49, 24}, {10, 25}}, 1426, 30},
		{[2]BlockGroup{{24, 15}, {46, 16}}, 1096, 30},
	}},
	38: {3362, [4]level{
		{[2]BlockGroup{{4, 122}, {18, 123}}, 2702, 30},
		{[2]BlockGroup{{13, 46}, {32, 47}}, 2102, 28},
		{[2]BlockGroup{{48, 24}, {14, 25}}, 1502, 30},
		{[2]BlockGroup{{42, 15}, {32, 16}}, 1142, 30},
	}},
	39: {3532, [4]level{
		{[2]BlockGroup{{20, 117}, {4, 118}}, 2812, 30},
		{[2]BlockGroup{{40, 47}, {7, 48}}, 2216, 28},
		{[2]BlockGroup{{43, 24}, {22, 25}}, 1582, 30},
		{[2]BlockGroup{{10, 15}, {67, 16}}, 1222, 30},
	}},
	40: {3706, [4]level{
		{[2]BlockGroup{{19, 118}, {6, 119}}, 2956, 30},
		{[2]BlockGroup{{18, 47}, {31, 48}}, 2334, 28},
		{[2]BlockGroup{{34, 24}, {34, 25}}, 1666, 30},
		{[2]BlockGroup{{20, 15}, {61, 16}}, 1276, 30},
	}},
}
