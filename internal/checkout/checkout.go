// Package checkout suggests finishing routes for x01 legs.
//
// A leg must end on a double (2-40 even, or the 50 bull), so only
// scores from 2 to 170 are finishable within a three dart turn, minus
// the seven bogey numbers no combination can reach. Suggestions come
// from a fixed table of standard finishes rather than a search, so a
// lookup is safe to run on every turn.
package checkout

// Bogey numbers: scores under 170 that cannot be finished in three
// darts ending on a double.
var bogeyNumbers = map[int]bool{
	169: true,
	168: true,
	166: true,
	165: true,
	163: true,
	162: true,
	159: true,
}

// routes maps a remaining score to the dart values of its standard
// finish. The last value is always a double (or the 50 bull).
var routes = map[int][]int{
	170: {60, 60, 50},
	167: {60, 57, 50},
	164: {60, 54, 50},
	161: {60, 51, 50},
	160: {60, 60, 40},
	158: {60, 60, 38},
	157: {60, 57, 40},
	156: {60, 60, 36},
	155: {60, 57, 38},
	154: {60, 54, 40},
	153: {60, 57, 36},
	152: {60, 60, 32},
	151: {60, 51, 40},
	150: {60, 54, 36},
	149: {60, 57, 32},
	148: {60, 48, 40},
	147: {60, 51, 36},
	146: {60, 54, 32},
	145: {60, 45, 40},
	144: {60, 60, 24},
	143: {60, 51, 32},
	142: {60, 42, 40},
	141: {60, 57, 24},
	140: {60, 60, 20},
	139: {60, 39, 40},
	138: {60, 54, 24},
	137: {60, 57, 20},
	136: {60, 60, 16},
	135: {60, 51, 24},
	134: {60, 42, 32},
	133: {60, 57, 16},
	132: {60, 48, 24},
	131: {60, 39, 32},
	130: {60, 54, 16},
	129: {57, 48, 24},
	128: {54, 42, 32},
	127: {60, 51, 16},
	126: {57, 57, 12},
	125: {25, 60, 40},
	124: {60, 48, 16},
	123: {57, 48, 18},
	122: {54, 54, 14},
	121: {60, 45, 16},
	120: {60, 20, 40},
	119: {57, 36, 26},
	118: {60, 18, 40},
	117: {60, 17, 40},
	116: {60, 16, 40},
	115: {60, 15, 40},
	114: {60, 14, 40},
	113: {60, 13, 40},
	112: {60, 12, 40},
	111: {60, 11, 40},
	110: {60, 50},
	109: {60, 9, 40},
	108: {60, 8, 40},
	107: {57, 50},
	106: {60, 6, 40},
	105: {60, 5, 40},
	104: {54, 50},
	103: {57, 6, 40},
	102: {60, 10, 32},
	101: {51, 50},
	100: {60, 40},
	99:  {57, 10, 32},
	98:  {60, 38},
	97:  {57, 40},
	96:  {60, 36},
	95:  {57, 38},
	94:  {54, 40},
	93:  {57, 36},
	92:  {60, 32},
	91:  {51, 40},
	90:  {54, 36},
	89:  {57, 32},
	88:  {48, 40},
	87:  {51, 36},
	86:  {54, 32},
	85:  {45, 40},
	84:  {60, 24},
	83:  {51, 32},
	82:  {42, 40},
	81:  {57, 24},
	80:  {60, 20},
	79:  {39, 40},
	78:  {54, 24},
	77:  {57, 20},
	76:  {60, 16},
	75:  {51, 24},
	74:  {42, 32},
	73:  {57, 16},
	72:  {48, 24},
	71:  {39, 32},
	70:  {54, 16},
	69:  {57, 12},
	68:  {60, 8},
	67:  {51, 16},
	66:  {30, 36},
	65:  {57, 8},
	64:  {48, 16},
	63:  {39, 24},
	62:  {30, 32},
	61:  {25, 36},
	60:  {20, 40},
	59:  {19, 40},
	58:  {18, 40},
	57:  {17, 40},
	56:  {16, 40},
	55:  {15, 40},
	54:  {14, 40},
	53:  {13, 40},
	52:  {12, 40},
	51:  {11, 40},
	50:  {50},
	49:  {9, 40},
	48:  {16, 32},
	47:  {15, 32},
	46:  {6, 40},
	45:  {13, 32},
	44:  {12, 32},
	43:  {11, 32},
	42:  {10, 32},
	41:  {9, 32},
	40:  {40},
	39:  {7, 32},
	38:  {38},
	37:  {5, 32},
	36:  {36},
	35:  {3, 32},
	34:  {34},
	33:  {1, 32},
	32:  {32},
	31:  {15, 16},
	30:  {30},
	29:  {13, 16},
	28:  {28},
	27:  {11, 16},
	26:  {26},
	25:  {9, 16},
	24:  {24},
	23:  {7, 16},
	22:  {22},
	21:  {5, 16},
	20:  {20},
	19:  {3, 16},
	18:  {18},
	17:  {1, 16},
	16:  {16},
	15:  {7, 8},
	14:  {14},
	13:  {5, 8},
	12:  {12},
	11:  {3, 8},
	10:  {10},
	9:   {1, 8},
	8:   {8},
	7:   {3, 4},
	6:   {6},
	5:   {1, 4},
	4:   {4},
	3:   {1, 2},
	2:   {2},
}

// Suggest returns the standard finishing route for a remaining score,
// or nil when the score cannot be checked out within three darts. The
// returned slice is a copy and safe for the caller to hold.
func Suggest(remaining int) []int {
	route, ok := routes[remaining]
	if !ok {
		return nil
	}

	out := make([]int, len(route))
	copy(out, route)
	return out
}

// Finishable reports whether a score can be checked out in three
// darts or fewer
func Finishable(remaining int) bool {
	_, ok := routes[remaining]
	return ok
}

// Bogey reports whether a score below the three dart maximum is still
// impossible to finish
func Bogey(remaining int) bool {
	return bogeyNumbers[remaining]
}

// ValidDouble reports whether a single dart value is a legal final
// dart for a checkout
func ValidDouble(value int) bool {
	if value == 50 {
		return true
	}
	return value >= 2 && value <= 40 && value%2 == 0
}
