package bind

import "goFrame/internal/frame"

// numericRank orders the numeric chain logical < integer < double.
var numericRank = map[frame.Kind]int{
	frame.KindLogical: 0,
	frame.KindInteger: 1,
	frame.KindDouble:  2,
}

// Join returns the narrowest type able to represent values of both a and b.
// The second result is false when no such type exists.
//
// Edges:
//
//	logical < integer < double
//	factor(L1) ⊔ factor(L2) = character   (L1 != L2)
//	factor ⊔ character     = character
//
// Opaque types only join with themselves. Numeric kinds never join with
// character or factor.
func Join(a, b frame.Type) (frame.Type, bool) {
	if a.Equal(b) {
		return a, true
	}
	ra, aNum := numericRank[a.Kind]
	rb, bNum := numericRank[b.Kind]
	switch {
	case aNum && bNum:
		if ra >= rb {
			return a, true
		}
		return b, true
	case isText(a.Kind) && isText(b.Kind):
		return frame.Character, true
	default:
		return frame.Type{}, false
	}
}

func isText(k frame.Kind) bool {
	return k == frame.KindCharacter || k == frame.KindFactor
}
