package tables

// DistanceModifier is the bit-exact step function of spec.md §6, keyed
// by a finite hex distance (or the apsp.Infinity sentinel, which falls
// into the final ">= 1000" bucket along with any other huge value):
//
//	d=0,1 -> 0.0; 2 -> 0.5; 3..5 -> 1.0; 6..9 -> 1.5; 10..19 -> 2.0;
//	20..29 -> 2.5; 30..59 -> 3.0; 60..99 -> 3.5; 100..199 -> 4.0;
//	200..299 -> 4.5; 300..599 -> 5.0; 600..999 -> 5.5; >=1000 -> 6.0.
func DistanceModifier(d int32) float64 {
	switch {
	case d <= 1:
		return 0.0
	case d == 2:
		return 0.5
	case d <= 5:
		return 1.0
	case d <= 9:
		return 1.5
	case d <= 19:
		return 2.0
	case d <= 29:
		return 2.5
	case d <= 59:
		return 3.0
	case d <= 99:
		return 3.5
	case d <= 199:
		return 4.0
	case d <= 299:
		return 4.5
	case d <= 599:
		return 5.0
	case d <= 999:
		return 5.5
	default:
		return 6.0
	}
}
