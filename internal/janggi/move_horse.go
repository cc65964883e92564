package janggi

// 马：日字跳，只看长轴方向贴着起点的那一格（马腿）。
func horseLegal(b *Board, from, to int) bool {
	fr, fc := rowOf(from), colOf(from)
	dr, dc := rowOf(to)-fr, colOf(to)-fc
	adr, adc := abs(dr), abs(dc)

	if !(adr == 1 && adc == 2 || adr == 2 && adc == 1) {
		return false
	}

	var lr, lc int
	if adr == 2 {
		lr, lc = fr+sign(dr), fc
	} else {
		lr, lc = fr, fc+sign(dc)
	}
	return b.Squares[indexOf(lr, lc)] == 0
}

// 象：用字跳（2,3 或 3,2）。两个象腿：先沿长轴一步，再走对角
// 继续一步，两格都必须是空。只查这两格，不查整条出租车路径。
func elephantLegal(b *Board, from, to int) bool {
	fr, fc := rowOf(from), colOf(from)
	dr, dc := rowOf(to)-fr, colOf(to)-fc
	adr, adc := abs(dr), abs(dc)

	if !(adr == 2 && adc == 3 || adr == 3 && adc == 2) {
		return false
	}

	sr, sc := sign(dr), sign(dc)
	var leg1, leg2 int
	if adr == 3 {
		leg1 = indexOf(fr+sr, fc)
		leg2 = indexOf(fr+2*sr, fc+sc)
	} else {
		leg1 = indexOf(fr, fc+sc)
		leg2 = indexOf(fr+sr, fc+2*sc)
	}
	return b.Squares[leg1] == 0 && b.Squares[leg2] == 0
}
