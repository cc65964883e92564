package janggi

// 士 / 将：终点必须在本方九宫内。横竖一步随便走；
// 斜走一步只允许走“角-中心”连线，即起点或终点得是九宫中心。
func palaceLegal(from, to int, side Side) bool {
	if !inPalace(side, rowOf(to), colOf(to)) {
		return false
	}
	dr := abs(rowOf(to) - rowOf(from))
	dc := abs(colOf(to) - colOf(from))

	if dr+dc == 1 {
		return true
	}
	if dr == 1 && dc == 1 {
		center := palaceCenter(side)
		return from == center || to == center
	}
	return false
}
