package janggi

// 卒：一步走，向前或左右平移，永远不准后退。
// 斜走只有一种例外：起点终点都在本方九宫里，且斜的方向是向前。
func soldierLegal(from, to int, side Side) bool {
	fr, fc := rowOf(from), colOf(from)
	dr, dc := rowOf(to)-fr, colOf(to)-fc
	dir := forwardDir(side)

	if abs(dr) == 1 && abs(dc) == 1 {
		if dr != dir {
			return false
		}
		return inPalace(side, fr, fc) && inPalace(side, rowOf(to), colOf(to))
	}

	if abs(dr)+abs(dc) != 1 {
		return false
	}
	// 后退：楚不准减行，汉不准增行
	if dr != 0 && dr != dir {
		return false
	}
	return true
}
