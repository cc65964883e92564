package janggi

// 车 / 包 共用的直线几何。

// sliderStep 返回 from->to 的单位步长。只有横、竖、以及“九宫内
// 等步数斜线”三种形态有效，其余返回 ok=false。
func sliderStep(from, to int) (dr, dc int, ok bool) {
	fr, fc := rowOf(from), colOf(from)
	tr, tc := rowOf(to), colOf(to)

	switch {
	case fr == tr:
		return 0, sign(tc - fc), true
	case fc == tc:
		return sign(tr - fr), 0, true
	case abs(tr-fr) == abs(tc-fc) && samePalace(from, to) != NoSide:
		return sign(tr - fr), sign(tc - fc), true
	}
	return 0, 0, false
}

// countBetween 统计 from 与 to 之间（两端都不含）的占用格数。
// 顺便报告夹在中间的子里有没有包。
func countBetween(b *Board, from, to, dr, dc int) (n int, hasCannon bool) {
	r, c := rowOf(from)+dr, colOf(from)+dc
	for indexOf(r, c) != to {
		pc := b.Squares[indexOf(r, c)]
		if pc != 0 {
			n++
			if pc.Type() == PieceCannon {
				hasCannon = true
			}
		}
		r += dr
		c += dc
	}
	return n, hasCannon
}

// 车：横竖任意远，中间不能有子；在同一方九宫里还可以沿斜线走。
func rookLegal(b *Board, from, to int) bool {
	dr, dc, ok := sliderStep(from, to)
	if !ok {
		return false
	}
	n, _ := countBetween(b, from, to, dr, dc)
	return n == 0
}

// 包：必须隔恰好一个炮架才能动（不是可选项），炮架不能是包，
// 也不能落在包上面。线路形态与车相同（含九宫斜线）。
func cannonLegal(b *Board, from, to int) bool {
	if b.Squares[to].Type() == PieceCannon {
		return false
	}
	dr, dc, ok := sliderStep(from, to)
	if !ok {
		return false
	}
	n, hasCannon := countBetween(b, from, to, dr, dc)
	return n == 1 && !hasCannon
}
