package janggi

// IsLegal 判断 side 一方把 from 的子走到 to 是否合法。
// 这是一个对所有坐标对都封闭的谓词：越界、原地、拿错子、吃自己子
// 一律返回 false，不产生错误。
func IsLegal(b *Board, from, to int, side Side) bool {
	if from < 0 || from >= NumSquares || to < 0 || to >= NumSquares {
		return false
	}
	if from == to {
		return false
	}
	pc := b.Squares[from]
	if pc == 0 || pc.Side() != side {
		return false
	}
	dst := b.Squares[to]
	if dst != 0 && dst.Side() == side {
		return false
	}

	switch pc.Type() {
	case PieceRook:
		return rookLegal(b, from, to)
	case PieceCannon:
		return cannonLegal(b, from, to)
	case PieceHorse:
		return horseLegal(b, from, to)
	case PieceElephant:
		return elephantLegal(b, from, to)
	case PieceGuard, PieceGeneral:
		return palaceLegal(from, to, side)
	case PieceSoldier:
		return soldierLegal(from, to, side)
	}
	return false
}

// LegalDestinations 穷举 90 格、逐格过 IsLegal，给选子高亮用。
// 每次选子现算，不做缓存。
func LegalDestinations(b *Board, from int, side Side) []int {
	var out []int
	for to := 0; to < NumSquares; to++ {
		if IsLegal(b, from, to, side) {
			out = append(out, to)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return +1
	case v < 0:
		return -1
	}
	return 0
}
