package janggi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func opposite(side Side) Side {
	if side == Han {
		return Cho
	}
	if side == Cho {
		return Han
	}
	return NoSide
}

// 兵的前进方向：楚在上方向下(+1)，汉在下方向上(-1)
func forwardDir(side Side) int {
	if side == Han {
		return -1
	}
	if side == Cho {
		return +1
	}
	return 0
}

// 是否在九宫（3..5 列；楚 0..2 行，汉 7..9 行）
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Cho {
		return row >= 0 && row <= 2
	}
	if side == Han {
		return row >= Rows-3 && row <= Rows-1
	}
	return false
}

// 九宫中心格
func palaceCenter(side Side) int {
	if side == Cho {
		return indexOf(1, 4)
	}
	return indexOf(8, 4)
}

// 两个格子同时落在哪一方的九宫里；都不满足返回 NoSide
func samePalace(from, to int) Side {
	for _, side := range [2]Side{Han, Cho} {
		if inPalace(side, rowOf(from), colOf(from)) && inPalace(side, rowOf(to), colOf(to)) {
			return side
		}
	}
	return NoSide
}

var letterToPieceType = map[rune]PieceType{
	'r': PieceRook,     // 车 chariot
	'n': PieceHorse,    // 马 horse
	'b': PieceElephant, // 象 elephant
	'a': PieceGuard,    // 士 advisor
	'k': PieceGeneral,  // 将 general
	'c': PieceCannon,   // 包 cannon
	'p': PieceSoldier,  // 卒 soldier
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	pt := p.Type()
	var base rune
	for k, v := range letterToPieceType {
		if v == pt {
			base = k
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if p.Side() == Han {
		return unicode.ToUpper(base)
	}
	return base
}

type Board struct {
	Squares [NumSquares]Piece
}

// Setup 开局布阵：内侧四个非边线子（1,2,6,7 路）的马/象排布，共四种
type Setup int8

const (
	SetupInnerElephant Setup = iota // 마상상마（원앙마）
	SetupOuterElephant              // 상마마상（양귀마）
	SetupLeftElephant               // 상마상마（귀마）
	SetupRightElephant              // 마상마상（맞상）
)

var setupFiles = [4][4]PieceType{
	SetupInnerElephant: {PieceHorse, PieceElephant, PieceElephant, PieceHorse},
	SetupOuterElephant: {PieceElephant, PieceHorse, PieceHorse, PieceElephant},
	SetupLeftElephant:  {PieceElephant, PieceHorse, PieceElephant, PieceHorse},
	SetupRightElephant: {PieceHorse, PieceElephant, PieceHorse, PieceElephant},
}

func (s Setup) valid() bool { return s >= 0 && int(s) < len(setupFiles) }

// NewBoard 按两方各自选定的布阵铺满全部 90 格。
// 边线永远是车，士将位置固定不可配置（士 3/5 路，将在九宫中心）。
func NewBoard(han, cho Setup) Board {
	if !han.valid() {
		han = SetupInnerElephant
	}
	if !cho.valid() {
		cho = SetupInnerElephant
	}

	var b Board
	place := func(side Side, setup Setup) {
		home := 0
		if side == Han {
			home = Rows - 1
		}
		dir := forwardDir(side)

		b.Squares[indexOf(home, 0)] = makePiece(side, PieceRook)
		b.Squares[indexOf(home, 8)] = makePiece(side, PieceRook)
		files := setupFiles[setup]
		for i, col := range [4]int{1, 2, 6, 7} {
			b.Squares[indexOf(home, col)] = makePiece(side, files[i])
		}
		b.Squares[indexOf(home, 3)] = makePiece(side, PieceGuard)
		b.Squares[indexOf(home, 5)] = makePiece(side, PieceGuard)
		b.Squares[palaceCenter(side)] = makePiece(side, PieceGeneral)

		cannonRow := home + 2*dir
		b.Squares[indexOf(cannonRow, 1)] = makePiece(side, PieceCannon)
		b.Squares[indexOf(cannonRow, 7)] = makePiece(side, PieceCannon)

		soldierRow := home + 3*dir
		for _, col := range [5]int{0, 2, 4, 6, 8} {
			b.Squares[indexOf(soldierRow, col)] = makePiece(side, PieceSoldier)
		}
	}
	place(Cho, cho)
	place(Han, han)
	return b
}

// MaterialScore 统计 side 一方在盘面上的子力总分。
func MaterialScore(b *Board, side Side) int {
	total := 0
	for _, pc := range b.Squares {
		if pc != 0 && pc.Side() == side {
			total += pc.Type().Value()
		}
	}
	return total
}

// String 调试用的棋盘文本（row 0 在最上面）。
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteRune(pieceToChar(b.Squares[indexOf(r, c)]))
		}
		if r < Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
