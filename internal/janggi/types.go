package janggi

type Side int8

const (
	NoSide Side = -1
	Han    Side = 0 // 汉（빨강）：下方 row 9 一侧，FEN 大写，引擎记号 w
	Cho    Side = 1 // 楚（초록）：上方 row 0 一侧，FEN 小写，引擎记号 b
)

func (s Side) String() string {
	switch s {
	case Han:
		return "Han"
	case Cho:
		return "Cho"
	}
	return "NoSide"
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceRook               // 车 (차)
	PieceHorse              // 马 (마)
	PieceElephant           // 象 (상)
	PieceGuard              // 士 (사)
	PieceGeneral            // 将 (궁)
	PieceCannon             // 包 (포)
	PieceSoldier            // 卒 (졸/병)
)

// 子力分值：只用于记分显示，和走法合法性无关。
var pieceValues = [...]int{
	PieceNone:     0,
	PieceRook:     13,
	PieceHorse:    5,
	PieceElephant: 3,
	PieceGuard:    3,
	PieceGeneral:  0,
	PieceCannon:   7,
	PieceSoldier:  2,
}

func (pt PieceType) Value() int {
	if pt < 0 || int(pt) >= len(pieceValues) {
		return 0
	}
	return pieceValues[pt]
}

type Piece int8 // 0=空；>0 汉；<0 楚；abs=PieceType

func makePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Han {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Han
	}
	return Cho
}

type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}
