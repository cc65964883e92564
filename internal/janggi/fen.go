package janggi

import (
	"errors"
	"strings"
	"unicode"
)

// 引擎用的局面交换行：十个 rank 字段（row 0..9 从上到下）用“/”隔开，
// 连续空位压成十进制数字；后面跟 w/b、两个占位字段和两个固定计数，
// 这个接入里王车易位/半步钟都没有意义，全部给常量。
func Encode(b *Board, sideToMove Side) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.Squares[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if sideToMove == Han {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

var (
	ErrInvalidFEN       = errors.New("invalid FEN")
	ErrInvalidMoveToken = errors.New("invalid move token")
)

// DecodePosition 是 Encode 的逆：只看棋盘块和先后手字段，
// 后面的占位字段有没有都无所谓。
func DecodePosition(fen string) (Board, Side, error) {
	var b Board
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return b, NoSide, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return b, NoSide, ErrInvalidFEN
	}
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return b, NoSide, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return b, NoSide, ErrInvalidFEN
			}
			side := Cho
			if unicode.IsUpper(ch) {
				side = Han
			}
			b.Squares[indexOf(r, c)] = makePiece(side, pt)
			c++
		}
		if c != Cols {
			return b, NoSide, ErrInvalidFEN
		}
	}
	stm := Cho
	if parts[1] == "w" {
		stm = Han
	} else if parts[1] != "b" {
		return b, NoSide, ErrInvalidFEN
	}
	return b, stm, nil
}

// DecodeMove 解析引擎着法记号：恰好 4 个字符 [a-i][0-9][a-i][0-9]。
// 引擎的 rank 0 在棋盘底边（本模型 row 9），所以 row = 9 - digit。
func DecodeMove(token string) (Move, error) {
	if len(token) != 4 {
		return Move{}, ErrInvalidMoveToken
	}
	sq := func(file, rank byte) (int, bool) {
		if file < 'a' || file > 'i' || rank < '0' || rank > '9' {
			return 0, false
		}
		return indexOf(Rows-1-int(rank-'0'), int(file-'a')), true
	}
	from, ok := sq(token[0], token[1])
	if !ok {
		return Move{}, ErrInvalidMoveToken
	}
	to, ok := sq(token[2], token[3])
	if !ok {
		return Move{}, ErrInvalidMoveToken
	}
	return Move{From: from, To: to}, nil
}

// EncodeMove 是 DecodeMove 的逆，给日志和前端推送用。
func EncodeMove(m Move) string {
	sq := func(idx int) [2]byte {
		return [2]byte{
			byte('a' + colOf(idx)),
			byte('0' + (Rows - 1 - rowOf(idx))),
		}
	}
	f, t := sq(m.From), sq(m.To)
	return string([]byte{f[0], f[1], t[0], t[1]})
}
