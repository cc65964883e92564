package janggi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEncodeInitialPosition(t *testing.T) {
	b := NewBoard(SetupInnerElephant, SetupInnerElephant)
	want := "rnba1abnr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBA1ABNR b - - 0 1"
	require.Equal(t, want, Encode(&b, Cho))

	// 先后手记号
	wantHan := want[:len(want)-len("b - - 0 1")] + "w - - 0 1"
	require.Equal(t, wantHan, Encode(&b, Han))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	setups := []Setup{SetupInnerElephant, SetupOuterElephant, SetupLeftElephant, SetupRightElephant}
	for _, han := range setups {
		for _, cho := range setups {
			b := NewBoard(han, cho)
			for _, stm := range []Side{Han, Cho} {
				got, side, err := DecodePosition(Encode(&b, stm))
				require.NoError(t, err)
				require.Equal(t, stm, side)
				if diff := cmp.Diff(b, got); diff != "" {
					t.Fatalf("board round trip mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}
}

func TestDecodePositionErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"missing side field", "9/9/9/9/9/9/9/9/9/9"},
		{"wrong rank count", "9/9/9 w - - 0 1"},
		{"unknown letter", "znba1abnr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBA1ABNR b - - 0 1"},
		{"rank overflow", "rnba1abnrr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBA1ABNR b - - 0 1"},
		{"rank underflow", "rnba1abn/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBA1ABNR b - - 0 1"},
		{"bad side marker", "9/9/9/9/9/9/9/9/9/9 x - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodePosition(tt.fen)
			require.ErrorIs(t, err, ErrInvalidFEN)
		})
	}
}

func TestDecodeMove(t *testing.T) {
	mv, err := DecodeMove("a0a1")
	require.NoError(t, err)
	require.Equal(t, Move{From: indexOf(9, 0), To: indexOf(8, 0)}, mv)

	mv, err = DecodeMove("i9b2")
	require.NoError(t, err)
	require.Equal(t, Move{From: indexOf(0, 8), To: indexOf(7, 1)}, mv)

	for _, bad := range []string{"", "a0a", "a0a1x", "j0a0", "a0j0", "aXa0", "a0a:"} {
		_, err := DecodeMove(bad)
		require.ErrorIs(t, err, ErrInvalidMoveToken, "token %q", bad)
	}
}

// 所有语法合法的 4 字符记号：解码再编码必须原样复原。
func TestMoveTokenRoundTrip(t *testing.T) {
	for ff := byte('a'); ff <= 'i'; ff++ {
		for fr := byte('0'); fr <= '9'; fr++ {
			for tf := byte('a'); tf <= 'i'; tf++ {
				for tr := byte('0'); tr <= '9'; tr++ {
					tok := string([]byte{ff, fr, tf, tr})
					mv, err := DecodeMove(tok)
					if err != nil {
						t.Fatalf("decode %q: %v", tok, err)
					}
					if got := EncodeMove(mv); got != tok {
						t.Fatalf("round trip %q -> %+v -> %q", tok, mv, got)
					}
				}
			}
		}
	}
}

func TestEncodeSparseBoards(t *testing.T) {
	var b Board
	require.Equal(t, "9/9/9/9/9/9/9/9/9/9 w - - 0 1", Encode(&b, Han))

	put(&b, 0, 0, Cho, PieceRook)
	put(&b, 0, 8, Han, PieceRook)
	put(&b, 5, 4, Han, PieceSoldier)
	got := Encode(&b, Cho)
	require.Equal(t, "r7R/9/9/9/9/4P4/9/9/9/9 b - - 0 1", got)

	// 手动按 rank 重建应当还原同一布局
	back, _, err := DecodePosition(got)
	require.NoError(t, err)
	if diff := cmp.Diff(b, back); diff != "" {
		t.Fatalf("sparse board mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeMoveExamples(t *testing.T) {
	for _, tc := range []struct {
		mv   Move
		want string
	}{
		{Move{From: indexOf(9, 0), To: indexOf(8, 0)}, "a0a1"},
		{Move{From: indexOf(3, 0), To: indexOf(4, 0)}, "a6a5"},
		{Move{From: indexOf(0, 8), To: indexOf(0, 4)}, "i9e9"},
	} {
		if got := EncodeMove(tc.mv); got != tc.want {
			t.Fatalf("EncodeMove(%+v) = %q, want %q", tc.mv, got, tc.want)
		}
	}
}
