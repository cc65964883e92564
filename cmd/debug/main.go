package main

import (
	"fmt"

	"janggi/internal/janggi"
)

func main() {
	b := janggi.NewBoard(janggi.SetupInnerElephant, janggi.SetupInnerElephant)
	fmt.Println(b.String())
	fmt.Println("FEN:", janggi.Encode(&b, janggi.Cho))

	total := 0
	for sq := 0; sq < janggi.NumSquares; sq++ {
		total += len(janggi.LegalDestinations(&b, sq, janggi.Cho))
	}
	fmt.Println("Cho legal destinations:", total)
}
