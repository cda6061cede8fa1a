package bowling

// Pin is one pin of a rack. For a ten-pin rack the ids are laid out as
//
//	0 1 2 3
//	 4 5 6
//	  7 8
//	   9
type Pin struct {
	LocationID int
	Knocked    bool
}

func newRack(count int) []Pin {
	pins := make([]Pin, count)
	for i := range pins {
		pins[i] = Pin{LocationID: i}
	}
	return pins
}
