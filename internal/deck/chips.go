package deck

// chipValues maps each rank to its chip value, built once at startup. Number
// cards are worth their face value, court cards ten, aces eleven.
var chipValues = func() [Ace + 1]int {
	var v [Ace + 1]int
	for r := Two; r <= Ten; r++ {
		v[r] = int(r)
	}
	for r := Jack; r <= King; r++ {
		v[r] = 10
	}
	v[Ace] = 11
	return v
}()

// ChipValue returns the chip value of a rank
func ChipValue(r Rank) int {
	if r < Two || r > Ace {
		return 0
	}
	return chipValues[r]
}
