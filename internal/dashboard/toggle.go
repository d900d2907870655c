package dashboard

// Toggle computes the next state of the Learn More panel. Only a real
// click flips it; a render that fires without a click keeps whatever
// state the panel already had.
func Toggle(open, clicked bool) bool {
	if clicked {
		return !open
	}
	return open
}
