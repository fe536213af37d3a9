package scan

// Contribution derives a line's value from its pair. Both codes are taken as
// decimal digits relative to '0' with no range check.
func Contribution(first, second int) int {
	return (first-'0')*10 + (second - '0')
}
