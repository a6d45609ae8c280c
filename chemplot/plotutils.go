package chemplot

//Some internal convenience functions.

//isInInt returns true if test is in container, false otherwise.
//Selection slices are tiny, so a linear scan beats anything clever.
func isInInt(container []int, test int) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//Same as the previous, but with strings.
func isInString(container []string, test string) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
