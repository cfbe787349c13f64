package clipboard

// Available reports whether the desktop clipboard can be used.
func Available() bool { return probe() == nil }
