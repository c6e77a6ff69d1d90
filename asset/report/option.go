package report

// Option modifies a reporter.
type Option func(*Reporter)

// WithFormat sets output format.
func WithFormat(format Format) Option {
	return func(r *Reporter) {
		r.format = format
	}
}

// WithSort orders sources lexically.
func WithSort(sorted bool) Option {
	return func(r *Reporter) {
		r.sorted = sorted
	}
}

// WithFullPath prints verbatim sources instead of display names.
func WithFullPath(fullPath bool) Option {
	return func(r *Reporter) {
		r.fullPath = fullPath
	}
}
