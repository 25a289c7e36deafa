package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	CopyError       = 4
	ResolveError    = 5 // nothing resolved, or a resolve/convert run failed
	PartialSuccess  = 6 // some rows unresolved with --fail-on-unresolved
)
