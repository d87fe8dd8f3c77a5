package core

const (
	TermName          = "csvterm"
	TermUserAgent     = "csvterm/0.1"
	TermRepositoryURL = "https://github.com/sandevgo/csvterm"
	TermVersion       = "0.1.0"
)
