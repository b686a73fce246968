package scanners

type Line struct {
	Path       string
	LineNumber int
	Content    string
}
