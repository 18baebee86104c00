package pathspec

// PathSpec is the parsed form of a route path template. An empty path
// ("/") yields a PathSpec with no steps.
type PathSpec struct {
	Steps []PathStep
}

// PathStep is one "/"-delimited segment of the path, itself made up of
// one or more parts (a step can mix literal text and variables, e.g.
// "{id}.json").
type PathStep struct {
	Parts []PathPart
}

// PathPart is a literal segment or a "{name}" variable.
type PathPart interface {
	isPathPart()
}

// Segment is a literal, non-variable run of path text.
type Segment string

func (Segment) isPathPart() {}

// Variable is a "{name}" route parameter.
type Variable string

func (Variable) isPathPart() {}
