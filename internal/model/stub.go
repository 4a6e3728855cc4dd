package model

// TestStub is the placeholder test file rendered for one symbol.
type TestStub struct {
	Symbol Symbol
	// FileName is the base name of the target, after collision handling.
	FileName   string
	TargetPath Path
	Content    string
}

// WriteMode decides what happens to an existing stub file.
type WriteMode string

const (
	// WriteAppend appends rendered content, creating the file if absent.
	// Re-running over the same inputs duplicates content.
	WriteAppend WriteMode = "append"
	// WriteOverwrite replaces the file with the content rendered in this run.
	WriteOverwrite WriteMode = "overwrite"
)

// ParseWriteMode returns the mode for s, falling back to WriteAppend.
func ParseWriteMode(s string) WriteMode {
	if WriteMode(s) == WriteOverwrite {
		return WriteOverwrite
	}

	return WriteAppend
}

// CollisionPolicy decides what happens when two symbols of one source share
// a file name.
type CollisionPolicy string

const (
	// CollisionDuplicate writes both stubs into the same file.
	CollisionDuplicate CollisionPolicy = "duplicate"
	// CollisionFail reports every colliding symbol as failed.
	CollisionFail CollisionPolicy = "fail"
	// CollisionSuffix gives later symbols a suffixed file name.
	CollisionSuffix CollisionPolicy = "suffix"
)

// ParseCollisionPolicy returns the policy for s, falling back to CollisionDuplicate.
func ParseCollisionPolicy(s string) CollisionPolicy {
	switch CollisionPolicy(s) {
	case CollisionFail:
		return CollisionFail
	case CollisionSuffix:
		return CollisionSuffix
	default:
		return CollisionDuplicate
	}
}

// StubPlan previews the change a run would make to one target file.
type StubPlan struct {
	Source  Path
	Target  Path
	Mode    WriteMode
	Symbols []string
	Exists  bool
	Diff    string
}
