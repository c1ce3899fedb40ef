package varc

// ProgressStage identifies which operation a ProgressFunc callback is
// reporting on.
type ProgressStage int

const (
	StageAdd ProgressStage = iota
	StageExtract
	StageVerify
	StageSave
)

// ProgressFunc is invoked after each entry an Archive operation
// processes. Path is the entry's archive path, done/total count entries
// (not bytes) completed so far out of the operation's total.
type ProgressFunc func(stage ProgressStage, path string, done, total int)

// Option configures an Archive at construction time.
type Option func(*Archive)

// WithProgress installs fn as the Archive's progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(a *Archive) { a.progress = fn }
}

// WithFileSystem overrides the FileSystem an Archive uses for
// AddFile/ExtractFile/ExtractAll. Defaults to OSFileSystem{}.
func WithFileSystem(fs FileSystem) Option {
	return func(a *Archive) { a.fs = fs }
}

func (a *Archive) report(stage ProgressStage, path string, done, total int) {
	if a.progress != nil {
		a.progress(stage, path, done, total)
	}
}
