package objtree

// ErrMsg reports a failure while expanding or navigating the tree.
type ErrMsg struct {
	Err error
}

func (e ErrMsg) Error() string {
	return e.Err.Error()
}

// CopyPathRequestedMsg is sent after the copy key. Err is set when the
// clipboard could not be written.
type CopyPathRequestedMsg struct {
	Path string
	Err  error
}
