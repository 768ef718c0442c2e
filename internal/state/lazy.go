package state

import "sync"

// Lazy builds the State on first use so that persistent flags are parsed
// before the config is read.
type Lazy struct {
	opts  *Options
	build func(Options) (*State, error)
	once  sync.Once
	s     *State
	err   error
}

func NewLazy(opts *Options) *Lazy {
	if opts == nil {
		opts = &Options{}
	}
	return &Lazy{opts: opts, build: NewState}
}

func (l *Lazy) Get() (*State, error) {
	l.once.Do(func() {
		l.s, l.err = l.build(*l.opts)
	})
	return l.s, l.err
}

// Close closes the State if it was built.
func (l *Lazy) Close() error {
	if l == nil || l.s == nil {
		return nil
	}
	return l.s.Close()
}
