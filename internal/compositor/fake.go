package compositor

import "context"

// Fake is a canned Compositor for tests and dry runs.
type Fake struct {
	FakeKind Kind
	Names    []string
	Err      error
}

func (f *Fake) Kind() Kind { return f.FakeKind }

func (f *Fake) Monitors(ctx context.Context) ([]Monitor, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Names) == 0 {
		return nil, ErrNoOutputs
	}
	monitors := make([]Monitor, len(f.Names))
	for i, name := range f.Names {
		monitors[i] = Monitor{Name: name, Position: i}
	}
	return monitors, nil
}
