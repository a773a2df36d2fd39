package vcs

// FakeProvider is a canned StatusProvider for tests and previews
type FakeProvider struct {
	Result *Status
	Err    error
}

// Status returns the canned result regardless of dir
func (f *FakeProvider) Status(dir string) (*Status, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Result, nil
}
