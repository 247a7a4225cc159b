package cache

// MockStorage is a mock implementation of the Storage interface for
// testing.
type MockStorage struct {
	ReadFunc  func(key string) ([]byte, error)
	WriteFunc func(key string, data []byte) error
}

// Read implements Storage.Read.
func (m *MockStorage) Read(key string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(key)
	}
	return nil, ErrNotFound
}

// Write implements Storage.Write.
func (m *MockStorage) Write(key string, data []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(key, data)
	}
	return nil
}
