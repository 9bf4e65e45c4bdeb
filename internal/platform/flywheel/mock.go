package flywheel

import (
	"context"
)

// MockClient is a mock implementation of Client.
type MockClient struct {
	LookupFunc   func(ctx context.Context, path string) (*Container, error)
	AddGroupFunc func(ctx context.Context, id, label string) (string, error)
	GetGroupFunc func(ctx context.Context, id string) (Group, error)
}

func (m *MockClient) Lookup(ctx context.Context, path string) (*Container, error) {
	return m.LookupFunc(ctx, path)
}

func (m *MockClient) AddGroup(ctx context.Context, id, label string) (string, error) {
	return m.AddGroupFunc(ctx, id, label)
}

func (m *MockClient) GetGroup(ctx context.Context, id string) (Group, error) {
	return m.GetGroupFunc(ctx, id)
}

// MockGroup is a mock implementation of Group.
type MockGroup struct {
	IDValue        string
	AddProjectFunc func(ctx context.Context, label string) (*Project, error)
}

func (m *MockGroup) ID() string {
	return m.IDValue
}

func (m *MockGroup) AddProject(ctx context.Context, label string) (*Project, error) {
	return m.AddProjectFunc(ctx, label)
}
