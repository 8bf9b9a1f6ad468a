package spaces

import (
	"context"

	"github.com/open-cli-collective/hfspace-cli/api"
)

// stubService is a scripted SpacesService that counts invocations, so tests
// can assert that certain failure paths never reach the collaborator.
type stubService struct {
	calls   int
	spaces  []api.Space
	space   *api.Space
	runtime *api.Runtime
	err     error
}

func (s *stubService) ListSpaces(_ context.Context, _ *api.ListSpacesOptions) ([]api.Space, error) {
	s.calls++
	return s.spaces, s.err
}

func (s *stubService) GetSpace(_ context.Context, _ string) (*api.Space, error) {
	s.calls++
	return s.space, s.err
}

func (s *stubService) RestartSpace(_ context.Context, _ string) error {
	s.calls++
	return s.err
}

func (s *stubService) PauseSpace(_ context.Context, _ string) error {
	s.calls++
	return s.err
}

func (s *stubService) GetSpaceRuntime(_ context.Context, _ string) (*api.Runtime, error) {
	s.calls++
	return s.runtime, s.err
}

func (s *stubService) ListUserSpaces(_ context.Context, _ string) ([]api.Space, error) {
	s.calls++
	return s.spaces, s.err
}

func testOptions() *options {
	return &options{output: "table", noColor: true}
}
