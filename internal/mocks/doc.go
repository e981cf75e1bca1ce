// Package mocks provides hand-written test doubles for the application's
// ports: the user and task stores, the JWT service, the password hasher and
// the text generator.
//
// Each mock has function fields for per-test behavior. When a field is nil
// the mock falls back to a simple working default (an in-memory map for the
// stores, fixed values for the others), so most tests only override the one
// call they care about:
//
//	tasks := mocks.NewMockTaskStore()
//	tasks.DeleteFn = func(ctx context.Context, id uuid.UUID) error {
//	    return errors.New("boom")
//	}
package mocks
