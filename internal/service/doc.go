// Package service contains the application's use cases: account
// registration and login, per-user task access, and the completed-task
// summary. Services coordinate the stores (internal/store), the auth
// primitives (internal/service/auth) and the generation port
// (internal/generation), and open transactions around multi-step sequences.
//
// Identity is always passed explicitly: task operations receive the owner's
// ID as a parameter and never look it up from ambient state.
package service
