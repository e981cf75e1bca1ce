// Package domain contains the core business entities of the task tracker:
// users, tasks and the priority labels attached to tasks. It has no
// knowledge of HTTP, SQL or token formats.
package domain
