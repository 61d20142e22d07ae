// Package service holds testify mocks of the domain service interfaces.
package service

import "github.com/stretchr/testify/mock"

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// ret returns the i-th return value as T, or T's zero value when it was nil.
func ret[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)

	return v
}
