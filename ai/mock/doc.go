// Package mock provides test doubles for the ai package interfaces.
//
// The mocks track call counts and captured arguments, and accept
// function fields to override the default canned behavior per test.
package mock
