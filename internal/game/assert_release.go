//go:build !devassert

package game

const devAssertions = false
