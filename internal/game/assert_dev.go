//go:build devassert

package game

const devAssertions = true
