package game

// assertInvariant surfaces logic errors early in development builds
// (go build -tags devassert). Release builds keep the guarded no-op.
func assertInvariant(err error) {
	if devAssertions && err != nil {
		panic(err)
	}
}
