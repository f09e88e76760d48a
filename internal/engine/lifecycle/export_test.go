package lifecycle

// Forget drops the active handle without touching any cache tier, as a
// process restart would.
func Forget() {
	mu.Lock()
	defer mu.Unlock()
	active = nil
}
