package notify

import (
	"os/exec"
)

// startDetached starts cmd and reaps it in the background so the caller
// never waits on it and it never lingers as a zombie.
func startDetached(backend string, cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return newError(KindSpawnFailed, backend, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
