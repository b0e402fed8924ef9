//go:build !linux && !freebsd && !netbsd && !openbsd && !dragonfly && !windows && !darwin

package devicequery

import "runtime"

func newBackend(o options) backend {
	o.logger.Warnw("device queries are not supported on this platform", "os", runtime.GOOS)
	return closedBackend{}
}
