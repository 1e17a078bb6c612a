//go:build htdebug

package hashtable

import "chaintable/pkg/logger"

const debug = true

// assertf logs msg and panics when cond is false.
func assertf(cond bool, msg string, fields ...interface{}) {
	if cond {
		return
	}
	logger.Error("hashtable: "+msg, fields...)
	panic("hashtable: " + msg)
}
