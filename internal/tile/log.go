package tile

import (
	log "github.com/sirupsen/logrus"
)

var logger log.FieldLogger = log.StandardLogger()

// SetLogger replaces the logger used for parser tracing and geometry
// warnings. A nil logger restores the logrus standard logger.
func SetLogger(l log.FieldLogger) {
	if l == nil {
		l = log.StandardLogger()
	}
	logger = l
}
