package verifyflow

import log "github.com/sirupsen/logrus"

// logger is the package-wide diagnostic sink. It is nil-safe: SetLogger
// is optional, and every call site goes through entryLogger() rather than
// touching this variable directly, so an unconfigured caller still gets
// logrus's standard logger instead of a nil dereference.
var logger *log.Logger

// SetLogger installs l as the logger verify/static-check rejections and
// quickening-eligible soft failures are reported through. Passing nil
// reverts to logrus.StandardLogger(). Diagnostics only; nothing here
// ever influences control flow.
func SetLogger(l *log.Logger) { logger = l }

func entryLogger() *log.Logger {
	if logger != nil {
		return logger
	}
	return log.StandardLogger()
}

func logRejection(methodID string, phase string, addr int, err error) {
	entryLogger().WithFields(log.Fields{
		"method": methodID,
		"phase":  phase,
		"offset": addr,
	}).Errorln("verification rejected:", err)
}

func logSoftFailure(methodID string, sf *SoftFailure) {
	entryLogger().WithFields(log.Fields{
		"method": methodID,
		"offset": sf.Addr,
		"kind":   sf.Kind.String(),
		"ref":    sf.Ref.String(),
	}).Debugln("soft failure recorded:", sf.Msg)
}
