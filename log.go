package finance

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used by the package.
func SetLogger(l logrus.FieldLogger) { logger = l }
