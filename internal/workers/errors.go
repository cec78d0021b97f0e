package workers

import "errors"

// ErrImportNotStarted is returned by [ImportRunner.Submit] when the context
// was already done, so the job was never launched.
var ErrImportNotStarted = errors.New("import not started")
