package text

import "errors"

var errWrongReportKind = errors.New("report message does not match the sink's report kind")
