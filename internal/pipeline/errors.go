package pipeline

import "errors"

var (
	errNilSink         = errors.New("cannot register nil sink")
	errUnknownDatapath = errors.New("no watchers registered for datapath")
)
