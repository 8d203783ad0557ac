package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 60 * time.Second // /run blocks on the upstream fetch and publish
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
