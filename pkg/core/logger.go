package core

// Logger is the narrow logging capability every package depends on. It is
// satisfied by *zap.SugaredLogger (see pkg/render) as well as any other
// Printf-shaped logger, so packages never import a concrete logging
// library directly.
type Logger interface {
	Printf(format string, args ...interface{})
}
