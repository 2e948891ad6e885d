// Package logfields centralizes canonical slog attribute names used across the
// build pipeline so field naming does not drift between packages.
package logfields

import "log/slog"

const (
	KeyStage   = "stage"
	KeyKind    = "kind"
	KeyPath    = "path"
	KeyFolder  = "folder"
	KeyTopic   = "topic"
	KeyProject = "project"
	KeyCount   = "count"
	KeyOutput  = "output"
	KeyBuildID = "build_id"
	KeyError   = "error"
)

// Granular helpers returning slog.Attr so callers can compose freely.
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func Kind(k string) slog.Attr     { return slog.String(KeyKind, k) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Folder(f string) slog.Attr   { return slog.String(KeyFolder, f) }
func Topic(t string) slog.Attr    { return slog.String(KeyTopic, t) }
func Project(p string) slog.Attr  { return slog.String(KeyProject, p) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Output(dir string) slog.Attr { return slog.String(KeyOutput, dir) }
func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
