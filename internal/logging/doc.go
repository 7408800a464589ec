// Logs are JSON lines, one object per entry, with the slog standard keys
// (time, level, msg) followed by persistent attributes and call-site pairs:
//
//	{"time":"...","level":"INFO","msg":"project created","component":"store","project_id":5}
//
// Child loggers created with [Logger.WithComponent], [Logger.WithProject]
// or [Logger.With] share the parent's output and add attributes. Closing
// any of them closes the shared file.
//
// File output goes through lumberjack, which rotates {dir}/taskboard.log
// when it exceeds [RotationConfig.MaxSizeMB] and prunes old backups by
// count and age.
package logging
