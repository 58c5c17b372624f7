// Package logger provides structured logging on top of zerolog.
//
// It exposes a thin wrapper with leveled methods, component tagging, and
// field helpers, plus a process-wide default logger for packages that do
// not carry their own instance.
//
// # Usage
//
//	log := logger.NewDefault("keycloak")
//	log.Info("token exchanged", logger.Fields("grant_type", "authorization_code"))
package logger
