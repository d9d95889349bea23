// Package config loads the project configuration file, simple-shadcn.json,
// that tells the build command where the registry sources live and where the
// generated item files go. Environment variables prefixed with SIMPLE_SHADCN_
// override file values.
package config
