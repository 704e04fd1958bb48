//go:build !windows

package code

func platformSamples() []Error { return nil }

func platformTagName(Error) string { return "" }
