package errors

//go:generate go run ../cmd/errgen generate --registry registry.yaml --out anyerror_gen.go
