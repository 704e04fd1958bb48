package rpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseError_Error(t *testing.T) {
	err := ResponseError{Code: -32601, Message: "method not found"}
	require.Equal(t, "code -32601: method not found", err.Error())
}

func TestResponseError_DecodesFrame(t *testing.T) {
	var err ResponseError
	require.NoError(t, json.Unmarshal([]byte(`{"code":1,"message":"denied"}`), &err))
	require.Equal(t, ResponseError{Code: 1, Message: "denied"}, err)
}
