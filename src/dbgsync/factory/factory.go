package factory

import (
	"github.com/gofrs/uuid"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// Session is a factory for a debug session with a random id.
func Session(name string) *entity.Session {
	return &entity.Session{ID: UUID(), Name: name}
}

// JSONRPCRequest is a factory for a jsonrpc2.Request carrying params.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}
