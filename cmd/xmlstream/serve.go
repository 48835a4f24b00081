package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"

	"github.com/cxy13h/xml-parser/classify"
	"github.com/cxy13h/xml-parser/debug"
)

// serve exposes one classification session over JSON-RPC on stdio, so a
// non-Go producer can stream chunks and receive events. Methods:
//
//	session/process    {"chunk": string} -> {"events": [...]}
//	session/finalize   -> {"events": [...]}
//	session/reset      -> null
//	hierarchy/describe -> string
func runServe(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: serve takes no arguments", cli.ErrUsage)
	}
	sess := classify.New(cfg.Hierarchy)
	rpcStream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  cc.In,
		write: cc.Out,
	})
	conn := jsonrpc2.NewConn(rpcStream)
	conn.Go(context.Background(), sessionHandler(sess))
	<-conn.Done()
	return nil
}

type processParams struct {
	Chunk string `json:"chunk"`
}

type eventsResult struct {
	Events []wireEvent `json:"events"`
}

func sessionHandler(sess *classify.Classifier) jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if debug.RPC() {
			debug.Logf("rpc: %s\n", req.Method())
		}
		switch req.Method() {
		case "session/process":
			params := &processParams{}
			if err := json.Unmarshal(req.Params(), params); err != nil {
				return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrInvalidParams, err))
			}
			return reply(ctx, &eventsResult{Events: toWireAll(sess.ProcessChunk(params.Chunk))}, nil)
		case "session/finalize":
			return reply(ctx, &eventsResult{Events: toWireAll(sess.Finalize())}, nil)
		case "session/reset":
			sess.Reset()
			return reply(ctx, nil, nil)
		case "hierarchy/describe":
			return reply(ctx, sess.DescribeHierarchy(), nil)
		default:
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
	}
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
