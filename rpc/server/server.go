package server

import (
	"bytes"
	"fmt"
	"io"
	"net"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoregistry"

	"linecount/protogen/rpc"
	"linecount/rpc/helper"
)

// Context carries per-request information into a handler.
type Context struct {
	Address string
}

// HandlerFunc handles one RPC request.
type HandlerFunc func(ctx Context, req proto.Message) (resp proto.Message, err error)

// Server dispatches incoming envelopes to handlers registered by request
// message type.
type Server struct {
	handlers         map[string]HandlerFunc
	logPrefix        string
	recoverFromPanic bool
}

// NewServer creates an empty Server.
func NewServer() *Server {
	return &Server{
		handlers:  make(map[string]HandlerFunc),
		logPrefix: "[rpc server]",
	}
}

// SetLogPrefix sets the prefix of the log messages.
func (s *Server) SetLogPrefix(prefix string) {
	s.logPrefix = prefix
}

// SetRecoverFromPanic sets whether the server recovers from panics raised
// by registered handlers instead of crashing the process.
func (s *Server) SetRecoverFromPanic(recover bool) {
	s.recoverFromPanic = recover
}

func (s *Server) logf(format string, a ...any) {
	buf := bytes.NewBufferString(s.logPrefix)
	buf.WriteByte(' ')
	fmt.Fprintf(buf, format, a...)
	fmt.Println(buf.String())
}

// RegisterByTypeUrl registers the handler for the given request type URL.
func (s *Server) RegisterByTypeUrl(typeUrl string, handler HandlerFunc) error {
	if _, err := protoregistry.GlobalTypes.FindMessageByURL(typeUrl); err != nil {
		return err
	}
	s.handlers[typeUrl] = handler
	return nil
}

// RegisterByMessage registers the handler for requests of msg's type.
func (s *Server) RegisterByMessage(msg proto.Message, handler HandlerFunc) error {
	typeUrl := proto.MessageName(msg)
	s.handlers[string(typeUrl)] = handler
	return nil
}

func (s *Server) handle(ctx Context, req proto.Message) (resp proto.Message, err error) {
	typeUrl := proto.MessageName(req)
	handler, ok := s.handlers[string(typeUrl)]
	if !ok {
		return nil, fmt.Errorf("no handler for type %s", typeUrl)
	}
	if s.recoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
	}
	return handler(ctx, req)
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	remoteAddr := conn.RemoteAddr().String()
	for {
		env, err := helper.Receive(conn)
		if err != nil {
			if err == io.EOF {
				return
			}
			s.logf("receive error for conn %s: %v, closing conn", remoteAddr, err)
			return
		}
		reqMsg, err := env.Payload.UnmarshalNew()
		if err != nil {
			s.logf("unknown request type %s from %s, sending back error", env.Payload.TypeUrl, remoteAddr)
			resp := helper.WrapMessage(&rpc.Error{
				Message: err.Error(),
			})
			if err := helper.Send(conn, resp); err != nil {
				s.logf("send message failed for conn %s: %v", remoteAddr, err)
				return
			}
			continue
		}

		ctx := Context{
			Address: remoteAddr,
		}
		respMsg, err := s.handle(ctx, reqMsg)
		if err != nil {
			respMsg = &rpc.Error{
				Message: err.Error(),
			}
			s.logf("request (%s) from %s handled with error: %s", env.Payload.TypeUrl, remoteAddr, err)
		}
		if err := helper.Send(conn, helper.WrapMessage(respMsg)); err != nil {
			s.logf("send message failed for conn %s: %v", remoteAddr, err)
			return
		}
	}
}

// Serve accepts connections on listener until it is closed.
func (s *Server) Serve(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		go s.handleConn(conn)
	}
}
