package client

import (
	"errors"
	"net"
	"sync"

	"google.golang.org/protobuf/proto"

	"linecount/protogen/rpc"
	"linecount/rpc/helper"
)

// Client is a connection to an RPC server. Requests are serialized on the
// connection; concurrent callers block on the mutex.
type Client struct {
	conn net.Conn
	m    sync.Mutex
}

// NewClient wraps an established connection.
func NewClient(conn net.Conn) *Client {
	return &Client{
		conn: conn,
	}
}

// SendRequest sends one request and waits for its response. A server-side
// rpc.Error response comes back as a Go error.
func (c *Client) SendRequest(req proto.Message) (resp proto.Message, err error) {
	c.m.Lock()
	defer c.m.Unlock()
	if err = helper.Send(c.conn, helper.WrapMessage(req)); err != nil {
		return
	}
	var env *rpc.Envelope
	env, err = helper.Receive(c.conn)
	if err != nil {
		return
	}
	resp, err = env.Payload.UnmarshalNew()
	if e, ok := resp.(*rpc.Error); ok {
		return nil, errors.New(e.Message)
	}
	return
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
