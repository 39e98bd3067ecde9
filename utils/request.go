package utils

import (
	"net"

	"google.golang.org/protobuf/proto"

	"linecount/rpc/client"
)

// SendSingleRequest dials address, sends one request, and returns the
// response, closing the connection afterwards.
func SendSingleRequest(address string, req proto.Message) (resp proto.Message, err error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, err
	}
	c := client.NewClient(conn)
	defer c.Close()
	return c.SendRequest(req)
}
