package helper

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"linecount/protogen/rpc"
)

// Send writes an rpc.Envelope to conn. Frame format is:
//
//	| length (8 bytes, big endian) | payload (length bytes) |
func Send(conn net.Conn, env *rpc.Envelope) error {
	data, err := proto.Marshal(env)
	if err != nil {
		return err
	}
	length := uint64(len(data))
	if err := binary.Write(conn, binary.BigEndian, length); err != nil {
		return err
	}
	if _, err := conn.Write(data); err != nil {
		return err
	}
	return nil
}

// Receive reads one rpc.Envelope frame from conn.
func Receive(conn net.Conn) (*rpc.Envelope, error) {
	var length uint64
	if err := binary.Read(conn, binary.BigEndian, &length); err != nil {
		return nil, err
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(conn, data); err != nil {
		return nil, err
	}
	env := &rpc.Envelope{}
	if err := proto.Unmarshal(data, env); err != nil {
		return nil, err
	}
	return env, nil
}

// WrapMessage wraps any proto.Message into an rpc.Envelope.
func WrapMessage(msg proto.Message) *rpc.Envelope {
	payload, err := anypb.New(msg)
	if err != nil {
		panic(fmt.Sprint("anypb.New error:", err))
	}
	return &rpc.Envelope{
		Payload: payload,
	}
}
