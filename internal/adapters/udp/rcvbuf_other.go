//go:build !unix

package udp

import "net"

func receiveBufferSize(conn *net.UDPConn) int {
	return 0
}
