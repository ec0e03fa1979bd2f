//go:build unix

package udp

import (
	"net"

	"golang.org/x/sys/unix"
)

func receiveBufferSize(conn *net.UDPConn) int {
	raw, err := conn.SyscallConn()
	if err != nil {
		return 0
	}

	var size int
	var sockErr error
	err = raw.Control(func(fd uintptr) {
		size, sockErr = unix.GetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_RCVBUF)
	})
	if err != nil || sockErr != nil {
		return 0
	}
	return size
}
