// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the packing core and the outside world.
// They define what the session needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Dialer]: Acquires a datagram transport for a destination
//   - [Transport]: Sends one datagram and reports a receive-buffer size hint
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (UDP sockets, zerolog, etc.).
package ports
