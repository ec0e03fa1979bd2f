// Package statship provides an embeddable StatsD client that packs metrics
// into datagram-sized UDP payloads.
//
// # Basic Usage
//
//	client, err := statship.New(statship.Config{Host: "localhost", Port: 8125})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	_ = client.Send("requests", "1", statship.Counter)
//	_ = client.Timing("db.query", 12*time.Millisecond)
//
//	// Close transmits everything buffered since Connect.
//	if err := client.Close(ctx); err != nil {
//	    log.Printf("flush: %v", err)
//	}
//
// Metrics are buffered until [Client.Flush] or [Client.Close]. Each flushed
// datagram stays strictly below the capacity, which is taken from the socket
// receive-buffer size unless [Config.Capacity] is set.
//
// # Concurrency
//
// A [Client] must be used from one goroutine at a time. Wrap it with
// [NewLocked] to share it.
//
// # Dependency Injection
//
//	client, err := statship.New(cfg,
//	    statship.WithLogger(logger),
//	    statship.WithDialer(customDialer),
//	    statship.WithEventHandler(handler),
//	)
package statship
